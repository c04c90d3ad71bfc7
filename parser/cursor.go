package parser

import "fmt"

// Cursor is a position-tracking view over an input buffer. It supports
// bounded look-ahead via Peek and exact rollback via Retreat. A cursor is
// owned by a single in-flight parse and must not be shared.
type Cursor struct {
	input []byte
	pos   int
}

// NewCursor returns a cursor positioned at the start of input.
func NewCursor(input []byte) *Cursor {
	return &Cursor{input: input}
}

// NewCursorString is a convenience wrapper around NewCursor.
func NewCursorString(input string) *Cursor {
	return NewCursor([]byte(input))
}

// Peek returns the next n bytes and advances past them. If fewer than n
// bytes remain it returns (nil, false) without advancing.
func (c *Cursor) Peek(n int) ([]byte, bool) {
	if c.pos+n > len(c.input) {
		return nil, false
	}
	start := c.pos
	c.pos += n
	return c.input[start:c.pos], true
}

// Retreat moves the cursor back by exactly n bytes. Retreating past the
// start of the input is a programming error, not a parse failure.
func (c *Cursor) Retreat(n int) {
	if n > c.pos {
		panic(fmt.Sprintf("parser: cursor retreat by %d past start (pos %d)", n, c.pos))
	}
	c.pos -= n
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total input length.
func (c *Cursor) Len() int {
	return len(c.input)
}

// Remaining returns the unconsumed tail of the input.
func (c *Cursor) Remaining() []byte {
	return c.input[c.pos:]
}
