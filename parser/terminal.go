package parser

import (
	"fmt"
	"math"
)

// Terminal parsers share one attempt shape: skip leading input per the
// policy, try the match, and on mismatch retreat whatever was inspected and
// unskip. A successful match leaves the cursor advanced and pushes an undo
// frame so Unparse can reverse exactly that invocation. Frames are a stack
// because one parser value can be mid-parse on an outer call-stack frame
// while invoked again on an inner one.

// CharParser matches exactly one byte. It captures no value.
type CharParser struct {
	ch      byte
	skip    SkipPolicy
	matches int
}

// Char returns a parser matching the single byte ch.
func Char(ch byte, opts ...Option) *CharParser {
	cfg := newConfig(opts)
	return &CharParser{ch: ch, skip: cfg.newSkip()}
}

func (p *CharParser) Parse(c *Cursor) bool {
	p.skip.Skip(c)
	buf, ok := c.Peek(1)
	if !ok {
		p.skip.Unskip(c)
		return false
	}
	if buf[0] != p.ch {
		c.Retreat(1)
		p.skip.Unskip(c)
		return false
	}
	// The consumed length is constant, so a count of outstanding matches
	// is undo state enough.
	p.matches++
	return true
}

func (p *CharParser) Unparse(c *Cursor) {
	if p.matches == 0 {
		panic("parser: Char Unparse without a matching Parse")
	}
	p.matches--
	c.Retreat(1)
	p.skip.Unskip(c)
}

func (p *CharParser) Result() Result { return nil }

func (p *CharParser) Tuple() []Result { return []Result{nil} }

// StringParser matches a fixed string as one atomic comparison.
type StringParser struct {
	s       string
	skip    SkipPolicy
	matches int
}

// String returns a parser matching s exactly. It captures s.
func String(s string, opts ...Option) *StringParser {
	cfg := newConfig(opts)
	return &StringParser{s: s, skip: cfg.newSkip()}
}

func (p *StringParser) Parse(c *Cursor) bool {
	p.skip.Skip(c)
	buf, ok := c.Peek(len(p.s))
	if !ok {
		p.skip.Unskip(c)
		return false
	}
	if string(buf) != p.s {
		c.Retreat(len(p.s))
		p.skip.Unskip(c)
		return false
	}
	p.matches++
	return true
}

func (p *StringParser) Unparse(c *Cursor) {
	if p.matches == 0 {
		panic("parser: String Unparse without a matching Parse")
	}
	p.matches--
	c.Retreat(len(p.s))
	p.skip.Unskip(c)
}

func (p *StringParser) Result() Result {
	return &StringResult{Value: p.s}
}

func (p *StringParser) Tuple() []Result {
	return []Result{p.Result()}
}

// QuotedParser matches a double-quoted literal and captures the interior
// text with the quotes stripped. Escape sequences are not interpreted.
type QuotedParser struct {
	skip   SkipPolicy
	frames []quotedFrame
}

type quotedFrame struct {
	consumed int
	text     string
}

// Quoted returns a parser for double-quoted literals.
func Quoted(opts ...Option) *QuotedParser {
	cfg := newConfig(opts)
	return &QuotedParser{skip: cfg.newSkip()}
}

func (p *QuotedParser) Parse(c *Cursor) bool {
	p.skip.Skip(c)
	buf, ok := c.Peek(1)
	if !ok {
		p.skip.Unskip(c)
		return false
	}
	if buf[0] != '"' {
		c.Retreat(1)
		p.skip.Unskip(c)
		return false
	}
	consumed := 1
	var text []byte
	for {
		buf, ok = c.Peek(1)
		if !ok {
			// Unterminated literal: everything inspected is retreated,
			// including the opening quote.
			c.Retreat(consumed)
			p.skip.Unskip(c)
			return false
		}
		consumed++
		if buf[0] == '"' {
			break
		}
		text = append(text, buf[0])
	}
	p.frames = append(p.frames, quotedFrame{consumed: consumed, text: string(text)})
	return true
}

func (p *QuotedParser) Unparse(c *Cursor) {
	if len(p.frames) == 0 {
		panic("parser: Quoted Unparse without a matching Parse")
	}
	frame := p.frames[len(p.frames)-1]
	p.frames = p.frames[:len(p.frames)-1]
	c.Retreat(frame.consumed)
	p.skip.Unskip(c)
}

func (p *QuotedParser) Result() Result {
	if len(p.frames) == 0 {
		panic("parser: Quoted Result without a successful Parse")
	}
	return &StringResult{Value: p.frames[len(p.frames)-1].text}
}

func (p *QuotedParser) Tuple() []Result {
	return []Result{p.Result()}
}

// IntParser matches a maximal run of one or more digits in its base.
type IntParser struct {
	base   int
	skip   SkipPolicy
	frames []intFrame
}

type intFrame struct {
	consumed int
	value    int64
}

// Int returns a parser for unsigned integer literals, base 10 unless
// overridden with Base. The full digit run is always consumed; a value
// that does not fit in an int64 saturates at math.MaxInt64.
func Int(opts ...Option) *IntParser {
	cfg := newConfig(opts)
	if cfg.base < 2 || cfg.base > 36 {
		panic(fmt.Sprintf("parser: Int base %d out of range [2, 36]", cfg.base))
	}
	return &IntParser{base: cfg.base, skip: cfg.newSkip()}
}

func (p *IntParser) Parse(c *Cursor) bool {
	p.skip.Skip(c)
	buf, ok := c.Peek(1)
	if !ok {
		p.skip.Unskip(c)
		return false
	}
	d, ok := digitValue(buf[0], p.base)
	if !ok {
		c.Retreat(1)
		p.skip.Unskip(c)
		return false
	}
	consumed := 1
	value := int64(d)
	for {
		buf, ok = c.Peek(1)
		if !ok {
			break
		}
		d, ok = digitValue(buf[0], p.base)
		if !ok {
			c.Retreat(1)
			break
		}
		if value > (math.MaxInt64-int64(d))/int64(p.base) {
			value = math.MaxInt64
		} else {
			value = value*int64(p.base) + int64(d)
		}
		consumed++
	}
	p.frames = append(p.frames, intFrame{consumed: consumed, value: value})
	return true
}

func (p *IntParser) Unparse(c *Cursor) {
	if len(p.frames) == 0 {
		panic("parser: Int Unparse without a matching Parse")
	}
	frame := p.frames[len(p.frames)-1]
	p.frames = p.frames[:len(p.frames)-1]
	c.Retreat(frame.consumed)
	p.skip.Unskip(c)
}

func (p *IntParser) Result() Result {
	if len(p.frames) == 0 {
		panic("parser: Int Result without a successful Parse")
	}
	return &IntResult{Value: p.frames[len(p.frames)-1].value}
}

func (p *IntParser) Tuple() []Result {
	return []Result{p.Result()}
}

func digitValue(b byte, base int) (int, bool) {
	var d int
	switch {
	case b >= '0' && b <= '9':
		d = int(b - '0')
	case b >= 'a' && b <= 'z':
		d = int(b-'a') + 10
	case b >= 'A' && b <= 'Z':
		d = int(b-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}

// EndParser succeeds only when no input remains.
type EndParser struct {
	skip    SkipPolicy
	matches int
}

// End returns a parser matching end of input.
func End(opts ...Option) *EndParser {
	cfg := newConfig(opts)
	return &EndParser{skip: cfg.newSkip()}
}

func (p *EndParser) Parse(c *Cursor) bool {
	p.skip.Skip(c)
	if _, ok := c.Peek(1); ok {
		c.Retreat(1)
		p.skip.Unskip(c)
		return false
	}
	p.matches++
	return true
}

func (p *EndParser) Unparse(c *Cursor) {
	if p.matches == 0 {
		panic("parser: End Unparse without a matching Parse")
	}
	p.matches--
	p.skip.Unskip(c)
}

func (p *EndParser) Result() Result { return nil }

// Tuple is empty: End contributes no slot to a sequence's tuple.
func (p *EndParser) Tuple() []Result { return nil }

// EpsilonParser trivially succeeds, consuming nothing.
type EpsilonParser struct{}

// Epsilon returns the empty parser.
func Epsilon() *EpsilonParser { return &EpsilonParser{} }

func (p *EpsilonParser) Parse(*Cursor) bool { return true }

func (p *EpsilonParser) Unparse(*Cursor) {}

func (p *EpsilonParser) Result() Result { return nil }

func (p *EpsilonParser) Tuple() []Result { return nil }
