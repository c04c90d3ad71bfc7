package parser

// SkipPolicy consumes ignorable input before a terminal match attempt and
// reverses that consumption in lock-step with backtracking. Skip and Unskip
// calls are strictly paired per attempt, in LIFO order, even when the
// attempt itself fails.
type SkipPolicy interface {
	Skip(c *Cursor)
	Unskip(c *Cursor)
}

// noSkip leaves the input untouched.
type noSkip struct{}

func (noSkip) Skip(*Cursor)   {}
func (noSkip) Unskip(*Cursor) {}

// whitespaceSkip consumes a maximal run of ASCII whitespace before each
// attempt. The run length of every Skip is pushed on a stack so Unskip can
// retreat by exactly the amount its paired Skip consumed.
type whitespaceSkip struct {
	counts []int
}

func (s *whitespaceSkip) Skip(c *Cursor) {
	count := 0
	for {
		p, ok := c.Peek(1)
		if !ok {
			break
		}
		if !isSpace(p[0]) {
			c.Retreat(1)
			break
		}
		count++
	}
	s.counts = append(s.counts, count)
}

func (s *whitespaceSkip) Unskip(c *Cursor) {
	if len(s.counts) == 0 {
		panic("parser: Unskip without a matching Skip")
	}
	count := s.counts[len(s.counts)-1]
	s.counts = s.counts[:len(s.counts)-1]
	if count > 0 {
		c.Retreat(count)
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
