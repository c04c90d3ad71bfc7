package parser

// ChainParser runs two parsers in sequence and concatenates their tuples.
type ChainParser struct {
	a, b   Parser
	tuples [][]Result
}

// Chain returns a parser matching a followed by b.
func Chain(a, b Parser) *ChainParser {
	return &ChainParser{a: a, b: b}
}

func (p *ChainParser) Parse(c *Cursor) bool {
	if !p.a.Parse(c) {
		return false
	}
	// Pull a's values before b runs. Through a deferred handle b can
	// recurse back into a's parser value, and a late pull would read the
	// inner invocation's values instead of this one's.
	ta := p.a.Tuple()
	if !p.b.Parse(c) {
		p.a.Unparse(c)
		return false
	}
	p.tuples = append(p.tuples, append(ta, p.b.Tuple()...))
	return true
}

func (p *ChainParser) Unparse(c *Cursor) {
	if len(p.tuples) == 0 {
		panic("parser: Chain Unparse without a matching Parse")
	}
	p.tuples = p.tuples[:len(p.tuples)-1]
	p.b.Unparse(c)
	p.a.Unparse(c)
}

func (p *ChainParser) Result() Result {
	return &TupleResult{Items: p.Tuple()}
}

func (p *ChainParser) Tuple() []Result {
	if len(p.tuples) == 0 {
		panic("parser: Chain Tuple/Result without a successful Parse")
	}
	top := len(p.tuples) - 1
	tuple := p.tuples[top]
	p.tuples[top] = nil
	return tuple
}

// AltParser tries two parsers in order and commits to the first success.
type AltParser struct {
	a, b   Parser
	frames []altFrame
}

type altBranch int

const (
	tookA altBranch = iota + 1
	tookB
)

type altFrame struct {
	which altBranch
	value Result
}

// Alt returns an ordered choice between a and b. The choice is biased:
// a is always attempted first, and a success there is never revisited.
func Alt(a, b Parser) *AltParser {
	return &AltParser{a: a, b: b}
}

func (p *AltParser) Parse(c *Cursor) bool {
	if p.a.Parse(c) {
		p.frames = append(p.frames, altFrame{which: tookA, value: p.a.Result()})
		return true
	}
	// a restored the cursor on its own failure path.
	if p.b.Parse(c) {
		p.frames = append(p.frames, altFrame{which: tookB, value: p.b.Result()})
		return true
	}
	return false
}

func (p *AltParser) Unparse(c *Cursor) {
	if len(p.frames) == 0 {
		panic("parser: Alt Unparse without a matching Parse")
	}
	frame := p.frames[len(p.frames)-1]
	p.frames = p.frames[:len(p.frames)-1]
	switch frame.which {
	case tookA:
		p.a.Unparse(c)
	case tookB:
		p.b.Unparse(c)
	}
}

func (p *AltParser) Result() Result {
	if len(p.frames) == 0 {
		panic("parser: Alt Result without a successful Parse")
	}
	top := &p.frames[len(p.frames)-1]
	value := top.value
	top.value = nil
	return value
}

func (p *AltParser) Tuple() []Result {
	return []Result{p.Result()}
}

// ManyParser matches zero or more repetitions of its sub-parser. It always
// succeeds and carries no result value.
type ManyParser struct {
	p      Parser
	counts []int
}

// Many returns a parser matching p zero or more times.
func Many(p Parser) *ManyParser {
	return &ManyParser{p: p}
}

func (m *ManyParser) Parse(c *Cursor) bool {
	count := 0
	for m.p.Parse(c) {
		count++
	}
	// The trailing failed attempt already rolled itself back. One count
	// per invocation: a single scalar would be corrupted when a recursive
	// grammar re-enters this parser before it is unwound.
	m.counts = append(m.counts, count)
	return true
}

func (m *ManyParser) Unparse(c *Cursor) {
	if len(m.counts) == 0 {
		panic("parser: Many Unparse without a matching Parse")
	}
	count := m.counts[len(m.counts)-1]
	m.counts = m.counts[:len(m.counts)-1]
	for i := 0; i < count; i++ {
		m.p.Unparse(c)
	}
}

func (m *ManyParser) Result() Result { return nil }

func (m *ManyParser) Tuple() []Result { return []Result{nil} }

// MaybeParser attempts its sub-parser and succeeds either way.
type MaybeParser struct {
	p      Parser
	frames []maybeFrame
}

type maybeFrame struct {
	matched bool
	value   Result
}

// Maybe returns a parser matching p or nothing.
func Maybe(p Parser) *MaybeParser {
	return &MaybeParser{p: p}
}

func (m *MaybeParser) Parse(c *Cursor) bool {
	if m.p.Parse(c) {
		m.frames = append(m.frames, maybeFrame{matched: true, value: m.p.Result()})
	} else {
		m.frames = append(m.frames, maybeFrame{})
	}
	return true
}

func (m *MaybeParser) Unparse(c *Cursor) {
	if len(m.frames) == 0 {
		panic("parser: Maybe Unparse without a matching Parse")
	}
	frame := m.frames[len(m.frames)-1]
	m.frames = m.frames[:len(m.frames)-1]
	if frame.matched {
		m.p.Unparse(c)
	}
}

func (m *MaybeParser) Result() Result {
	if len(m.frames) == 0 {
		panic("parser: Maybe Result without a successful Parse")
	}
	top := &m.frames[len(m.frames)-1]
	value := top.value
	top.value = nil
	return value
}

func (m *MaybeParser) Tuple() []Result {
	return []Result{m.Result()}
}

// OneOrMore returns a parser matching p at least once. Both positions share
// the same parser value; per-invocation stacks make that safe.
func OneOrMore(p Parser) Parser {
	return Chain(p, Many(p))
}

// Seq folds parsers into a left-nested chain. Tuple concatenation keeps
// the combined tuple flat, so an action attached to Seq(a, b, c) sees all
// three sub-results at the top level.
func Seq(parsers ...Parser) Parser {
	if len(parsers) == 0 {
		return Epsilon()
	}
	p := parsers[0]
	for _, q := range parsers[1:] {
		p = Chain(p, q)
	}
	return p
}

// Or folds parsers into a left-biased ordered choice.
func Or(parsers ...Parser) Parser {
	if len(parsers) == 0 {
		return Epsilon()
	}
	p := parsers[0]
	for _, q := range parsers[1:] {
		p = Alt(p, q)
	}
	return p
}
