package parser

// Parser is a grammar fragment. A parser value is composable: grammars are
// trees of parser values, except where a DeferredParser closes a cycle.
//
// Parse attempts a match at the cursor and reports success. A failed Parse
// restores the cursor to exactly its pre-attempt position. Unparse reverses
// the most recent successful Parse that has not yet been undone; calling it
// without such a Parse is a programming error and panics.
//
// Result moves the value produced by the most recent successful Parse out
// of the parser. Tuple does the same but as a flat slice, one slot per
// capturing terminal in match order; sequencing concatenates sub-tuples so
// semantic actions see a flat view regardless of how chains nest.
type Parser interface {
	Parse(c *Cursor) bool
	Unparse(c *Cursor)
	Result() Result
	Tuple() []Result
}

// Option configures a terminal parser.
type Option func(*config)

type config struct {
	newSkip func() SkipPolicy
	base    int
}

func newConfig(opts []Option) config {
	cfg := config{
		newSkip: func() SkipPolicy { return &whitespaceSkip{} },
		base:    10,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// NoSkip disables whitespace skipping for a terminal.
func NoSkip() Option {
	return func(cfg *config) {
		cfg.newSkip = func() SkipPolicy { return noSkip{} }
	}
}

// Base sets the radix accepted by Int, between 2 and 36.
func Base(base int) Option {
	return func(cfg *config) {
		cfg.base = base
	}
}

// ParseString runs p against input and, on success, moves its result out.
// The cursor may stop before the end of input; compose p with End to
// require full consumption.
func ParseString(p Parser, input string) (Result, bool) {
	c := NewCursorString(input)
	if !p.Parse(c) {
		return nil, false
	}
	return p.Result(), true
}
