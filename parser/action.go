package parser

// Action transforms the flat result tuple of a successful parse into a
// caller-defined AST node.
type Action func(results []Result) Result

// ActionParser wraps a parser with a semantic action.
type ActionParser struct {
	p      Parser
	fn     Action
	values []Result
}

// Apply attaches fn to p. The action runs as soon as p succeeds rather
// than when the result is read: a deferred handle inside p may be entered
// again before the caller pulls the result, and a late-running action
// would read the inner invocation's tuple.
func Apply(p Parser, fn Action) *ActionParser {
	return &ActionParser{p: p, fn: fn}
}

func (a *ActionParser) Parse(c *Cursor) bool {
	if !a.p.Parse(c) {
		return false
	}
	a.values = append(a.values, a.fn(a.p.Tuple()))
	return true
}

func (a *ActionParser) Unparse(c *Cursor) {
	if len(a.values) == 0 {
		panic("parser: action Unparse without a matching Parse")
	}
	a.values = a.values[:len(a.values)-1]
	a.p.Unparse(c)
}

func (a *ActionParser) Result() Result {
	if len(a.values) == 0 {
		panic("parser: action Result without a successful Parse")
	}
	top := len(a.values) - 1
	value := a.values[top]
	a.values[top] = nil
	return value
}

func (a *ActionParser) Tuple() []Result {
	return []Result{a.Result()}
}
