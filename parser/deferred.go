package parser

// DeferredParser is a forward-declarable parser handle. A grammar such as
//
//	expr = factor ('+' expr | factor)
//
// cannot be built as one nested value because expr would have to contain
// itself. The handle breaks the cycle: create it empty, use it wherever the
// recursive reference occurs, then Bind it to the finished expression. The
// bound expression is stored behind the Parser interface, so the handle's
// type never reflects the nesting depth of the grammar it stands for.
//
// Recursion through the handle is ordinary call-stack recursion; the engine
// places no depth limit, and a left-recursive grammar will overflow the
// stack. Avoiding that is a property of the grammar, not the engine.
type DeferredParser struct {
	p    Parser
	name string
}

// Deferred returns an unbound handle.
func Deferred() *DeferredParser {
	return &DeferredParser{}
}

// Bind assigns the composed expression to the handle, exactly once.
// Binding twice, or binding nil, is a programming error.
func (d *DeferredParser) Bind(p Parser) {
	if d.p != nil {
		panic("parser: deferred parser bound twice")
	}
	if p == nil {
		panic("parser: deferred parser bound to nil")
	}
	d.p = p
}

func (d *DeferredParser) bound() Parser {
	if d.p == nil {
		panic("parser: deferred parser used before Bind")
	}
	return d.p
}

func (d *DeferredParser) Parse(c *Cursor) bool {
	d.trace("parse", c)
	return d.bound().Parse(c)
}

func (d *DeferredParser) Unparse(c *Cursor) {
	d.trace("unparse", c)
	d.bound().Unparse(c)
}

func (d *DeferredParser) Result() Result {
	return d.bound().Result()
}

func (d *DeferredParser) Tuple() []Result {
	return d.bound().Tuple()
}
