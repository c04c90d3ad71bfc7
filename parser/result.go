package parser

import (
	"fmt"
	"strings"
)

// Result is the capability shared by all semantic values flowing through
// the combinator machinery. Concrete AST shapes are caller-defined; the
// engine only needs to render a value for display.
type Result interface {
	Render() string
}

// IntResult holds a matched integer literal.
type IntResult struct {
	Value int64
}

func (r *IntResult) Render() string {
	return fmt.Sprintf("[Int: %d]", r.Value)
}

// StringResult holds matched text, such as a keyword or the interior of a
// quoted literal.
type StringResult struct {
	Value string
}

func (r *StringResult) Render() string {
	return fmt.Sprintf("[String: %s]", r.Value)
}

// TupleResult aggregates the sub-results of a sequence in match order.
// Slots for parsers that capture nothing (Char, Many) are nil.
type TupleResult struct {
	Items []Result
}

func (r *TupleResult) Render() string {
	parts := make([]string, len(r.Items))
	for i, item := range r.Items {
		if item == nil {
			parts[i] = "_"
		} else {
			parts[i] = item.Render()
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
