// Package parser provides backtracking recursive-descent parser combinators.
//
// # Overview
//
// A grammar is written directly as a Go expression: terminal parsers
// (Char, String, Quoted, Int, End) are composed with Chain, Alt, Many and
// Maybe into larger parsers, and a DeferredParser handle closes recursive
// cycles. Running the root parser against a Cursor either consumes a prefix
// of the input and produces a Result, or fails and restores the cursor to
// exactly where it started.
//
//	expr := parser.Deferred()
//	sum := parser.Apply(
//		parser.Seq(parser.Int(), parser.Char('+'), expr),
//		func(rs []parser.Result) parser.Result { ... },
//	)
//	expr.Bind(parser.Or(sum, parser.Int()))
//
//	cursor := parser.NewCursorString("1+2+3")
//	if expr.Parse(cursor) {
//		fmt.Println(expr.Result().Render())
//	}
//
// # Backtracking
//
// Parse is all-or-nothing for the subtree it governs. A failed Parse leaves
// the cursor untouched; a successful Parse can be reversed with Unparse,
// which every combinator applies to its children in LIFO order. Whitespace
// consumed by a skip policy is undone in lock-step, so failed alternatives
// never leak skipped input.
//
// # Reentrancy
//
// Recursive grammars re-enter a parser value while an outer invocation of
// the same value is still on the call stack. All per-invocation state
// (consumed lengths, chosen branches, repetition counts, captured values)
// therefore lives on LIFO stacks inside each parser, and sequencing pulls a
// sub-parser's values out before running its sibling.
//
// Mismatches are reported as a false return from Parse. Misuse of the API
// (an unbound deferred handle, unmatched Unparse, cursor underflow) is a
// programming error and panics.
package parser
