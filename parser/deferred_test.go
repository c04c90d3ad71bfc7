package parser

import "testing"

func TestDeferredUnboundPanics(t *testing.T) {
	d := Deferred()
	c := NewCursorString("x")
	mustPanic(t, func() { d.Parse(c) })
	mustPanic(t, func() { d.Unparse(c) })
	mustPanic(t, func() { d.Result() })
}

func TestDeferredDoubleBindPanics(t *testing.T) {
	d := Deferred()
	d.Bind(Char('x'))
	mustPanic(t, func() { d.Bind(Char('y')) })
}

func TestDeferredBindNilPanics(t *testing.T) {
	mustPanic(t, func() { Deferred().Bind(nil) })
}

func TestDeferredForwards(t *testing.T) {
	d := Deferred()
	d.Bind(Int())
	c := NewCursorString("42")
	if !d.Parse(c) {
		t.Fatal("Parse failed")
	}
	res, ok := d.Result().(*IntResult)
	if !ok || res.Value != 42 {
		t.Errorf("Result = %#v, want IntResult 42", res)
	}
	d.Unparse(c)
	if c.Pos() != 0 {
		t.Errorf("Pos() after Unparse = %d, want 0", c.Pos())
	}
}

// The nested-block grammar: a handle used inside its own definition.
//
//	block = '{' '}'
//	      | '{' "int=" "abc" block '}'
//	      | '{' "double=" "xyz" block '}'
func TestDeferredRecursiveBlocks(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"{}", true},
		{"{ int= abc { } }", true},
		{"  { int=   abc {    double=   xyz{   int=abc{  }   }   }   }", true},
		{"{ int= abc }", false},
		{"{ int= abc { }", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			block := Deferred()
			block.Bind(Or(
				Chain(String("{"), String("}")),
				Seq(String("{"), String("int="), String("abc"), block, String("}")),
				Seq(String("{"), String("double="), String("xyz"), block, String("}")),
			))

			c := NewCursorString(tt.input)
			got := Chain(block, End()).Parse(c)
			if got != tt.want {
				t.Errorf("Parse = %v, want %v", got, tt.want)
			}
			if !tt.want && c.Pos() != 0 {
				t.Errorf("Pos() = %d, want 0 after failure", c.Pos())
			}
		})
	}
}

// A right-recursive list grammar exercises reentrant undo state: the same
// parser values live on several call-stack frames at once, and a failed
// outer alternative must unwind the whole nest exactly.
func TestDeferredReentrantRollback(t *testing.T) {
	list := Deferred()
	list.Bind(Alt(
		Seq(Int(), Char(','), list),
		Int(),
	))

	// The list parses greedily but the trailing 'x' forces End to fail,
	// so the whole parse fails and the cursor must return to zero.
	c := NewCursorString("1,2,3 x")
	if Chain(list, End()).Parse(c) {
		t.Fatal("unexpected match")
	}
	if c.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", c.Pos())
	}

	// Without the trailing junk the same grammar consumes everything.
	c = NewCursorString("1,2,3")
	if !Chain(list, End()).Parse(c) {
		t.Fatal("Parse failed")
	}
	if c.Pos() != 5 {
		t.Errorf("Pos() = %d, want 5", c.Pos())
	}
}
