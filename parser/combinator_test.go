package parser

import "testing"

func TestChain(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantPos int
	}{
		{"hello world", true, 11},
		{"hello there", false, 0},
		{"goodbye", false, 0},
		{"hello", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := Chain(String("hello"), String("world"))
			c := NewCursorString(tt.input)
			got := p.Parse(c)
			if got != tt.want {
				t.Errorf("Parse = %v, want %v", got, tt.want)
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.wantPos)
			}
		})
	}
}

func TestChainUnparse(t *testing.T) {
	p := Chain(String("a"), Chain(Int(), String("b")))
	c := NewCursorString(" a 12 b tail")
	if !p.Parse(c) {
		t.Fatal("Parse failed")
	}
	p.Unparse(c)
	if c.Pos() != 0 {
		t.Errorf("Pos() after Unparse = %d, want 0", c.Pos())
	}
	mustPanic(t, func() { p.Unparse(c) })
}

func TestAltBias(t *testing.T) {
	// Both branches match; the left one wins.
	p := Alt(String("hello"), String("hell"))
	c := NewCursorString("hello world")
	if !p.Parse(c) {
		t.Fatal("Parse failed")
	}
	if c.Pos() != 5 {
		t.Errorf("Pos() = %d, want 5", c.Pos())
	}
	res, ok := p.Result().(*StringResult)
	if !ok || res.Value != "hello" {
		t.Errorf("Result = %#v, want StringResult %q", res, "hello")
	}
}

func TestAltSecondBranch(t *testing.T) {
	p := Alt(String("good"), String("hello"))
	c := NewCursorString("hello")
	if !p.Parse(c) {
		t.Fatal("Parse failed")
	}
	res, ok := p.Result().(*StringResult)
	if !ok || res.Value != "hello" {
		t.Errorf("Result = %#v, want StringResult %q", res, "hello")
	}
}

func TestAltBothFail(t *testing.T) {
	p := Alt(String("good"), String("hello"))
	c := NewCursorString("  nope")
	if p.Parse(c) {
		t.Fatal("unexpected match")
	}
	if c.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", c.Pos())
	}
}

func TestAltUnparse(t *testing.T) {
	p := Alt(String("good"), String("hello"))
	c := NewCursorString("hello")
	if !p.Parse(c) {
		t.Fatal("Parse failed")
	}
	p.Unparse(c)
	if c.Pos() != 0 {
		t.Errorf("Pos() after Unparse = %d, want 0", c.Pos())
	}
	mustPanic(t, func() { p.Unparse(c) })
}

func TestManyAlwaysSucceeds(t *testing.T) {
	tests := []struct {
		input   string
		wantPos int
	}{
		{"", 0},
		{"xyz", 0},
		{"ab xyz", 3},
		{"ab ab ab", 8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := Many(String("ab"))
			c := NewCursorString(tt.input)
			if !p.Parse(c) {
				t.Error("Many returned false")
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.wantPos)
			}
		})
	}
}

func TestManyUnparse(t *testing.T) {
	p := Many(Int())
	c := NewCursorString("1 2 3 end")
	if !p.Parse(c) {
		t.Fatal("Parse failed")
	}
	if c.Pos() != 5 {
		t.Fatalf("Pos() = %d, want 5", c.Pos())
	}
	p.Unparse(c)
	if c.Pos() != 0 {
		t.Errorf("Pos() after Unparse = %d, want 0", c.Pos())
	}
}

// Two repetition contexts sharing one sub-parser value must each undo
// exactly their own matches.
func TestManySharedSubParser(t *testing.T) {
	p := Char('a', NoSkip())
	grammar := Chain(Many(p), Chain(Char('b', NoSkip()), Many(p)))
	c := NewCursorString("aabaaa")
	if !grammar.Parse(c) {
		t.Fatal("Parse failed")
	}
	if c.Pos() != 6 {
		t.Fatalf("Pos() = %d, want 6", c.Pos())
	}
	grammar.Unparse(c)
	if c.Pos() != 0 {
		t.Errorf("Pos() after Unparse = %d, want 0", c.Pos())
	}
}

func TestMaybe(t *testing.T) {
	tests := []struct {
		input   string
		wantPos int
	}{
		{"x rest", 1},
		{"rest", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := Maybe(Char('x'))
			c := NewCursorString(tt.input)
			if !p.Parse(c) {
				t.Error("Maybe returned false")
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.wantPos)
			}
			p.Unparse(c)
			if c.Pos() != 0 {
				t.Errorf("Pos() after Unparse = %d, want 0", c.Pos())
			}
		})
	}
}

func TestOneOrMore(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantPos int
	}{
		{"hello hello hello hello hello hello", true, 35},
		{"hello", true, 5},
		{"nope", false, 0},
		{"", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := OneOrMore(String("hello"))
			c := NewCursorString(tt.input)
			got := p.Parse(c)
			if got != tt.want {
				t.Errorf("Parse = %v, want %v", got, tt.want)
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.wantPos)
			}
		})
	}
}

// OneOrMore places the same parser value in both the head and the
// repetition; unwinding must pop exactly one frame per match.
func TestOneOrMoreSharedUnparse(t *testing.T) {
	p := OneOrMore(Int())
	c := NewCursorString("1 2 3")
	if !p.Parse(c) {
		t.Fatal("Parse failed")
	}
	if c.Pos() != 5 {
		t.Fatalf("Pos() = %d, want 5", c.Pos())
	}
	p.Unparse(c)
	if c.Pos() != 0 {
		t.Errorf("Pos() after Unparse = %d, want 0", c.Pos())
	}
}

// Parse, unparse, parse again: same outcome, same consumed length.
func TestReparseAfterUnparse(t *testing.T) {
	p := Seq(String("a"), Int(), Maybe(Char('!')))
	c := NewCursorString(" a 42 ! tail")

	if !p.Parse(c) {
		t.Fatal("first Parse failed")
	}
	consumed := c.Pos()

	p.Unparse(c)
	if c.Pos() != 0 {
		t.Fatalf("Pos() after Unparse = %d, want 0", c.Pos())
	}

	if !p.Parse(c) {
		t.Fatal("second Parse failed")
	}
	if c.Pos() != consumed {
		t.Errorf("second Parse consumed %d, first consumed %d", c.Pos(), consumed)
	}
}

func TestSeqFlatTuple(t *testing.T) {
	var got []Result
	p := Apply(
		Seq(Char('-'), Int(), Quoted()),
		func(rs []Result) Result {
			got = append([]Result(nil), rs...)
			return rs[1]
		},
	)

	c := NewCursorString(`- 7 "x"`)
	if !p.Parse(c) {
		t.Fatal("Parse failed")
	}
	if len(got) != 3 {
		t.Fatalf("action saw %d slots, want 3", len(got))
	}
	if got[0] != nil {
		t.Errorf("slot 0 = %#v, want nil (Char captures nothing)", got[0])
	}
	if res, ok := got[1].(*IntResult); !ok || res.Value != 7 {
		t.Errorf("slot 1 = %#v, want IntResult 7", got[1])
	}
	if res, ok := got[2].(*StringResult); !ok || res.Value != "x" {
		t.Errorf("slot 2 = %#v, want StringResult %q", got[2], "x")
	}
	if res, ok := p.Result().(*IntResult); !ok || res.Value != 7 {
		t.Errorf("Result = %#v, want IntResult 7", p.Result())
	}
}

func TestEndInChain(t *testing.T) {
	p := Chain(String("done"), End())
	tests := []struct {
		input string
		want  bool
	}{
		{"done", true},
		{"done  ", true},
		{"done more", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := NewCursorString(tt.input)
			if got := p.Parse(c); got != tt.want {
				t.Errorf("Parse = %v, want %v", got, tt.want)
			}
			if !tt.want && c.Pos() != 0 {
				t.Errorf("Pos() = %d, want 0", c.Pos())
			}
		})
	}
}
