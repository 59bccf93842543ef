package token

import "testing"

func TestCursorCharacters(t *testing.T) {
	c := NewCursor("äb: ∞c")
	if c.Len() != 6 {
		t.Fatalf("len %d", c.Len())
	}
	if i := c.Index(": "); i != 2 {
		t.Errorf("index %d", i)
	}
	if s := c.Slice(0, 2); s != "äb" {
		t.Errorf("slice %q", s)
	}
	c.Advance(4)
	if r, _ := c.Peek(); r != '∞' {
		t.Errorf("peek %q", r)
	}
	if !c.HasPrefix("∞c") || c.HasPrefix("∞cd") {
		t.Errorf("prefix at %d", c.Offset())
	}
	c.Advance(10)
	if !c.Done() || c.Offset() != 6 {
		t.Errorf("offset %d", c.Offset())
	}
	if _, ok := c.Peek(); ok {
		t.Errorf("peek past end")
	}
}

func TestCursorSkipSpaceAndWord(t *testing.T) {
	c := NewCursor("  \tBogus=1")
	if n := c.SkipSpace(); n != 3 {
		t.Errorf("skipped %d", n)
	}
	if w := c.Word(); w != "Bogus" {
		t.Errorf("word %q", w)
	}
	c.Advance(5)
	if w := c.Word(); w != "=" {
		t.Errorf("word %q", w)
	}
}

func TestAtNumber(t *testing.T) {
	for in, want := range map[string]bool{
		"1":   true,
		"-1":  true,
		"-":   false,
		"- 1": false,
		"a1":  false,
		"":    false,
	} {
		if got := AtNumber(NewCursor(in)); got != want {
			t.Errorf("%q: got %t", in, got)
		}
	}
}

func TestPosString(t *testing.T) {
	c := NewLineCursor("x.sec", 3, "12-4: Bogus=1")
	p := c.PosAt(6)
	if got, want := p.String(), "`...2-4: Bogus...` at x.sec:3:7"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
