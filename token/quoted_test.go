package token

import (
	"errors"
	"testing"
	"unicode/utf8"
)

type quotedTest struct {
	in   string
	out  string
	rest string
	err  error
}

func TestReadString(t *testing.T) {
	qts := []quotedTest{
		{in: `"abc"`, out: `abc`},
		{in: `""`, out: ``},
		{in: `"abc" Amount=1`, out: `abc`, rest: ` Amount=1`},
		{in: `"He said \"hi\""`, out: `He said \"hi\"`},
		{in: `"a\\" b"`, out: `a\\`, rest: ` b"`},
		{in: `"Café" x`, out: `Café`, rest: ` x`},
		{in: `"Ünïcödé ∞ \"ö\"", 12`, out: `Ünïcödé ∞ \"ö\"`, rest: `, 12`},
		{in: `"abc`, err: ErrUnterminated},
		{in: `"abc\"`, err: ErrUnterminated},
		{in: `"abc\`, err: ErrUnterminated},
		{in: `abc"`, err: ErrExpected},
		{in: ``, err: ErrExpected},
	}
	for _, qt := range qts {
		c := NewCursor(qt.in)
		s, err := ReadString(c)
		if qt.err != nil {
			if !errors.Is(err, qt.err) {
				t.Errorf("%q: got error %v want %v", qt.in, err, qt.err)
			}
			if c.Offset() != 0 {
				t.Errorf("%q: cursor moved to %d on error", qt.in, c.Offset())
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", qt.in, err)
			continue
		}
		if s != qt.out {
			t.Errorf("%q: got %q want %q", qt.in, s, qt.out)
		}
		if c.Rest() != qt.rest {
			t.Errorf("%q: rest %q want %q", qt.in, c.Rest(), qt.rest)
		}
	}
}

func TestReadStringAdvancesByCharacters(t *testing.T) {
	in := `"Brücke über Fluß" Level=3`
	c := NewCursor(in)
	s, err := ReadString(c)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := utf8.RuneCountInString(s), 16; got != want {
		t.Errorf("got %d characters want %d", got, want)
	}
	// 16 characters plus two quotes, fewer than the byte length
	if c.Offset() != 18 {
		t.Errorf("offset %d want 18", c.Offset())
	}
	if len(`"Brücke über Fluß"`) == c.Offset() {
		t.Errorf("offset counts bytes")
	}
	if !c.HasPrefix(" Level=3") {
		t.Errorf("rest %q", c.Rest())
	}
}

func TestReadStringEscapedQuoteOffset(t *testing.T) {
	in := `"He said \"hi\"", 2`
	c := NewCursor(in)
	if _, err := ReadString(c); err != nil {
		t.Fatal(err)
	}
	if want := len([]rune(`"He said \"hi\""`)); c.Offset() != want {
		t.Errorf("offset %d want %d", c.Offset(), want)
	}
}
