package token

import (
	"errors"
	"testing"
)

type intTest struct {
	in   string
	out  int
	rest string
	err  error
}

func TestReadInt(t *testing.T) {
	its := []intTest{
		{in: `0`, out: 0},
		{in: `42`, out: 42},
		{in: `-17 x`, out: -17, rest: ` x`},
		{in: `1000}`, out: 1000, rest: `}`},
		{in: `12-3`, out: 12, rest: `-3`},
		{in: `007,`, out: 7, rest: `,`},
		{in: `2147483647`, out: 2147483647},
		{in: `-2147483648`, out: -2147483648},
		{in: `2147483648`, err: ErrMalformedNumber},
		{in: `-`, err: ErrMalformedNumber},
		{in: `--1`, err: ErrMalformedNumber},
		{in: `x1`, err: ErrMalformedNumber},
		{in: ``, err: ErrMalformedNumber},
		{in: `٣`, err: ErrMalformedNumber},
	}
	for _, it := range its {
		c := NewCursor(it.in)
		v, err := ReadInt(c)
		if it.err != nil {
			if !errors.Is(err, it.err) {
				t.Errorf("%q: got error %v want %v", it.in, err, it.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", it.in, err)
			continue
		}
		if v != it.out {
			t.Errorf("%q: got %d want %d", it.in, v, it.out)
		}
		if c.Rest() != it.rest {
			t.Errorf("%q: rest %q want %q", it.in, c.Rest(), it.rest)
		}
	}
}

func TestParseInt(t *testing.T) {
	if v, err := ParseInt("-12"); err != nil || v != -12 {
		t.Errorf("got %d, %v", v, err)
	}
	for _, s := range []string{"", "1a", "1 ", "-"} {
		if _, err := ParseInt(s); !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("%q: got %v", s, err)
		}
	}
}

func TestMalformedNumberPos(t *testing.T) {
	c := NewLineCursor("a.sec", 7, "ab Amount=x")
	c.SetOffset(10)
	_, err := ReadInt(c)
	var se *SyntaxErr
	if !errors.As(err, &se) {
		t.Fatalf("got %T", err)
	}
	if se.Pos.Line != 7 || se.Pos.Col != 10 || se.Pos.File != "a.sec" {
		t.Errorf("pos %+v", se.Pos)
	}
	if got, want := se.Pos.Where(), "a.sec:7:11"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
