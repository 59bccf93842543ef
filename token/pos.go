package token

import (
	"fmt"
	"strconv"
)

// Pos is a character position within one source line.
//
// Line is 1-based, Col counts characters (not bytes) from the start of the
// line and is 0-based.
type Pos struct {
	File string
	Line int
	Col  int

	text []rune
}

func (p Pos) sample() string {
	if len(p.text) == 0 {
		return "?"
	}
	lo := max(0, p.Col-5)
	hi := min(p.Col+5, len(p.text))
	if lo >= hi {
		return ""
	}
	s := strconv.Quote(string(p.text[lo:hi]))
	return s[1 : len(s)-1]
}

func (p Pos) Where() string {
	file := p.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d", file, p.Line, p.Col+1)
}

func (p Pos) String() string {
	return fmt.Sprintf("`...%s...` at %s", p.sample(), p.Where())
}
