package token

import (
	"fmt"
	"math"
	"strconv"
)

// ReadInt reads an optional '-' followed by one or more decimal digits and
// leaves the cursor on the first character after them.
func ReadInt(c *Cursor) (int, error) {
	start := c.i
	j := start
	if j < len(c.d) && c.d[j] == '-' {
		j++
	}
	digits := asciiDigits(c.d[j:])
	if digits == 0 {
		return 0, NewSyntaxErr(ErrMalformedNumber, c.PosAt(start))
	}
	j += digits
	v, err := strconv.ParseInt(string(c.d[start:j]), 10, 32)
	if err != nil {
		return 0, NewSyntaxErr(fmt.Errorf("%w: %q out of range [%d, %d]",
			ErrMalformedNumber, string(c.d[start:j]), math.MinInt32, math.MaxInt32), c.PosAt(start))
	}
	c.i = j
	return int(v), nil
}

// ParseInt parses s as a complete integer literal.
func ParseInt(s string) (int, error) {
	c := NewCursor(s)
	v, err := ReadInt(c)
	if err != nil {
		return 0, err
	}
	if !c.Done() {
		return 0, NewSyntaxErr(fmt.Errorf("%w: trailing %q", ErrMalformedNumber, c.Rest()), c.Pos())
	}
	return v, nil
}

func asciiDigits(d []rune) int {
	i := 0
	for i < len(d) {
		if !IsDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func IsDigit(r rune) bool {
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

// AtNumber reports whether the cursor is at a digit, or at a '-'
// immediately followed by a digit.
func AtNumber(c *Cursor) bool {
	r, ok := c.Peek()
	if !ok {
		return false
	}
	if IsDigit(r) {
		return true
	}
	if r != '-' {
		return false
	}
	r, ok = c.PeekAt(1)
	return ok && IsDigit(r)
}
