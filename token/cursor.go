package token

import "unicode"

// Cursor walks a decoded line one character at a time.
//
// All offsets are in characters, never in bytes, so a slice between two
// offsets always falls on character boundaries regardless of how many
// bytes each character takes in the underlying string.
type Cursor struct {
	d    []rune
	i    int
	file string
	line int
}

func NewCursor(text string) *Cursor {
	return &Cursor{d: []rune(text)}
}

// NewLineCursor returns a cursor whose positions report file and line.
func NewLineCursor(file string, line int, text string) *Cursor {
	return &Cursor{d: []rune(text), file: file, line: line}
}

func (c *Cursor) Offset() int { return c.i }
func (c *Cursor) Len() int    { return len(c.d) }
func (c *Cursor) Done() bool  { return c.i >= len(c.d) }

func (c *Cursor) SetOffset(i int) {
	c.i = min(max(i, 0), len(c.d))
}

func (c *Cursor) Advance(n int) {
	c.SetOffset(c.i + n)
}

func (c *Cursor) Peek() (rune, bool) {
	return c.PeekAt(0)
}

// PeekAt returns the character n characters after the current one.
func (c *Cursor) PeekAt(n int) (rune, bool) {
	j := c.i + n
	if j < 0 || j >= len(c.d) {
		return 0, false
	}
	return c.d[j], true
}

// HasPrefix reports whether the unconsumed text starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	j := c.i
	for _, r := range s {
		if j >= len(c.d) || c.d[j] != r {
			return false
		}
		j++
	}
	return true
}

// Index returns the character offset of s relative to the current
// position, or -1.
func (c *Cursor) Index(s string) int {
	pat := []rune(s)
	if len(pat) == 0 {
		return 0
	}
outer:
	for j := c.i; j+len(pat) <= len(c.d); j++ {
		for k, r := range pat {
			if c.d[j+k] != r {
				continue outer
			}
		}
		return j - c.i
	}
	return -1
}

// Slice returns the text between two absolute character offsets.
func (c *Cursor) Slice(from, to int) string {
	from = min(max(from, 0), len(c.d))
	to = min(max(to, from), len(c.d))
	return string(c.d[from:to])
}

func (c *Cursor) Rest() string {
	return string(c.d[c.i:])
}

// SkipSpace consumes white space and returns how many characters it
// consumed.
func (c *Cursor) SkipSpace() int {
	n := 0
	for c.i < len(c.d) && unicode.IsSpace(c.d[c.i]) {
		c.i++
		n++
	}
	return n
}

// Word returns the run of letters at the cursor without consuming it.
func (c *Cursor) Word() string {
	j := c.i
	for j < len(c.d) && unicode.IsLetter(c.d[j]) {
		j++
	}
	if j == c.i && j < len(c.d) {
		j++
	}
	return string(c.d[c.i:j])
}

func (c *Cursor) Pos() *Pos {
	return c.PosAt(c.i)
}

func (c *Cursor) PosAt(i int) *Pos {
	return &Pos{File: c.file, Line: c.line, Col: i, text: c.d}
}
