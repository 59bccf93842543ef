package token

// ReadString reads a double quoted literal and returns its contents.
//
// A backslash escapes the character after it; both are kept verbatim in
// the result. The cursor is left just past the closing quote.
func ReadString(c *Cursor) (string, error) {
	start := c.i
	if start >= len(c.d) || c.d[start] != '"' {
		return "", ExpectedErr(`'"'`, c.PosAt(start))
	}
	j := start + 1
	for j < len(c.d) {
		switch c.d[j] {
		case '\\':
			j += 2
			continue
		case '"':
			s := string(c.d[start+1 : j])
			c.i = j + 1
			return s, nil
		}
		j++
	}
	return "", NewSyntaxErr(ErrUnterminated, c.PosAt(start))
}
