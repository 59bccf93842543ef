package parse

import "github.com/signadot/sector-format/token"

// skipToEntry moves the cursor to the start of the next tile entry on the
// line, a digit or a '-' before a digit. It reports false when the line has
// none left.
func skipToEntry(c *token.Cursor) bool {
	for !c.Done() {
		if token.AtNumber(c) {
			return true
		}
		c.Advance(1)
	}
	return false
}
