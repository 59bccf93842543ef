// Package keyword holds the closed vocabulary of tile flags and item
// attributes, and matches it exactly against the text at a cursor.
package keyword

import (
	"sort"
	"unicode"

	"github.com/signadot/sector-format/sector"
	"github.com/signadot/sector-format/token"
)

// Kind is the kind of value that follows a keyword.
type Kind int

const (
	Flag Kind = iota
	Int
	String
	Content
)

func (k Kind) String() string {
	return map[Kind]string{
		Flag:    "flag",
		Int:     "int",
		String:  "string",
		Content: "content",
	}[k]
}

type Keyword struct {
	Name    string
	Aliases []string
	Kind    Kind
	Field   sector.Field
}

// Table is a closed set of keywords.
type Table struct {
	kws []*Keyword
	// every spelling, longest first
	spellings []spelling
}

type spelling struct {
	text string
	kw   *Keyword
}

func NewTable(kws ...*Keyword) *Table {
	t := &Table{kws: kws}
	for _, kw := range kws {
		t.spellings = append(t.spellings, spelling{text: kw.Name, kw: kw})
		for _, a := range kw.Aliases {
			t.spellings = append(t.spellings, spelling{text: a, kw: kw})
		}
	}
	sort.SliceStable(t.spellings, func(i, j int) bool {
		return len([]rune(t.spellings[i].text)) > len([]rune(t.spellings[j].text))
	})
	return t
}

func (t *Table) Keywords() []*Keyword {
	return t.kws
}

// Lookup finds a keyword by name or alias.
func (t *Table) Lookup(name string) *Keyword {
	for _, sp := range t.spellings {
		if sp.text == name {
			return sp.kw
		}
	}
	return nil
}

// Match matches a keyword and its separator at the cursor.
//
// A spelling matches only when it is followed by a separator, so a keyword
// never matches the prefix of a longer word. Value keywords take ':' or '='.
// Flags take ':' or ',', or simply end at white space or the end of the
// line. On a match the cursor is moved past the separator and any white
// space after it; otherwise it does not move.
func (t *Table) Match(c *token.Cursor) (*Keyword, bool) {
	for _, sp := range t.spellings {
		if !c.HasPrefix(sp.text) {
			continue
		}
		n := len([]rune(sp.text))
		r, ok := c.PeekAt(n)
		switch {
		case !ok:
			if sp.kw.Kind != Flag {
				continue
			}
		case r == ':':
			n++
		case r == '=':
			if sp.kw.Kind == Flag {
				continue
			}
			n++
		case r == ',':
			if sp.kw.Kind != Flag {
				continue
			}
			n++
		case unicode.IsSpace(r):
			if sp.kw.Kind != Flag {
				continue
			}
		default:
			continue
		}
		c.Advance(n)
		c.SkipSpace()
		return sp.kw, true
	}
	return nil, false
}
