package parse

import (
	"fmt"
	"unicode"

	"github.com/signadot/sector-format/debug"
	"github.com/signadot/sector-format/keyword"
	"github.com/signadot/sector-format/sector"
	"github.com/signadot/sector-format/token"
)

// content parses a brace delimited, comma separated item list. depth is
// the nesting level of the list, 1 for a tile's own content.
//
// The list ends at a '}' or at the end of the line. The result is never
// nil, so an empty list stays distinct from an absent one.
func (p *parser) content(c *token.Cursor, depth int) ([]*sector.Item, error) {
	if depth > p.opts.maxDepth {
		return nil, token.NewSyntaxErr(fmt.Errorf("%w: more than %d levels", ErrTooDeep, p.opts.maxDepth), c.Pos())
	}
	items := []*sector.Item{}
	for {
		// find the next item id; '{' and ',' are skipped along the way
		for !token.AtNumber(c) {
			r, ok := c.Peek()
			if !ok {
				return items, nil
			}
			c.Advance(1)
			if r == '}' {
				return items, nil
			}
		}
		it, closed, err := p.item(c, depth)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		if closed {
			return items, nil
		}
	}
}

// item parses `<id> [Keyword=value ]*` and reports whether the enclosing
// list was closed by it.
func (p *parser) item(c *token.Cursor, depth int) (*sector.Item, bool, error) {
	pos := c.Pos()
	id, err := token.ReadInt(c)
	if err != nil {
		return nil, false, err
	}
	it := sector.NewItem(id)
	if debug.Content() {
		debug.Logf("%*sitem %d at %s\n", 2*(depth-1), "", id, pos.Where())
	}
	for {
		r, ok := c.Peek()
		if !ok {
			return it, true, nil
		}
		switch {
		case r == '}':
			c.Advance(1)
			return it, true, nil
		case r == ',':
			c.Advance(1)
			return it, false, nil
		case unicode.IsSpace(r):
			c.Advance(1)
			continue
		}
		kwPos := c.Pos()
		kw, ok := keyword.Item().Match(c)
		if !ok {
			return nil, false, token.NewSyntaxErr(fmt.Errorf("%w %q in item %d", ErrUnknownKeyword, c.Word(), id), kwPos)
		}
		if err := p.value(c, it, kw, depth); err != nil {
			return nil, false, err
		}
	}
}

func (p *parser) value(c *token.Cursor, it *sector.Item, kw *keyword.Keyword, depth int) error {
	pos := c.Pos()
	switch kw.Kind {
	case keyword.Int:
		v, err := token.ReadInt(c)
		if err != nil {
			return err
		}
		if err := it.SetInt(kw.Field, v); err != nil {
			return token.NewSyntaxErr(err, pos)
		}
	case keyword.String:
		s, err := token.ReadString(c)
		if err != nil {
			return err
		}
		if err := it.SetString(kw.Field, s); err != nil {
			return token.NewSyntaxErr(err, pos)
		}
	case keyword.Content:
		items, err := p.content(c, depth+1)
		if err != nil {
			return err
		}
		it.Content = items
	default:
		return token.NewSyntaxErr(fmt.Errorf("%w: %s takes no value", ErrUnknownKeyword, kw.Name), pos)
	}
	return nil
}
