package parse

import (
	"fmt"
	"strings"

	"github.com/signadot/sector-format/debug"
	"github.com/signadot/sector-format/keyword"
	"github.com/signadot/sector-format/sector"
	"github.com/signadot/sector-format/token"
)

const headerSep = ": "

// tile parses one entry `<x>-<y>: <flags> [Content...]` starting at the
// cursor.
//
// A header that does not split into exactly two integers yields
// ErrMalformedHeader. This includes every negative offset: "-5-3" and
// "5--3" both split into three parts. The body of such a tile is still
// consumed so that scanning resumes after it.
func (p *parser) tile(c *token.Cursor) (*sector.Tile, error) {
	start := c.Offset()
	pos := c.Pos()
	n := c.Index(headerSep)
	if n < 0 {
		hdr := c.Rest()
		c.SetOffset(c.Len())
		return nil, token.NewSyntaxErr(fmt.Errorf("%w: no %q after %q", ErrMalformedHeader, headerSep, hdr), pos)
	}
	hdr := c.Slice(start, start+n)
	c.Advance(n + len(headerSep))

	x, y, hdrErr := splitHeader(hdr)
	tile := sector.NewTile(x, y)
	if err := p.tileBody(c, tile); err != nil {
		return nil, err
	}
	if hdrErr != nil {
		return nil, token.NewSyntaxErr(hdrErr, pos)
	}
	if debug.Scan() {
		debug.Logf("tile %d,%d at %s\n", x, y, pos.Where())
	}
	return tile, nil
}

func splitHeader(hdr string) (int, int, error) {
	parts := strings.Split(hdr, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q splits into %d parts", ErrMalformedHeader, hdr, len(parts))
	}
	x, err := token.ParseInt(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: x offset %q: %w", ErrMalformedHeader, parts[0], err)
	}
	y, err := token.ParseInt(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: y offset %q: %w", ErrMalformedHeader, parts[1], err)
	}
	return x, y, nil
}

// tileBody reads the flag run after a header. The run ends at the first
// token that is not a tile keyword, or after a Content list.
func (p *parser) tileBody(c *token.Cursor, tile *sector.Tile) error {
	for !c.Done() {
		c.SkipSpace()
		kw, ok := keyword.Tile().Match(c)
		if !ok {
			return nil
		}
		switch kw.Kind {
		case keyword.Flag:
			if err := tile.SetFlag(kw.Field); err != nil {
				return token.NewSyntaxErr(err, c.Pos())
			}
		case keyword.Content:
			items, err := p.content(c, 1)
			if err != nil {
				return err
			}
			tile.Content = items
			return nil
		}
	}
	return nil
}
