package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/sector-format/sector"
	"github.com/signadot/sector-format/source"
	"github.com/signadot/sector-format/token"

	"golang.org/x/text/encoding"
)

type parser struct {
	opts *parseOpts
	sec  *sector.Sector
}

// Parse decodes a sector from r.
func Parse(r io.Reader, opts ...ParseOption) (*sector.Sector, error) {
	p := &parser{opts: newParseOpts(opts), sec: sector.New()}
	src := source.NewReader(r, source.WithEncoding(p.opts.enc))
	for src.Next() {
		if err := p.line(src.Line()); err != nil {
			return nil, err
		}
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return p.sec, nil
}

// ParseBytes decodes a sector from d in the configured encoding.
func ParseBytes(d []byte, opts ...ParseOption) (*sector.Sector, error) {
	return Parse(bytes.NewReader(d), opts...)
}

// ParseString parses already decoded text, so the input encoding option
// does not apply.
func ParseString(s string, opts ...ParseOption) (*sector.Sector, error) {
	opts = append(opts, ParseEncoding(encoding.Nop))
	return Parse(strings.NewReader(s), opts...)
}

// ParseFile opens and parses the file at path. Positions report path
// unless a file name option says otherwise.
func ParseFile(path string, opts ...ParseOption) (*sector.Sector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	opts = append([]ParseOption{ParseFilename(path)}, opts...)
	return Parse(f, opts...)
}

func (p *parser) report(err error) {
	if p.opts.problems != nil {
		*p.opts.problems = append(*p.opts.problems, err)
	}
	attrs := []any{"error", err}
	var se *token.SyntaxErr
	if errors.As(err, &se) {
		attrs = []any{"file", se.Pos.File, "line", se.Pos.Line, "col", se.Pos.Col + 1, "error", se.Err}
	}
	p.opts.log.Warn("skipping", attrs...)
}

// line scans one line for tile entries.
func (p *parser) line(ln source.Line) error {
	c := token.NewLineCursor(p.opts.filename, ln.No, ln.Text)
	for {
		if !skipToEntry(c) {
			return nil
		}
		start := c.Offset()
		tile, err := p.tile(c)
		switch {
		case err == nil:
			p.sec.Tiles = append(p.sec.Tiles, tile)
		case errors.Is(err, ErrMalformedHeader):
			p.report(err)
		case p.opts.lenient:
			p.report(fmt.Errorf("rest of line dropped: %w", err))
			return nil
		default:
			return err
		}
		if c.Offset() == start {
			c.Advance(1)
		}
	}
}
