package libdiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/sector-format/sector"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Tile is the difference at one tile offset.
type Tile struct {
	Op       Op
	X, Y     int
	From, To *sector.Tile
	// Lines diffs the encoded tiles when Op is Replace.
	Lines []Line
}

// Tiles diffs two sectors tile by tile.
//
// Each tile is summarized by its offset as one rune, the rune sequences are
// diffed and tiles at matching offsets are compared by their encoding. A
// delete directly followed by an insert at the same offset, which happens
// when tiles move within a file, is folded into a replace.
func Tiles(from, to *sector.Sector) ([]Tile, error) {
	m := map[[2]int]rune{}
	fromRunes := summarize(m, from)
	toRunes := summarize(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var res []Tile
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				t := from.Tiles[fi]
				res = append(res, Tile{Op: Delete, X: t.OffsetX, Y: t.OffsetY, From: t})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				t := to.Tiles[ti]
				res = append(res, Tile{Op: Insert, X: t.OffsetX, Y: t.OffsetY, To: t})
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				d, err := diffTile(from.Tiles[fi], to.Tiles[ti])
				if err != nil {
					return nil, err
				}
				if d != nil {
					res = append(res, *d)
				}
				fi++
				ti++
			}
		}
	}
	return fold(res)
}

func summarize(m map[[2]int]rune, s *sector.Sector) []rune {
	res := make([]rune, len(s.Tiles))
	for i, t := range s.Tiles {
		k := [2]int{t.OffsetX, t.OffsetY}
		r, ok := m[k]
		if !ok {
			// skip the surrogate range, runes there do not survive
			// conversion to string
			r = rune(len(m))
			if r >= 0xd800 {
				r += 0x800
			}
			m[k] = r
		}
		res[i] = r
	}
	return res
}

func diffTile(from, to *sector.Tile) (*Tile, error) {
	fd, err := encodeTile(from)
	if err != nil {
		return nil, err
	}
	td, err := encodeTile(to)
	if err != nil {
		return nil, err
	}
	if fd == td {
		return nil, nil
	}
	return &Tile{Op: Replace, X: from.OffsetX, Y: from.OffsetY, From: from, To: to, Lines: Lines(fd, td)}, nil
}

func fold(diffs []Tile) ([]Tile, error) {
	res := make([]Tile, 0, len(diffs))
	for _, d := range diffs {
		if n := len(res); n > 0 && d.Op == Insert {
			prev := &res[n-1]
			if prev.Op == Delete && prev.X == d.X && prev.Y == d.Y {
				r, err := diffTile(prev.From, d.To)
				if err != nil {
					return nil, err
				}
				if r == nil {
					res = res[:n-1]
				} else {
					*prev = *r
				}
				continue
			}
		}
		res = append(res, d)
	}
	return res, nil
}

func encodeTile(t *sector.Tile) (string, error) {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTiles prints a tile diff, one header per tile followed by the
// changed lines of replaced tiles.
func WriteTiles(w io.Writer, diffs []Tile) error {
	for i := range diffs {
		d := &diffs[i]
		hdr := fmt.Sprintf("%s %d-%d", d.Op.Mark(), d.X, d.Y)
		if c := opColor(d.Op); c != nil {
			hdr = c.Sprint(hdr)
		}
		if _, err := fmt.Fprintln(w, hdr); err != nil {
			return err
		}
		if d.Op != Replace {
			continue
		}
		if err := WriteLines(w, d.Lines, false); err != nil {
			return err
		}
	}
	return nil
}
