package convert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/signadot/sector-format/encode"
	"github.com/signadot/sector-format/libdiff"
)

var ErrMismatch = errors.New("output differs")

// Check parses the file or directory at p without writing anything. Each
// result carries the parsed statistics and the problems found. With
// verify set, the existing output of each file is compared with a fresh
// encoding: Diff holds the line diff and Err is ErrMismatch when they
// differ.
//
// Encode options apply, so encode.EncodeValidate(true) checks every
// document against the schema.
func Check(ctx context.Context, p string, verify bool, opts ...ConvertOption) ([]*Result, error) {
	o := newConvertOpts(opts)
	return o.path(ctx, p, func(ctx context.Context, res *Result) error {
		return o.check(ctx, res, verify)
	})
}

func (o *convertOpts) check(ctx context.Context, res *Result, verify bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	sec, err := o.parseFile(res.In, &res.Problems)
	if err != nil {
		return err
	}
	res.Stats = sec.Stats()
	res.Tiles = res.Stats.Tiles
	d, err := encode.Marshal(sec, o.encode...)
	if err != nil {
		return fmt.Errorf("%s: %w", res.In, err)
	}
	if !verify {
		return nil
	}
	res.Out = OutputPath(res.In, encode.FormatFromOpts(o.encode...), o.compress)
	have, err := readFile(res.Out)
	if err != nil {
		return err
	}
	res.Bytes = int64(len(have))
	res.Diff = libdiff.Lines(string(have), string(d))
	if libdiff.Changed(res.Diff) {
		return fmt.Errorf("%w: %s", ErrMismatch, res.Out)
	}
	return nil
}
