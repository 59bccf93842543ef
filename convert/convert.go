// Package convert converts sector files to encoded documents on disk.
//
// A file converts to a sibling named by [OutputPath]. A directory converts
// every regular entry with extension ".sec", several at a time; a failed
// file does not stop the others.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/signadot/sector-format/debug"
	"github.com/signadot/sector-format/encode"
	"github.com/signadot/sector-format/libdiff"
	"github.com/signadot/sector-format/parse"
	"github.com/signadot/sector-format/sector"
	"github.com/signadot/sector-format/source"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
)

// Result describes the conversion of one file.
type Result struct {
	In  string
	Out string
	// Tiles is the number of tiles written, after filtering.
	Tiles int
	// Bytes is the size of the output file.
	Bytes    int64
	Problems []error
	Elapsed  time.Duration
	Err      error

	// Set by Check.
	Stats sector.Stats
	Diff  []libdiff.Line
}

// File converts the sector file at in. The returned result is never nil;
// on failure its Err is the returned error.
func File(ctx context.Context, in string, opts ...ConvertOption) (*Result, error) {
	o := newConvertOpts(opts)
	res := &Result{In: in}
	err := o.file(ctx, res)
	res.Err = err
	return res, err
}

func (o *convertOpts) file(ctx context.Context, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	sec, err := o.parseFile(res.In, &res.Problems)
	if err != nil {
		return err
	}
	parsed := time.Now()
	d, err := encode.Marshal(sec, o.encode...)
	if err != nil {
		return fmt.Errorf("%s: %w", res.In, err)
	}
	res.Tiles = len(sec.Tiles)
	res.Out = OutputPath(res.In, encode.FormatFromOpts(o.encode...), o.compress)
	n, err := writeFile(res.Out, d, o.compress)
	if err != nil {
		return err
	}
	res.Bytes = n
	if debug.Convert() {
		debug.Logf("%s: parse %s encode+write %s\n", res.In, parsed.Sub(start), time.Since(parsed))
	}
	o.log.Debug("converted", "in", res.In, "out", res.Out, "tiles", res.Tiles, "size", humanize.Bytes(uint64(n)))
	return nil
}

func (o *convertOpts) parseFile(in string, problems *[]error) (*sector.Sector, error) {
	popts := append([]parse.ParseOption{
		parse.ParseLog(o.log),
		parse.ParseProblems(problems),
	}, o.parse...)
	sec, err := parse.ParseFile(in, popts...)
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) || errors.Is(err, source.ErrDecode) {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		return nil, err
	}
	if o.filter != nil {
		sec, err = o.filter.Apply(sec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", in, err)
		}
	}
	return sec, nil
}

// writeFile replaces path with d through a temporary file in the same
// directory.
func writeFile(path string, d []byte, compress bool) (int64, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, base+".tmp*")
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	tmp := f.Name()
	err = f.Chmod(0o644)
	var n int64
	if err == nil {
		n, err = write(f, d, compress)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}
	return n, nil
}

func write(f *os.File, d []byte, compress bool) (int64, error) {
	if !compress {
		n, err := f.Write(d)
		return int64(n), err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, err
	}
	if _, err := enc.Write(d); err != nil {
		enc.Close()
		return 0, err
	}
	if err := enc.Close(); err != nil {
		return 0, err
	}
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// readFile reads a converted output, decompressing ".zst" files.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()
	var r io.Reader = f
	if filepath.Ext(path) == compressSuffix {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
		}
		defer dec.Close()
		r = dec
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}
	return d, nil
}

// Inputs lists the entries of dir converted in directory mode, sorted by
// name.
func Inputs(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	var res []string
	for _, ent := range ents {
		if !ent.Type().IsRegular() || !IsSector(ent.Name()) {
			continue
		}
		res = append(res, filepath.Join(dir, ent.Name()))
	}
	sort.Strings(res)
	return res, nil
}

// Dir converts the sector files in dir. Each file has a result, in name
// order; failures are recorded in the results and do not stop the batch.
func Dir(ctx context.Context, dir string, opts ...ConvertOption) ([]*Result, error) {
	o := newConvertOpts(opts)
	ins, err := Inputs(dir)
	if err != nil {
		return nil, err
	}
	return o.each(ctx, ins, o.file), nil
}

// each runs f over ins with at most o.workers running at once.
func (o *convertOpts) each(ctx context.Context, ins []string, f func(context.Context, *Result) error) []*Result {
	results := make([]*Result, len(ins))
	g := &errgroup.Group{}
	g.SetLimit(o.workers)
	for i, in := range ins {
		res := &Result{In: in}
		results[i] = res
		g.Go(func() error {
			res.Err = f(ctx, res)
			return nil
		})
	}
	g.Wait()
	return results
}

// Path converts the file or directory at p.
func Path(ctx context.Context, p string, opts ...ConvertOption) ([]*Result, error) {
	o := newConvertOpts(opts)
	return o.path(ctx, p, o.file)
}

func (o *convertOpts) path(ctx context.Context, p string, f func(context.Context, *Result) error) ([]*Result, error) {
	fi, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	switch {
	case fi.IsDir():
		ins, err := Inputs(p)
		if err != nil {
			return nil, err
		}
		return o.each(ctx, ins, f), nil
	case fi.Mode().IsRegular():
		res := &Result{In: p}
		res.Err = f(ctx, res)
		return []*Result{res}, nil
	default:
		return nil, fmt.Errorf("%w: %s is neither a regular file nor a directory", ErrNotSector, p)
	}
}

// Failed counts the results with an error.
func Failed(results []*Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
