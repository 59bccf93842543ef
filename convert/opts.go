package convert

import (
	"log/slog"
	"runtime"

	"github.com/signadot/sector-format/encode"
	"github.com/signadot/sector-format/parse"
	"github.com/signadot/sector-format/query"
)

type convertOpts struct {
	parse    []parse.ParseOption
	encode   []encode.EncodeOption
	compress bool
	workers  int
	filter   *query.Filter
	log      *slog.Logger
}

type ConvertOption func(*convertOpts)

func newConvertOpts(opts []ConvertOption) *convertOpts {
	res := &convertOpts{}
	for _, opt := range opts {
		opt(res)
	}
	if res.workers <= 0 {
		res.workers = runtime.GOMAXPROCS(0)
	}
	if res.log == nil {
		res.log = slog.Default()
	}
	return res
}

// ConvertParse adds options used to parse every input.
func ConvertParse(opts ...parse.ParseOption) ConvertOption {
	return func(o *convertOpts) { o.parse = append(o.parse, opts...) }
}

// ConvertEncode adds options used to encode every output. The output
// format also decides the output file name.
func ConvertEncode(opts ...encode.EncodeOption) ConvertOption {
	return func(o *convertOpts) { o.encode = append(o.encode, opts...) }
}

// ConvertCompress writes zstd compressed output with a ".zst" suffix.
func ConvertCompress(v bool) ConvertOption {
	return func(o *convertOpts) { o.compress = v }
}

// ConvertWorkers bounds how many files are converted at once in directory
// mode. n <= 0 means GOMAXPROCS.
func ConvertWorkers(n int) ConvertOption {
	return func(o *convertOpts) { o.workers = n }
}

// ConvertFilter keeps only the tiles f matches.
func ConvertFilter(f *query.Filter) ConvertOption {
	return func(o *convertOpts) { o.filter = f }
}

func ConvertLog(l *slog.Logger) ConvertOption {
	return func(o *convertOpts) { o.log = l }
}
