package parse

import (
	"log/slog"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const DefaultMaxDepth = 64

type parseOpts struct {
	filename string
	enc      encoding.Encoding
	maxDepth int
	lenient  bool
	log      *slog.Logger
	problems *[]error
}

type ParseOption func(*parseOpts)

func newParseOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{
		enc:      charmap.Windows1252,
		maxDepth: DefaultMaxDepth,
	}
	for _, f := range opts {
		f(o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	if o.maxDepth <= 0 {
		o.maxDepth = DefaultMaxDepth
	}
	return o
}

// ParseFilename sets the file name reported in positions.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParseEncoding sets the encoding of the input bytes.
func ParseEncoding(enc encoding.Encoding) ParseOption {
	return func(o *parseOpts) { o.enc = enc }
}

// ParseMaxDepth bounds how deeply content lists may nest.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParseLenient makes per tile failures skip the rest of their line instead
// of failing the whole input.
func ParseLenient(v bool) ParseOption {
	return func(o *parseOpts) { o.lenient = v }
}

func ParseLog(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.log = l }
}

// ParseProblems collects every recovered problem into p.
func ParseProblems(p *[]error) ParseOption {
	return func(o *parseOpts) { o.problems = p }
}
