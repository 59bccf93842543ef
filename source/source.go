// Package source turns a sector file's bytes into the lines the parser
// reads.
//
// Input is decoded from a single byte legacy code page (Windows-1252 unless
// told otherwise). Empty lines and lines starting with '#' are dropped.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var ErrDecode = errors.New("decoding error")

const maxLineSize = 16 << 20

// Line is a decoded line with its 1-based line number in the input.
type Line struct {
	No   int
	Text string
}

type Reader struct {
	sc   *bufio.Scanner
	no   int
	line Line
	err  error
}

type Option func(*opts)

type opts struct {
	enc encoding.Encoding
}

// WithEncoding sets the encoding the input is decoded from.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *opts) { o.enc = enc }
}

func NewReader(r io.Reader, options ...Option) *Reader {
	o := &opts{enc: charmap.Windows1252}
	for _, f := range options {
		f(o)
	}
	sc := bufio.NewScanner(o.enc.NewDecoder().Reader(r))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{sc: sc}
}

// Next advances to the next line that carries content.
func (r *Reader) Next() bool {
	for r.sc.Scan() {
		r.no++
		text := r.sc.Text()
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		r.line = Line{No: r.no, Text: text}
		return true
	}
	if err := r.sc.Err(); err != nil {
		r.err = fmt.Errorf("%w: line %d: %w", ErrDecode, r.no+1, err)
	}
	return false
}

func (r *Reader) Line() Line {
	return r.line
}

// Err returns the first read error, nil at a clean end of input.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll returns every content line of r.
func ReadAll(r io.Reader, options ...Option) ([]Line, error) {
	var res []Line
	rd := NewReader(r, options...)
	for rd.Next() {
		res = append(res, rd.Line())
	}
	return res, rd.Err()
}
