package source

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var ErrBadCharset = errors.New("bad charset")

var charsets = map[string]encoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
}

const DefaultCharset = "windows-1252"

// Charset returns the encoding with the given name.
func Charset(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultCharset
	}
	enc, ok := charsets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (one of %s)", ErrBadCharset, name, strings.Join(Charsets(), ", "))
	}
	return enc, nil
}

func Charsets() []string {
	res := make([]string, 0, len(charsets))
	for k := range charsets {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
