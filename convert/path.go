package convert

import (
	"path/filepath"
	"strings"

	"github.com/signadot/sector-format/format"
)

const (
	InputSuffix    = ".sec"
	compressSuffix = ".zst"
)

// OutputPath names the output of in: its extension is replaced by the
// format's suffix, or the suffix is appended when in has no extension.
// Compressed output gets a further ".zst".
func OutputPath(in string, f format.Format, compress bool) string {
	ext := filepath.Ext(in)
	out := strings.TrimSuffix(in, ext) + f.Suffix()
	if compress {
		out += compressSuffix
	}
	return out
}

// IsSector reports whether a directory entry name is converted in
// directory mode. Only an exact ".sec" extension qualifies.
func IsSector(name string) bool {
	return filepath.Ext(name) == InputSuffix
}
