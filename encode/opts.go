package encode

import (
	"github.com/signadot/sector-format/format"

	jsonpatch "github.com/evanphx/json-patch"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeWire writes compact JSON. It has no effect on YAML.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodePatch applies p to every encoded document.
func EncodePatch(p jsonpatch.Patch) EncodeOption {
	return func(es *EncState) { es.patch = p }
}

// EncodeValidate checks every document against the sector schema before it
// is written.
func EncodeValidate(v bool) EncodeOption {
	return func(es *EncState) { es.validate = v }
}
