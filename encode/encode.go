package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/sector-format/format"
	"github.com/signadot/sector-format/sector"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

type EncState struct {
	format   format.Format
	wire     bool
	indent   int
	colors   *Colors
	patch    jsonpatch.Patch
	validate bool
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) prefix() string {
	return strings.Repeat(" ", es.indent)
}

// Encode writes s to w.
func Encode(s *sector.Sector, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(s, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Marshal encodes s. The output always ends in a newline.
//
// Documents are first encoded as JSON with fields in model order; a patch
// and validation apply to that JSON, and YAML output is converted from it.
func Marshal(s *sector.Sector, opts ...EncodeOption) ([]byte, error) {
	es := newEncState(opts)
	d, err := es.json(s)
	if err != nil {
		return nil, err
	}
	if es.patch != nil {
		d, err = es.applyPatch(d)
		if err != nil {
			return nil, err
		}
	}
	if es.validate {
		if err := Validate(d); err != nil {
			return nil, err
		}
	}
	if es.format.IsYAML() {
		d, err = yaml.JSONToYAML(d)
		if err != nil {
			return nil, fmt.Errorf("error converting to yaml: %w", err)
		}
	}
	if es.colors != nil {
		d = es.colors.highlight(d)
	}
	return d, nil
}

func (es *EncState) json(s *sector.Sector) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if !es.wire {
		enc.SetIndent("", es.prefix())
	}
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// applyPatch applies the patch and restores the layout. The patch library
// does not keep key order, so patched objects come out with sorted keys.
func (es *EncState) applyPatch(d []byte) ([]byte, error) {
	out, err := es.patch.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	buf := bytes.NewBuffer(nil)
	if es.wire {
		err = json.Compact(buf, out)
	} else {
		err = json.Indent(buf, out, "", es.prefix())
	}
	if err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func MustString(s *sector.Sector, opts ...EncodeOption) string {
	d, err := Marshal(s, opts...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(string(d))
}
