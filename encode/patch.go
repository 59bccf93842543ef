package encode

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// DecodePatch decodes an RFC 6902 patch written in JSON or YAML.
func DecodePatch(d []byte) (jsonpatch.Patch, error) {
	j, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("error reading patch: %w", err)
	}
	p, err := jsonpatch.DecodePatch(j)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return p, nil
}

func LoadPatch(path string) (jsonpatch.Patch, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
