package encode

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/signadot/sector-format/sector"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var ErrSchema = errors.New("schema violation")

//go:embed sector.schema.json
var schemaText string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Schema returns the compiled JSON schema of encoded sectors.
func Schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("sector.schema.json", schemaText)
	})
	return schema, schemaErr
}

func SchemaText() string { return schemaText }

// Validate checks a JSON document against [Schema].
func Validate(d []byte) error {
	s, err := Schema()
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	return nil
}

func ValidateSector(s *sector.Sector) error {
	d, err := Marshal(s, EncodeWire(true))
	if err != nil {
		return err
	}
	return Validate(d)
}
