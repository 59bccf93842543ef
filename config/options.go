package config

import (
	"github.com/signadot/sector-format/convert"
	"github.com/signadot/sector-format/encode"
	"github.com/signadot/sector-format/parse"
	"github.com/signadot/sector-format/query"
	"github.com/signadot/sector-format/source"
)

func (c *Config) ParseOptions() ([]parse.ParseOption, error) {
	enc, err := source.Charset(c.Charset)
	if err != nil {
		return nil, err
	}
	return []parse.ParseOption{
		parse.ParseEncoding(enc),
		parse.ParseMaxDepth(c.MaxDepth),
		parse.ParseLenient(c.Lenient),
	}, nil
}

// EncodeOptions reads the patch file, if any.
func (c *Config) EncodeOptions() ([]encode.EncodeOption, error) {
	opts := []encode.EncodeOption{
		encode.EncodeFormat(c.Format),
		encode.EncodeWire(c.Wire),
		encode.EncodeValidate(c.Validate),
	}
	if c.Patch != "" {
		p, err := encode.LoadPatch(c.Patch)
		if err != nil {
			return nil, err
		}
		opts = append(opts, encode.EncodePatch(p))
	}
	return opts, nil
}

// ConvertOptions gathers everything the configuration sets for a
// conversion.
func (c *Config) ConvertOptions() ([]convert.ConvertOption, error) {
	popts, err := c.ParseOptions()
	if err != nil {
		return nil, err
	}
	eopts, err := c.EncodeOptions()
	if err != nil {
		return nil, err
	}
	opts := []convert.ConvertOption{
		convert.ConvertParse(popts...),
		convert.ConvertEncode(eopts...),
		convert.ConvertCompress(c.Compress),
		convert.ConvertWorkers(c.Workers),
	}
	if c.Where != "" {
		f, err := query.Compile(c.Where)
		if err != nil {
			return nil, err
		}
		opts = append(opts, convert.ConvertFilter(f))
	}
	return opts, nil
}
