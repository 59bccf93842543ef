// Package config reads the optional TOML configuration of the sec command.
//
//	charset   = "windows-1252"
//	workers   = 8
//	max_depth = 64
//	lenient   = false
//	format    = "json"
//	wire      = false
//	compress  = false
//	validate  = false
//	patch     = "fixups.yaml"
//	where     = "refresh"
//
// A relative patch path is relative to the configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/sector-format/format"
	"github.com/signadot/sector-format/parse"
	"github.com/signadot/sector-format/source"

	"github.com/BurntSushi/toml"
)

const (
	EnvVar      = "SECTOR_CONFIG"
	DefaultFile = "sector.toml"
)

var ErrConfig = errors.New("config error")

type Config struct {
	Charset  string        `toml:"charset"`
	Workers  int           `toml:"workers"`
	MaxDepth int           `toml:"max_depth"`
	Lenient  bool          `toml:"lenient"`
	Format   format.Format `toml:"format"`
	Wire     bool          `toml:"wire"`
	Compress bool          `toml:"compress"`
	Validate bool          `toml:"validate"`
	Patch    string        `toml:"patch"`
	Where    string        `toml:"where"`

	// Path is the file the configuration was loaded from, empty for
	// defaults.
	Path string `toml:"-"`
}

func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the configuration file at path. Unknown keys and unknown
// charsets are errors.
func Load(path string) (*Config, error) {
	c := &Config{}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s: unknown keys %s", ErrConfig, path, strings.Join(keys, ", "))
	}
	c.Path = path
	c.applyDefaults()
	if err := c.check(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if c.Patch != "" && !filepath.IsAbs(c.Patch) {
		c.Patch = filepath.Join(filepath.Dir(path), c.Patch)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Charset == "" {
		c.Charset = source.DefaultCharset
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = parse.DefaultMaxDepth
	}
}

func (c *Config) check() error {
	if _, err := source.Charset(c.Charset); err != nil {
		return err
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth %d is negative", c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d is negative", c.Workers)
	}
	return nil
}

// Find returns the configuration file to use when none is given: the file
// named by $SECTOR_CONFIG, else ./sector.toml when it exists, else "".
func Find() string {
	if p := os.Getenv(EnvVar); p != "" {
		return p
	}
	if fi, err := os.Stat(DefaultFile); err == nil && fi.Mode().IsRegular() {
		return DefaultFile
	}
	return ""
}

// LoadOrDefault loads path, or the file [Find] returns when path is
// empty, or the defaults when there is none.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = Find()
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
