package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/sector-format/config"
	"github.com/signadot/sector-format/encode"
	"github.com/signadot/sector-format/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Config  string `cli:"name=config desc='configuration file'"`
	Charset string `cli:"name=charset desc='input character set (default windows-1252)'"`
	Lenient bool   `cli:"name=lenient desc='drop the rest of a line on a parse error instead of failing'"`
	Depth   int    `cli:"name=depth desc='maximum content nesting (default 64)'"`
	WireOut bool   `cli:"name=wire desc='output compact json'"`
	Color   bool   `cli:"name=color desc='encode with color'"`

	Format *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Format = &f
		return f, nil
	})
}

// optSet reports whether the option name was given on the command line
// of cmd.
func optSet(cmd *cli.Command, name string) bool {
	if cmd == nil {
		return false
	}
	for _, opt := range cmd.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

// settings loads the configuration file and applies the command line on
// top of it. Main options may also follow the subcommand sub.
func (cfg *MainConfig) settings(sub *cli.Command) (*config.Config, error) {
	set := func(name string) bool {
		return optSet(cfg.Main, name) || optSet(sub, name)
	}
	c, err := config.LoadOrDefault(cfg.Config)
	if err != nil {
		return nil, err
	}
	if set("charset") {
		c.Charset = cfg.Charset
	}
	if set("lenient") {
		c.Lenient = cfg.Lenient
	}
	if set("depth") {
		if cfg.Depth <= 0 {
			return nil, fmt.Errorf("%w: -depth must be positive", cli.ErrUsage)
		}
		c.MaxDepth = cfg.Depth
	}
	if set("wire") {
		c.Wire = cfg.WireOut
	}
	if cfg.Format != nil {
		c.Format = *cfg.Format
	}
	return c, nil
}

// colorOpts highlights output when asked to, or when w is a terminal and
// -color was not given at all.
func (cfg *MainConfig) colorOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	if optSet(cfg.Main, "color") {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type ConvertConfig struct {
	*MainConfig
	Compress bool   `cli:"name=z desc='compress output with zstd'"`
	Patch    string `cli:"name=patch desc='json patch file applied to every document'"`
	Validate bool   `cli:"name=validate desc='validate documents against the schema'"`
	Where    string `cli:"name=where desc='keep only tiles matching an expression'"`
	Workers  int    `cli:"name=workers desc='files converted at once (default GOMAXPROCS)'"`
	Gops     bool   `cli:"name=gops desc='run a gops agent while converting'"`

	Convert *cli.Command
}

func (cfg *ConvertConfig) settings() (*config.Config, error) {
	c, err := cfg.MainConfig.settings(cfg.Convert)
	if err != nil {
		return nil, err
	}
	if optSet(cfg.Convert, "z") {
		c.Compress = cfg.Compress
	}
	if optSet(cfg.Convert, "patch") {
		c.Patch = cfg.Patch
	}
	if optSet(cfg.Convert, "validate") {
		c.Validate = cfg.Validate
	}
	if optSet(cfg.Convert, "where") {
		c.Where = cfg.Where
	}
	if optSet(cfg.Convert, "workers") {
		c.Workers = cfg.Workers
	}
	return c, nil
}

type ViewConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='show only tiles matching an expression'"`

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Verify   bool   `cli:"name=verify desc='compare existing output with a fresh conversion'"`
	Validate bool   `cli:"name=validate desc='validate documents against the schema'"`
	Where    string `cli:"name=where desc='check only tiles matching an expression'"`
	Workers  int    `cli:"name=workers desc='files checked at once (default GOMAXPROCS)'"`
	Z        bool   `cli:"name=z desc='existing output is zstd compressed'"`

	Check *cli.Command
}

func (cfg *CheckConfig) settings() (*config.Config, error) {
	c, err := cfg.MainConfig.settings(cfg.Check)
	if err != nil {
		return nil, err
	}
	if optSet(cfg.Check, "validate") {
		c.Validate = cfg.Validate
	}
	if optSet(cfg.Check, "where") {
		c.Where = cfg.Where
	}
	if optSet(cfg.Check, "workers") {
		c.Workers = cfg.Workers
	}
	if optSet(cfg.Check, "z") {
		c.Compress = cfg.Z
	}
	return c, nil
}

type DiffConfig struct {
	*MainConfig
	Lines bool `cli:"name=lines desc='diff the whole encodings line by line'"`

	Diff *cli.Command
}
