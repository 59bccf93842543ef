package main

import (
	"fmt"
	"io"

	"github.com/signadot/sector-format/config"
	"github.com/signadot/sector-format/encode"
	"github.com/signadot/sector-format/parse"
	"github.com/signadot/sector-format/query"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: view requires at least one file", cli.ErrUsage)
	}
	c, err := cfg.settings(cfg.View)
	if err != nil {
		return err
	}
	if optSet(cfg.View, "where") {
		c.Where = cfg.Where
	}
	for i, file := range args {
		if err := viewFile(cfg, c, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, c *config.Config, w io.Writer, file string) error {
	popts, err := c.ParseOptions()
	if err != nil {
		return err
	}
	sec, err := parse.ParseFile(file, append(popts, parse.ParseLog(theLog))...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if c.Where != "" {
		f, err := query.Compile(c.Where)
		if err != nil {
			return err
		}
		if sec, err = f.Apply(sec); err != nil {
			return err
		}
	}
	eopts, err := c.EncodeOptions()
	if err != nil {
		return err
	}
	eopts = append(eopts, cfg.colorOpts(w)...)
	if err := encode.Encode(sec, w, eopts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
