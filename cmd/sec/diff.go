package main

import (
	"fmt"

	"github.com/signadot/sector-format/encode"
	"github.com/signadot/sector-format/libdiff"
	"github.com/signadot/sector-format/parse"
	"github.com/signadot/sector-format/sector"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	c, err := cfg.settings(cfg.Diff)
	if err != nil {
		return err
	}
	popts, err := c.ParseOptions()
	if err != nil {
		return err
	}
	popts = append(popts, parse.ParseLog(theLog))
	secs := make([]*sector.Sector, 2)
	for i, arg := range args {
		secs[i], err = parse.ParseFile(arg, popts...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
	}
	changed := false
	if cfg.Lines {
		eopts, err := c.EncodeOptions()
		if err != nil {
			return err
		}
		docs := make([]string, 2)
		for i := range secs {
			d, err := encode.Marshal(secs[i], eopts...)
			if err != nil {
				return fmt.Errorf("error encoding %s: %w", args[i], err)
			}
			docs[i] = string(d)
		}
		lines := libdiff.Lines(docs[0], docs[1])
		changed = libdiff.Changed(lines)
		if err := libdiff.WriteLines(cc.Out, lines, false); err != nil {
			return err
		}
	} else {
		tiles, err := libdiff.Tiles(secs[0], secs[1])
		if err != nil {
			return err
		}
		changed = len(tiles) != 0
		if err := libdiff.WriteTiles(cc.Out, tiles); err != nil {
			return err
		}
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
