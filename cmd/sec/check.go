package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/signadot/sector-format/convert"
	"github.com/signadot/sector-format/libdiff"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: check requires one path, got %v", cli.ErrUsage, args)
	}
	c, err := cfg.settings()
	if err != nil {
		return err
	}
	opts, err := c.ConvertOptions()
	if err != nil {
		return err
	}
	opts = append(opts, convert.ConvertLog(theLog))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := convert.Check(ctx, args[0], cfg.Verify, opts...)
	if err != nil {
		return err
	}
	problems := 0
	for _, res := range results {
		problems += len(res.Problems)
		if res.Err != nil {
			fmt.Fprintf(cc.Out, "%s %s: %v\n", failMark, res.In, res.Err)
			if len(res.Diff) != 0 {
				libdiff.WriteLines(cc.Out, res.Diff, false)
			}
			continue
		}
		st := res.Stats
		fmt.Fprintf(cc.Out, "%s %s: %d tiles, %d items, %d containers, depth %d\n",
			okMark, res.In, st.Tiles, st.Items, st.Containers, st.MaxDepth)
		for _, p := range res.Problems {
			fmt.Fprintf(cc.Out, "  %v\n", p)
		}
	}
	failed := convert.Failed(results)
	fmt.Fprintf(cc.Out, "%d files, %d failed, %d problems\n", len(results), failed, problems)
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
