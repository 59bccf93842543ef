package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/signadot/sector-format/convert"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func convertMain(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: convert requires one path, got %v", cli.ErrUsage, args)
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
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		} else {
			defer agent.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	start := time.Now()
	results, err := convert.Path(ctx, args[0], opts...)
	if err != nil {
		return err
	}
	report(cc.Out, results)
	failed := convert.Failed(results)
	fmt.Fprintf(cc.Out, "%d files, %d failed, %s\n", len(results), failed, time.Since(start).Round(time.Millisecond))
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

var (
	okMark   = color.New(color.FgGreen).Sprint("ok")
	failMark = color.New(color.FgRed).Sprint("FAIL")
)

func report(w io.Writer, results []*convert.Result) {
	var total int64
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(w, "%s %s: %v\n", failMark, res.In, res.Err)
			continue
		}
		total += res.Bytes
		fmt.Fprintf(w, "%s %s -> %s (%d tiles, %s", okMark, res.In, res.Out, res.Tiles, humanize.Bytes(uint64(res.Bytes)))
		if n := len(res.Problems); n != 0 {
			fmt.Fprintf(w, ", %d skipped", n)
		}
		fmt.Fprintln(w, ")")
	}
	if len(results) > 1 {
		fmt.Fprintf(w, "wrote %s\n", humanize.Bytes(uint64(total)))
	}
}
