package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func secMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: missing path or command", cli.ErrUsage)
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		// a bare path converts it
		sub = cfg.Main.FindSub(cc, "convert")
	} else {
		args = args[1:]
	}
	err = sub.Run(cc, args)
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}
