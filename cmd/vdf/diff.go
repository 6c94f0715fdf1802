package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/vdf-format/go-vdf/libdiff"
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
	y1, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	diffs, err := libdiff.Diff(y1, y2)
	if err != nil {
		return err
	}
	if len(diffs) == 0 {
		return nil
	}
	colors := cfg.Color || cfg.wantTTYColor(cc.Out)
	if _, err := fmt.Fprint(cc.Out, libdiff.Text(diffs, colors)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
