package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/vdf-format/go-vdf/steam"
)

func libs(cfg *LibsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Libs.Parse(cc, args)
	if err != nil {
		cfg.Libs.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: libs takes no arguments, got %v", cli.ErrUsage, args)
	}
	root, err := steamRoot(cfg.Root)
	if err != nil {
		return err
	}
	folders, err := steam.LibraryFolders(root)
	if err != nil {
		return err
	}
	for _, folder := range folders {
		if _, err := fmt.Fprintln(cc.Out, folder); err != nil {
			return err
		}
	}
	return nil
}
