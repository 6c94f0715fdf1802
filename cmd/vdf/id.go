package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/vdf-format/go-vdf/steam"
)

func id(cfg *IDConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ID.Parse(cc, args)
	if err != nil {
		cfg.ID.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: id requires one argument, a SteamID3", cli.ErrUsage)
	}
	id3, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: bad SteamID3 %q: %w", cli.ErrUsage, args[0], err)
	}
	_, err = fmt.Fprintln(cc.Out, steam.ID64(uint32(id3)))
	return err
}
