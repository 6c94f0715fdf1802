package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/vdf-format/go-vdf/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return viewFiles(cfg, cc, cc.Out, args)
}

func viewFiles(cfg *ViewConfig, cc *cli.Context, w io.Writer, files []string) error {
	opts := cfg.encOpts(w)
	for _, file := range files {
		y, err := getObjFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := encode.Encode(y, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
