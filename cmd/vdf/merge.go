package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/vdf-format/go-vdf/encode"
	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/mergeop"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires at least 2 args, got %v", cli.ErrUsage, args)
	}
	docs := make([]*ir.Node, len(args))
	for i, arg := range args {
		doc, err := getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		docs[i] = doc
	}
	return encode.Encode(mergeop.MergeAll(docs...), cc.Out, cfg.encOpts(cc.Out)...)
}
