package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/vdf-format/go-vdf/encode"
	"github.com/vdf-format/go-vdf/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := queryArg(cfg, cc, arg, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func queryArg(cfg *GetConfig, cc *cli.Context, arg, path string) error {
	doc, err := getObjFile(cc, arg)
	if err != nil {
		return err
	}
	res, err := doc.GetPath(path)
	if err != nil {
		return err
	}
	if res.Type == ir.StringType {
		_, err := fmt.Fprintln(cc.Out, res.String)
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
