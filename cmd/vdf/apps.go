package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/scott-cotton/cli"

	"github.com/vdf-format/go-vdf/steam"
)

func apps(cfg *AppsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apps.Parse(cc, args)
	if err != nil {
		cfg.Apps.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: apps takes no arguments, got %v", cli.ErrUsage, args)
	}
	root, err := steamRoot(cfg.Root)
	if err != nil {
		return err
	}
	all, err := steam.AllApps(root)
	if err != nil {
		return err
	}
	var prg *vm.Program
	if cfg.Where != "" {
		prg, err = expr.Compile(cfg.Where, expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
		}
	}
	for _, app := range all {
		if prg != nil {
			keep, err := runWhere(prg, app)
			if err != nil {
				return err
			}
			if !keep {
				continue
			}
		}
		_, err := fmt.Fprintf(cc.Out, "%d\t%s\t%s\n", app.ID, app.Name, app.Dir())
		if err != nil {
			return err
		}
	}
	return nil
}

func runWhere(prg *vm.Program, app steam.App) (bool, error) {
	env := map[string]any{
		"appid":      int(app.ID),
		"name":       app.Name,
		"installdir": app.InstallDir,
		"library":    app.Library,
	}
	out, err := vm.Run(prg, env)
	if err != nil {
		return false, fmt.Errorf("error filtering app %d: %w", app.ID, err)
	}
	keep, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("-where did not evaluate to bool for app %d", app.ID)
	}
	return keep, nil
}

func steamRoot(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	return steam.Root()
}
