package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: vdf/v, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "vdf").
		WithSynopsis("vdf [opts] command [opts]").
		WithDescription("vdf is a tool for working with Valve Data Format files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vdfMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			MergeCommand(cfg),
			AppsCommand(cfg),
			LibsCommand(cfg),
			IDCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("reformat VDF files, optionally as json or yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get elements from VDF files by dotted path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff a b").
		WithDescription("diff VDF documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge base overlay [overlay...]").
		WithDescription("merge VDF documents left to right").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func AppsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AppsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apps").
		WithAliases("a").
		WithSynopsis("apps [-root dir] [-where expr]").
		WithDescription(appsDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apps(cfg, cc, args)
		})
	cfg.Apps = cmd
	return cmd
}

func LibsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LibsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("libs").
		WithSynopsis("libs [-root dir]").
		WithDescription("list steam library folders").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return libs(cfg, cc, args)
		})
	cfg.Libs = cmd
	return cmd
}

func IDCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &IDConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("id").
		WithSynopsis("id <steamid3>").
		WithDescription("convert a SteamID3 account number to a SteamID64").
		WithRun(func(cc *cli.Context, args []string) error {
			return id(cfg, cc, args)
		})
	cfg.ID = cmd
	return cmd
}

const appsDescription = `apps lists the installed Steam apps of every library folder.

Each line gives the app id, name and install directory, tab separated.

The -where flag filters with an expression over the variables appid,
name, installdir and library, for example:

  vdf apps -where 'appid > 400 && name contains "Fortress"'
`
