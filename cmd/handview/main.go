package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate a complete hand (5-7 cards)"`
	Quick   QuickCmd         `cmd:"" help:"Evaluate hole cards against a partial board"`
	Watch   WatchCmd         `cmd:"" help:"Follow a live card feed and display the hand"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handview"),
		kong.Description("Hand evaluation and display for on-chain poker tables"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
