package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Serve       ServeCmd         `cmd:"" help:"Run the evaluation server"`
	Eval        EvalCmd          `cmd:"" help:"Evaluate one hand"`
	Deal        DealCmd          `cmd:"" help:"Deal random hands and rank them"`
	VersionInfo VersionCmd       `cmd:"version" help:"Print the version"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("oddside"),
		kong.Description("Texas Hold'em hand evaluator with strength tiers and action advice"),
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
