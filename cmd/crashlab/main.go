package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Analyze AnalyzeCmd       `cmd:"" help:"Run every analysis and print a full report"`
	Predict PredictCmd       `cmd:"" help:"Forecast the next outcome"`
	Players PlayersCmd       `cmd:"" help:"Rank players by a single metric"`
}

// options configures the parser. Every flag can also be set through a
// CRASHLAB_ environment variable, e.g. CRASHLAB_LIMIT=5000.
func options() []kong.Option {
	return []kong.Option{
		kong.Name("crashlab"),
		kong.Description("Statistics, randomness diagnostics and forecasts for crash game logs"),
		kong.DefaultEnvars("CRASHLAB"),
		kong.ShortUsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, options()...)
	ctx.FatalIfErrorf(ctx.Run())
}
