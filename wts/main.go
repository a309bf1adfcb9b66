// wts is the wealth tracking command line tool.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/nboran/wealth/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Answers shell completion requests and installs the completion script
	// (wts -install). Returns immediately in a normal run.
	completion().Complete("wts")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the wts command line for shell completion.
func completion() *complete.Command {
	types := predict.Set{"cash", "savings", "stocks", "bonds", "crypto", "property", "pension", "other"}
	entry := map[string]complete.Predictor{
		"d": predict.Nothing,
		"n": predict.Something,
		"v": predict.Nothing,
		"m": predict.Nothing,
	}
	transaction := map[string]complete.Predictor{
		"d": predict.Nothing,
		"n": predict.Something,
		"a": predict.Nothing,
		"v": predict.Nothing,
		"q": predict.Nothing,
		"m": predict.Nothing,
	}
	report := map[string]complete.Predictor{
		"d": predict.Nothing,
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"currency":    predict.Set{"EUR", "USD", "GBP", "CHF", "CAD", "JPY"},
		},
		Sub: map[string]*complete.Command{
			"birthday": {Flags: entry},
			"salary":   {Flags: entry},
			"open": {Flags: map[string]complete.Predictor{
				"d":   predict.Nothing,
				"n":   predict.Something,
				"t":   types,
				"v":   predict.Nothing,
				"q":   predict.Nothing,
				"net": predict.Set{"true", "false"},
				"m":   predict.Nothing,
			}},
			"deposit":  {Flags: transaction},
			"withdraw": {Flags: transaction},
			"value":    {Flags: entry},
			"close":    {Flags: entry},

			"wi-goal":   {},
			"year-goal": {},
			"lifetime":  {},

			"summary": {Flags: report},
			"assets":  {Flags: report},
			"years":   {Flags: report},
			"wi":      {Flags: report},
			"fate":    {Flags: report},

			"fmt": {},
			"import": {Flags: map[string]complete.Predictor{
				"f": predict.Files("*.json"),
			}},

			"topic":  {Args: predict.Set{"readme", "overview", "events", "dates", "wealth-index", "goals", "money-lifetime", "*"}},
			"assist": {},
		},
	}
}
