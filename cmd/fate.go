package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nboran/wealth"
	"github.com/nboran/wealth/renderer"
)

// fateCmd holds the flags for the 'fate' subcommand.
type fateCmd struct {
	date string
}

func (*fateCmd) Name() string     { return "fate" }
func (*fateCmd) Synopsis() string { return "display how long the money would last" }
func (*fateCmd) Usage() string {
	return `wts fate [-d <date>]

  Runs every declared money lifetime scenario against the current net asset
  value and salary, and displays how long the money would last.
`
}

func (c *fateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealth.Today().String(), "Date to run the simulation from (YYYY-MM-DD)")
}

func (c *fateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := reportOn(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Lifetimes(report))

	return subcommands.ExitSuccess
}
