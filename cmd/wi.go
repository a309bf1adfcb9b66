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

// wiCmd holds the flags for the 'wi' subcommand.
type wiCmd struct {
	date string
}

func (*wiCmd) Name() string     { return "wi" }
func (*wiCmd) Synopsis() string { return "display the wealth index and its goals" }
func (*wiCmd) Usage() string {
	return `wts wi [-d <date>]

  Displays the wealth index: its current value, the month-end trail and the
  declared index goals.
`
}

func (c *wiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealth.Today().String(), "Date for the report (YYYY-MM-DD)")
}

func (c *wiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := reportOn(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WealthIndex(report))

	return subcommands.ExitSuccess
}
