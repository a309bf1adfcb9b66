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

// yearsCmd holds the flags for the 'years' subcommand.
type yearsCmd struct {
	date string
}

func (*yearsCmd) Name() string     { return "years" }
func (*yearsCmd) Synopsis() string { return "display the year-by-year review" }
func (*yearsCmd) Usage() string {
	return `wts years [-d <date>]

  Displays the year-by-year review: growth, contributions, how much of each
  year was earned versus paid in, and progress against the year goals.
`
}

func (c *yearsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealth.Today().String(), "Date for the review (YYYY-MM-DD)")
}

func (c *yearsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := reportOn(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Years(report))

	return subcommands.ExitSuccess
}
