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

// assetsCmd holds the flags for the 'assets' subcommand.
type assetsCmd struct {
	date string
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "display every asset in detail" }
func (*assetsCmd) Usage() string {
	return `wts assets [-d <date>]

  Displays one detailed section per asset: value, contributions, own growth
  and the full movement history.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealth.Today().String(), "Date for the report (YYYY-MM-DD)")
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := reportOn(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Assets(report))

	return subcommands.ExitSuccess
}
