package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nboran/wealth"
)

// --- WI Goal Command ---

type wiGoalCmd struct {
	index float64
	age   float64
	memo  string
}

func (*wiGoalCmd) Name() string     { return "wi-goal" }
func (*wiGoalCmd) Synopsis() string { return "declare a wealth index target at a given age" }
func (*wiGoalCmd) Usage() string {
	return `wts wi-goal -i <index> -a <age> [-m <memo>]

  Declares a wealth index to reach by a given age. Goals are not dated, they
  describe an ambition, not a fact.
`
}

func (c *wiGoalCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.index, "i", 0, "Target wealth index")
	f.Float64Var(&c.age, "a", 0, "Age in years at which to reach it")
	f.StringVar(&c.memo, "m", "", "An optional note for the goal")
}

func (c *wiGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.index <= 0 || c.age <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return appendEvent(wealth.NewWIGoal(c.memo, c.index, c.age))
}

// --- Year Goal Command ---

type yearGoalCmd struct {
	year       int
	percentage float64
	memo       string
}

func (*yearGoalCmd) Name() string     { return "year-goal" }
func (*yearGoalCmd) Synopsis() string { return "declare a growth target for one calendar year" }
func (*yearGoalCmd) Usage() string {
	return `wts year-goal -p <percentage> [-y <year>] [-m <memo>]

  Declares a net worth growth percentage targeted over one calendar year.
  The yearly review tracks progress against it.
`
}

func (c *yearGoalCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", wealth.Today().Year(), "Year the goal applies to")
	f.Float64Var(&c.percentage, "p", 0, "Growth percentage targeted over the year")
	f.StringVar(&c.memo, "m", "", "An optional note for the goal")
}

func (c *yearGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.percentage == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return appendEvent(wealth.NewYearGoal(c.memo, c.year, wealth.Percent(c.percentage)))
}

// --- Lifetime Command ---

type lifetimeCmd struct {
	inflation float64
	percent   float64
	growth    float64
	memo      string
}

func (*lifetimeCmd) Name() string     { return "lifetime" }
func (*lifetimeCmd) Synopsis() string { return "declare a money lifetime scenario" }
func (*lifetimeCmd) Usage() string {
	return `wts lifetime -p <percent of salary> [-i <inflation>] [-g <asset growth>] [-m <memo>]

  Declares one parameter set for the money lifetime simulation: withdrawing
  a percentage of the current salary every month, with withdrawals growing
  with inflation and the remaining assets growing at the given annual rate.
  The fate report runs every declared scenario.
`
}

func (c *lifetimeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.inflation, "i", 0, "Annual inflation rate applied to withdrawals, in percent")
	f.Float64Var(&c.percent, "p", 0, "Monthly withdrawal as a percentage of the current salary")
	f.Float64Var(&c.growth, "g", 0, "Annual growth rate of the remaining assets, in percent")
	f.StringVar(&c.memo, "m", "", "An optional note for the scenario")
}

func (c *lifetimeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.percent <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if c.inflation < 0 {
		fmt.Fprintln(os.Stderr, "Error: inflation cannot be negative")
		return subcommands.ExitUsageError
	}
	ev := wealth.NewMoneyLifetime(c.memo, wealth.Percent(c.inflation), wealth.Percent(c.percent), wealth.Percent(c.growth))
	return appendEvent(ev)
}
