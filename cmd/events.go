package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nboran/wealth"
)

// --- Birthday Command ---

type birthdayCmd struct {
	date string
	memo string
}

func (*birthdayCmd) Name() string     { return "birthday" }
func (*birthdayCmd) Synopsis() string { return "record the date of birth" }
func (*birthdayCmd) Usage() string {
	return `wts birthday -d <date> [-m <memo>]

  Records the date of birth. The wealth index cannot be computed without it.
`
}

func (c *birthdayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of birth (YYYY-MM-DD)")
	f.StringVar(&c.memo, "m", "", "An optional note for the event")
}

func (c *birthdayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := wealth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendEvent(wealth.NewBirthday(day))
}

// --- Salary Command ---

type salaryCmd struct {
	date  string
	name  string
	value float64
	memo  string
}

func (*salaryCmd) Name() string     { return "salary" }
func (*salaryCmd) Synopsis() string { return "record the monthly salary from a given date" }
func (*salaryCmd) Usage() string {
	return `wts salary -n <employer> -v <monthly amount> [-d <date>] [-m <memo>]

  Records the monthly salary earned from that date on. Record a new salary
  event whenever it changes.
`
}

func (c *salaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealth.Today().String(), "Date the salary starts (YYYY-MM-DD)")
	f.StringVar(&c.name, "n", "", "Employer name")
	f.Float64Var(&c.value, "v", 0, "Monthly salary amount")
	f.StringVar(&c.memo, "m", "", "An optional note for the event")
}

func (c *salaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.value <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := wealth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendEvent(wealth.NewSalary(day, c.memo, c.name, wealth.M(c.value, "")))
}

// --- Open Command ---

type openCmd struct {
	date  string
	name  string
	typ   string
	value float64
	units float64
	net   bool
	memo  string
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a new asset" }
func (*openCmd) Usage() string {
	return `wts open -n <name> -t <type> -v <value> [-q <units>] [-net=false] [-d <date>] [-m <memo>]

  Opens a new asset with its initial value. Every transaction, valuation or
  close on an asset refers back to its opening.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealth.Today().String(), "Opening date (YYYY-MM-DD)")
	f.StringVar(&c.name, "n", "", "Asset name, unique across the ledger")
	f.StringVar(&c.typ, "t", "", "Asset type (cash, savings, stocks, bonds, crypto, property, pension, other)")
	f.Float64Var(&c.value, "v", 0, "Initial value")
	f.Float64Var(&c.units, "q", 0, "Optional number of units held")
	f.BoolVar(&c.net, "net", true, "Count this asset in the net worth")
	f.StringVar(&c.memo, "m", "", "An optional note for the event")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.typ == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := wealth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	typ, err := wealth.ParseAssetType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ev := wealth.NewOpenAsset(day, c.memo, c.name, typ, wealth.M(c.value, ""), wealth.Q(c.units), c.net)
	return appendEvent(ev)
}

// --- Deposit Command ---

type depositCmd struct {
	date   string
	name   string
	amount float64
	value  float64
	units  float64
	memo   string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record money paid into an asset" }
func (*depositCmd) Usage() string {
	return `wts deposit -n <asset> -a <amount> [-v <new value>] [-q <units>] [-d <date>] [-m <memo>]

  Records money paid into an asset, and optionally the asset's total value
  right after the deposit.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealth.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.name, "n", "", "Asset name")
	f.Float64Var(&c.amount, "a", 0, "Amount paid in")
	f.Float64Var(&c.value, "v", 0, "Total asset value right after the deposit")
	f.Float64Var(&c.units, "q", 0, "Optional number of units held after the deposit")
	f.StringVar(&c.memo, "m", "", "An optional note for the event")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := wealth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	ev := wealth.NewDeposit(day, c.memo, c.name, wealth.M(c.amount, ""), wealth.M(c.value, ""), wealth.Q(c.units))
	return appendEvent(ev)
}

// --- Withdraw Command ---

type withdrawCmd struct {
	date   string
	name   string
	amount float64
	value  float64
	units  float64
	memo   string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record money taken out of an asset" }
func (*withdrawCmd) Usage() string {
	return `wts withdraw -n <asset> -a <amount> [-v <new value>] [-q <units>] [-d <date>] [-m <memo>]

  Records money taken out of an asset, and optionally the asset's total
  value right after the withdrawal.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealth.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.name, "n", "", "Asset name")
	f.Float64Var(&c.amount, "a", 0, "Amount taken out, as a positive number")
	f.Float64Var(&c.value, "v", 0, "Total asset value right after the withdrawal")
	f.Float64Var(&c.units, "q", 0, "Optional number of units held after the withdrawal")
	f.StringVar(&c.memo, "m", "", "An optional note for the event")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := wealth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	// a withdrawal is a negative transaction
	ev := wealth.NewDeposit(day, c.memo, c.name, wealth.M(-c.amount, ""), wealth.M(c.value, ""), wealth.Q(c.units))
	return appendEvent(ev)
}

// --- Value Command ---

type valueCmd struct {
	date  string
	name  string
	value float64
	memo  string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "record the current value of an asset" }
func (*valueCmd) Usage() string {
	return `wts value -n <asset> -v <value> [-d <date>] [-m <memo>]

  Records the observed value of an asset on a date, with no money moving.
  This is how market growth enters the ledger.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealth.Today().String(), "Valuation date (YYYY-MM-DD)")
	f.StringVar(&c.name, "n", "", "Asset name")
	f.Float64Var(&c.value, "v", 0, "Observed value")
	f.StringVar(&c.memo, "m", "", "An optional note for the event")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.value < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := wealth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendEvent(wealth.NewValuation(day, c.memo, c.name, wealth.M(c.value, "")))
}

// --- Close Command ---

type closeCmd struct {
	date  string
	name  string
	value float64
	memo  string
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "close an asset" }
func (*closeCmd) Usage() string {
	return `wts close -n <asset> -v <value> [-d <date>] [-m <memo>]

  Closes an asset, recording its value right before closing. The asset is
  worth nothing from that date on, history stays intact.
`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealth.Today().String(), "Closing date (YYYY-MM-DD)")
	f.StringVar(&c.name, "n", "", "Asset name")
	f.Float64Var(&c.value, "v", 0, "Value right before closing")
	f.StringVar(&c.memo, "m", "", "An optional note for the event")
}

func (c *closeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.value < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := wealth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendEvent(wealth.NewCloseAsset(day, c.memo, c.name, wealth.M(c.value, "")))
}
