// Package cmd implements the CLI application to track personal wealth.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nboran/wealth"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&birthdayCmd{}, "events")
	c.Register(&salaryCmd{}, "events")
	c.Register(&openCmd{}, "events")
	c.Register(&depositCmd{}, "events")
	c.Register(&withdrawCmd{}, "events")
	c.Register(&valueCmd{}, "events")
	c.Register(&closeCmd{}, "events")

	c.Register(&wiGoalCmd{}, "goals")
	c.Register(&yearGoalCmd{}, "goals")
	c.Register(&lifetimeCmd{}, "goals")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&assetsCmd{}, "reports")
	c.Register(&yearsCmd{}, "reports")
	c.Register(&wiCmd{}, "reports")
	c.Register(&fateCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", wealth.DefaultLedgerFile, "Path to the ledger file containing events (JSONL format)")
var currency = flag.String("currency", "EUR", "Display currency for reports")

// loadLedger loads the app ledger file and stamps the display currency on it.
func loadLedger() (*wealth.Ledger, error) {
	ledger, err := wealth.LoadLedger(*ledgerFile)
	if err != nil {
		return nil, err
	}
	ledger.SetCurrency(*currency)
	return ledger, nil
}

// appendEvent validates a single event against the current ledger and
// appends it to the app ledger file.
func appendEvent(ev wealth.Event) subcommands.ExitStatus {
	ev, err := ev.Validate(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(ev); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := wealth.EncodeEvent(f, ev); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s event to %s\n", ev.What(), *ledgerFile)
	return subcommands.ExitSuccess
}

// reportOn builds the report for a given date string.
func reportOn(dateStr string) (*wealth.Report, error) {
	on, err := wealth.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	ledger, err := loadLedger()
	if err != nil {
		return nil, fmt.Errorf("loading ledger %q: %w", *ledgerFile, err)
	}
	return ledger.NewReport(on)
}
