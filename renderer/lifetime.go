package renderer

import (
	"fmt"
	"strings"

	"github.com/nboran/wealth"
)

// Lifetimes renders the money lifetime simulations, one row per declared
// parameter set.
func Lifetimes(r *wealth.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Money Lifetime on %s\n\n", r.Now)

	if len(r.Lifetimes) == 0 {
		fmt.Fprintln(&b, "No money-lifetime scenario declared yet.")
		return b.String()
	}

	seed := r.Lifetimes[0]
	fmt.Fprintf(&b, "Starting from %s of net assets and a monthly salary of %s.\n\n",
		seed.SeedValue.In(r.Currency).String(), seed.SeedSalary.In(r.Currency).String())

	fmt.Fprintln(&b, "| Withdrawal | Inflation | Asset Growth | Lasts | Last Withdrawal |")
	fmt.Fprintln(&b, "|---:|---:|---:|:---|---:|")
	for _, lt := range r.Lifetimes {
		first := lt.SeedSalary.Mul(wealth.Q(float64(lt.Params.PercentOfSalary)).Div(wealth.Q(100)))
		fmt.Fprintf(&b, "| %s (%s of salary) | %s | %s | %s | %s |\n",
			first.In(r.Currency).String(), lt.Params.PercentOfSalary,
			lt.Params.Inflation, lt.Params.AssetGrowth,
			span(lt), lt.FinalDeduction.In(r.Currency).String())
	}
	fmt.Fprintln(&b)

	return b.String()
}

// span words how long the money lasts.
func span(lt wealth.Lifetime) string {
	if lt.Capped {
		return fmt.Sprintf("%d years or more", lt.Years)
	}
	if lt.Years == 0 {
		return fmt.Sprintf("%d months", lt.Months)
	}
	return fmt.Sprintf("%d years %d months", lt.Years, lt.Months)
}
