package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/nboran/wealth"
)

// Years renders the year-by-year review, followed by one detail section per
// year with its goals and month-end snapshots.
func Years(r *wealth.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Yearly Review on %s\n\n", r.Now)
	if len(r.Years) == 0 {
		fmt.Fprintln(&b, "Nothing to review yet.")
		return b.String()
	}

	mn := func(m wealth.Money) string { return m.In(r.Currency).String() }
	sn := func(m wealth.Money) string { return m.In(r.Currency).SignedString() }

	fmt.Fprintln(&b, "| Year | Start | End | Growth | Contributed | Paid-in % | Earned % | WI Change | Salary Change |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, y := range r.Years {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			y.Year, mn(y.Start), mn(y.End), sn(y.TotalGrowth), sn(y.Contribution),
			y.TransactionGrowthPercent, y.SelfGrowthPercent,
			wiChange(y.WIDelta), sn(y.SalaryDelta))
	}
	fmt.Fprintln(&b)

	for _, y := range r.Years {
		ConditionalBlock(&b, func(w io.Writer) bool { return yearDetail(w, y, r.Currency) })
	}

	return b.String()
}

func yearDetail(w io.Writer, y *wealth.YearSummary, cur string) bool {
	if len(y.Goals) == 0 && len(y.Months) == 0 {
		return false
	}
	fmt.Fprintf(w, "## %d\n\n", y.Year)

	for _, g := range y.Goals {
		fmt.Fprintf(w, "Goal: grow by %s, from %s to %s (about %s a month). Reached %s of the targeted growth.\n\n",
			g.Goal.Percentage,
			y.Start.In(cur).String(), g.ExpectedEnd.In(cur).String(),
			g.ExpectedMonthly.In(cur).String(),
			g.Progress)
	}

	if len(y.Months) == 0 {
		return true
	}
	expected := len(y.Goals) > 0
	if expected {
		fmt.Fprintln(w, "| Month | On | Start | End | Growth | Contributed | Expected |")
		fmt.Fprintln(w, "|:---|:---|---:|---:|---:|---:|---:|")
	} else {
		fmt.Fprintln(w, "| Month | On | Start | End | Growth | Contributed |")
		fmt.Fprintln(w, "|:---|:---|---:|---:|---:|---:|")
	}
	for _, m := range y.Months {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |",
			m.Month, m.On,
			m.Start.In(cur).String(), m.End.In(cur).String(),
			m.TotalGrowth.In(cur).SignedString(), m.Contribution.In(cur).SignedString())
		if expected {
			fmt.Fprintf(w, " %s |", m.Expected.In(cur).String())
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
	return true
}

// wiChange formats a wealth index move, a dash when there was none.
func wiChange(delta float64) string {
	if delta == 0 {
		return "-"
	}
	return fmt.Sprintf("%+.2f", delta)
}
