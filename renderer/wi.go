package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/nboran/wealth"
)

// WealthIndex renders the index history and the declared index goals.
func WealthIndex(r *wealth.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Wealth Index on %s\n\n", r.Now)

	if r.WealthIndex.Len() == 0 {
		fmt.Fprintln(&b, "No wealth index yet. It needs a date of birth, a salary and at least one asset counted in net worth.")
		return b.String()
	}

	firstDay, firstIndex := r.WealthIndex.First()
	fmt.Fprintf(&b, "Current index: **%.2f**, tracked since %s (index %.2f).\n\n",
		r.Current.WealthIndex, firstDay, firstIndex)

	trail(&b, r.WealthIndex)

	ConditionalBlock(&b, func(w io.Writer) bool { return wiGoalsTable(w, r) })

	return b.String()
}

// trail prints the month-end index points, at most the last twelve.
func trail(w io.Writer, wi *wealth.History[float64]) {
	lastDay, _ := wi.Latest()

	type point struct {
		on    wealth.Date
		index float64
	}
	var points []point
	for on, v := range wi.Values() {
		if on == on.EndOf(wealth.Monthly) || on == lastDay {
			points = append(points, point{on, v})
		}
	}
	if len(points) > 12 {
		points = points[len(points)-12:]
	}

	fmt.Fprintln(w, "| On | Index |")
	fmt.Fprintln(w, "|:---|---:|")
	for _, p := range points {
		fmt.Fprintf(w, "| %s | %.2f |\n", p.on, p.index)
	}
	fmt.Fprintln(w)
}

func wiGoalsTable(w io.Writer, r *wealth.Report) bool {
	if len(r.WIGoals) == 0 {
		return false
	}
	fmt.Fprintln(w, "## Goals")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Target | Age | By | Index Today | To Go |")
	fmt.Fprintln(w, "|---:|---:|:---|---:|---:|")
	for _, g := range r.WIGoals {
		fmt.Fprintf(w, "| %.2f | %.0f | %s | %.2f | %.2f |\n",
			g.Goal.Index, g.Goal.Age, g.To.On, g.From.Index, g.Goal.Index-g.From.Index)
	}
	fmt.Fprintln(w)
	return true
}
