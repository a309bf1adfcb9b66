package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/nboran/wealth"
)

// Summary renders the report's front page: the current standing, one row
// per asset, and one row per asset type.
func Summary(r *wealth.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Wealth Summary on %s\n\n", r.Now)

	mn := func(m wealth.Money) string { return m.In(r.Currency).String() }

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| **Net Asset Value** | **%s** |\n", mn(r.Current.NetValue))
	fmt.Fprintf(&b, "| Monthly Salary | %s |\n", mn(r.Current.Salary))
	if r.Current.WealthIndex > 0 {
		fmt.Fprintf(&b, "| Wealth Index | %.2f |\n", r.Current.WealthIndex)
	}
	if r.Current.Age > 0 {
		fmt.Fprintf(&b, "| Age | %.1f |\n", r.Current.Age)
	}
	fmt.Fprintln(&b)

	ConditionalBlock(&b, func(w io.Writer) bool { return assetsTable(w, r) })
	ConditionalBlock(&b, func(w io.Writer) bool { return groupsTable(w, r) })

	return b.String()
}

func assetsTable(w io.Writer, r *wealth.Report) bool {
	if len(r.Assets) == 0 {
		return false
	}
	cur := r.Currency

	fmt.Fprintln(w, "## Assets")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Asset | Type | Net | Value | Contributed | Own Growth | Year | Month |")
	fmt.Fprintln(w, "|:---|:---|:---:|---:|---:|---:|---:|---:|")
	for _, a := range r.Assets {
		name := a.Name
		if a.Closed {
			name += " (closed)"
		}
		net := ""
		if a.InNet {
			net = "yes"
		}
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s %s | %s | %s |\n",
			name, a.Type, net,
			a.CurrentValue().In(cur).String(),
			a.Contribution().In(cur).SignedString(),
			a.SelfGrowth().In(cur).SignedString(), a.SelfGrowthPercent().SignedString(),
			a.GrowthYear().SignedString(),
			a.GrowthMonth().SignedString(),
		)
	}
	fmt.Fprintln(w)
	return true
}

func groupsTable(w io.Writer, r *wealth.Report) bool {
	if len(r.Groups) == 0 {
		return false
	}
	cur := r.Currency

	total := wealth.Money{}
	for _, g := range r.Groups {
		total = total.Add(g.CurrentValue())
	}

	fmt.Fprintln(w, "## Asset Types")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Type | Assets | Value | Contributed | Own Growth | Share |")
	fmt.Fprintln(w, "|:---|---:|---:|---:|---:|---:|")
	for _, g := range r.Groups {
		fmt.Fprintf(w, "| %s | %d | %s | %s | %s %s | %s |\n",
			g.Type, len(g.Assets),
			g.CurrentValue().In(cur).String(),
			g.Contribution().In(cur).SignedString(),
			g.SelfGrowth().In(cur).SignedString(), g.SelfGrowthPercent().SignedString(),
			g.CurrentValue().PercentOf(total).String(),
		)
	}
	fmt.Fprintln(w)
	return true
}
