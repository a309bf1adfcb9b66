package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/nboran/wealth"
)

// Assets renders one detailed section per asset, its movement history
// included.
func Assets(r *wealth.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Assets on %s\n\n", r.Now)
	if len(r.Assets) == 0 {
		fmt.Fprintln(&b, "No assets yet.")
		return b.String()
	}

	for _, a := range r.Assets {
		assetSection(&b, a, r.Currency)
	}
	return b.String()
}

func assetSection(w io.Writer, a *wealth.Asset, cur string) {
	title := a.Name
	if a.Closed {
		title += " (closed)"
	}
	fmt.Fprintf(w, "## %s\n\n", title)

	fmt.Fprintln(w, "| | |")
	fmt.Fprintln(w, "|:---|---:|")
	fmt.Fprintf(w, "| Type | %s |\n", a.Type)
	fmt.Fprintf(w, "| Opened | %s |\n", a.Opened)
	if a.InNet {
		fmt.Fprintln(w, "| Counts in net worth | yes |")
	}
	if !a.Units.IsZero() {
		fmt.Fprintf(w, "| Units | %s |\n", a.Units)
	}
	fmt.Fprintf(w, "| **Value** | **%s** |\n", a.CurrentValue().In(cur).String())
	fmt.Fprintf(w, "| Contributed | %s |\n", a.Contribution().In(cur).SignedString())
	fmt.Fprintf(w, "| Own growth | %s %s |\n", a.SelfGrowth().In(cur).SignedString(), a.SelfGrowthPercent().SignedString())
	fmt.Fprintf(w, "| This year | %s |\n", a.GrowthYear().SignedString())
	fmt.Fprintf(w, "| This month | %s |\n", a.GrowthMonth().SignedString())
	fmt.Fprintln(w)

	if len(a.Contributions) == 0 {
		return
	}
	fmt.Fprintln(w, "| Movement | Amount | Total |")
	fmt.Fprintln(w, "|:---|---:|---:|")
	for _, c := range a.Contributions {
		fmt.Fprintf(w, "| %s | %s | %s |\n", c.On, c.Amount.In(cur).SignedString(), c.Total.In(cur).String())
	}
	fmt.Fprintln(w)
}
