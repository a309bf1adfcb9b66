package renderer

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/nboran/wealth"
)

// reportFixture builds the report most renderer tests run on: a salary and
// one savings account topped up once, plus an index goal and a lifetime
// scenario, rendered in euros.
func reportFixture(t *testing.T) *wealth.Report {
	t.Helper()
	l := wealth.NewLedger()
	l.SetCurrency("EUR")
	err := l.Append(
		wealth.NewBirthday(wealth.MustParse("1990-01-01")),
		wealth.NewSalary(wealth.MustParse("2020-01-01"), "", "acme", wealth.M(10000, "")),
		wealth.NewOpenAsset(wealth.MustParse("2020-01-01"), "", "TFSA", wealth.TypeSavings, wealth.M(1000, ""), wealth.Quantity{}, true),
		wealth.NewDeposit(wealth.MustParse("2020-02-01"), "", "TFSA", wealth.M(500, ""), wealth.M(1500, ""), wealth.Quantity{}),
		wealth.NewWIGoal("", 2, 40),
		wealth.NewMoneyLifetime("", 0, 10, 0),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	r, err := l.NewReport(wealth.MustParse("2020-03-01"))
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}
	return r
}

// yearsFixture spans two calendar years with a declared goal on the second.
func yearsFixture(t *testing.T) *wealth.Report {
	t.Helper()
	l := wealth.NewLedger()
	l.SetCurrency("EUR")
	err := l.Append(
		wealth.NewOpenAsset(wealth.MustParse("2019-12-01"), "", "TFSA", wealth.TypeSavings, wealth.M(1000, ""), wealth.Quantity{}, true),
		wealth.NewValuation(wealth.MustParse("2020-06-30"), "", "TFSA", wealth.M(1060, "")),
		wealth.NewValuation(wealth.MustParse("2020-12-31"), "", "TFSA", wealth.M(1150, "")),
		wealth.NewYearGoal("", 2020, 12),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	r, err := l.NewReport(wealth.MustParse("2020-12-31"))
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}
	return r
}

func contains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestSummary(t *testing.T) {
	r := reportFixture(t)

	got := Summary(r)

	contains(t, got,
		"# Wealth Summary on 2020-03-01",
		"| **Net Asset Value** | **€1.500,00** |",
		"| Monthly Salary | €10.000,00 |",
		"| Age | 30.2 |",
		"## Assets",
		"| TFSA | savings | yes | €1.500,00 | +€1.500,00 | - - | +50.00% | - |",
		"## Asset Types",
		"| savings | 1 | €1.500,00 | +€1.500,00 | - - | 100.00% |",
	)
}

func TestSummary_Empty(t *testing.T) {
	r, err := wealth.NewLedger().NewReport(wealth.MustParse("2020-03-01"))
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}

	got := Summary(r)

	contains(t, got, "# Wealth Summary on 2020-03-01")
	if strings.Contains(got, "## Assets") {
		t.Errorf("empty report should not render an asset table:\n%s", got)
	}
}

func TestAssets(t *testing.T) {
	r := reportFixture(t)

	got := Assets(r)

	contains(t, got,
		"# Assets on 2020-03-01",
		"## TFSA",
		"| Type | savings |",
		"| Opened | 2020-01-01 |",
		"| Counts in net worth | yes |",
		"| **Value** | **€1.500,00** |",
		"| Movement | Amount | Total |",
		"| 2020-01-01 | +€1.000,00 | €1.000,00 |",
		"| 2020-02-01 | +€500,00 | €1.500,00 |",
	)
}

func TestYears(t *testing.T) {
	r := yearsFixture(t)

	got := Years(r)

	contains(t, got,
		"# Yearly Review on 2020-12-31",
		"| 2019 | €0,00 | €1.000,00 | +€1.000,00 | +€1.000,00 | 100.00% | 0.00% | - | - |",
		"| 2020 | €1.000,00 | €1.150,00 | +€150,00 | - | 0.00% | 100.00% | - | - |",
		"## 2020",
		"Goal: grow by 12.00%, from €1.000,00 to €1.120,00 (about €10,00 a month). Reached 125.00% of the targeted growth.",
		"| December | 2019-12-31 | €0,00 | €1.000,00 | +€1.000,00 | +€1.000,00 |",
		"| June | 2020-06-30 | €1.000,00 | €1.060,00 | +€60,00 | - | €1.060,00 |",
		"| December | 2020-12-31 | €1.060,00 | €1.150,00 | +€90,00 | - | €1.120,00 |",
	)
}

func TestWealthIndex(t *testing.T) {
	r := reportFixture(t)

	got := WealthIndex(r)

	contains(t, got,
		"# Wealth Index on 2020-03-01",
		"tracked since 2020-01-01",
		"| 2020-01-31 |",
		"| 2020-02-29 |",
		"| 2020-03-01 |",
		"## Goals",
		"| 2.00 | 40 | 2030-01-01 |",
	)
}

func TestWealthIndex_NoIndex(t *testing.T) {
	r := yearsFixture(t) // no birthday, no salary

	got := WealthIndex(r)

	contains(t, got, "No wealth index yet.")
}

func TestLifetimes(t *testing.T) {
	r := reportFixture(t)

	got := Lifetimes(r)

	contains(t, got,
		"# Money Lifetime on 2020-03-01",
		"Starting from €1.500,00 of net assets and a monthly salary of €10.000,00.",
		"| €1.000,00 (10.00% of salary) | 0.00% | 0.00% | 1 months | €1.000,00 |",
	)
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name string
		lt   wealth.Lifetime
		want string
	}{
		{"capped", wealth.Lifetime{Years: 50, Capped: true}, "50 years or more"},
		{"months only", wealth.Lifetime{Months: 5}, "5 months"},
		{"years and months", wealth.Lifetime{Years: 2, Months: 1}, "2 years 1 months"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := span(tt.lt); got != tt.want {
				t.Errorf("span() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConditionalBlock(t *testing.T) {
	var b strings.Builder

	ConditionalBlock(&b, func(w io.Writer) bool { fmt.Fprint(w, "kept"); return true })
	ConditionalBlock(&b, func(w io.Writer) bool { fmt.Fprint(w, "dropped"); return false })

	if got := b.String(); got != "kept" {
		t.Errorf("ConditionalBlock output = %q, want %q", got, "kept")
	}
}
