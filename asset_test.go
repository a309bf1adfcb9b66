package wealth

import (
	"errors"
	"testing"
)

func TestNewAsset_Decomposition(t *testing.T) {
	// open with 1000, deposit 500 a month later: the whole current value is
	// explained by contributions, the asset earned nothing by itself
	events := []Event{
		NewOpenAsset(MustParse("2020-01-01"), "", "TFSA", TypeSavings, NO(1000), Q(0), true),
		NewDeposit(MustParse("2020-02-01"), "", "TFSA", NO(500), NO(1500), Q(0)),
	}
	now := MustParse("2020-03-01")

	a, err := newAsset("TFSA", events, now)
	if err != nil {
		t.Fatalf("newAsset() returned an unexpected error: %v", err)
	}

	if len(a.Daily) != 61 {
		t.Errorf("daily series has %d entries, want 61", len(a.Daily))
	}
	if got, _ := dailyAsOf(a.Daily, MustParse("2020-01-31")); !got.Equal(NO(1000)) {
		t.Errorf("value on 2020-01-31 = %v, want 1000", got)
	}
	if got, _ := dailyAsOf(a.Daily, MustParse("2020-02-01")); !got.Equal(NO(1500)) {
		t.Errorf("value on 2020-02-01 = %v, want 1500", got)
	}

	if got := a.Contribution(); !got.Equal(NO(1500)) {
		t.Errorf("Contribution() = %v, want 1500", got)
	}
	if got := a.SelfGrowth(); !got.IsZero() {
		t.Errorf("SelfGrowth() = %v, want 0", got)
	}
	if got := a.SelfGrowthPercent(); !got.Equal(0) {
		t.Errorf("SelfGrowthPercent() = %v, want 0", got)
	}
	if a.Opened != MustParse("2020-01-01") || a.Type != TypeSavings || !a.InNet || a.Closed {
		t.Errorf("asset header = %+v, want open savings asset in net worth", a)
	}
}

func TestNewAsset_SelfGrowth(t *testing.T) {
	// a valuation above the contributions is the asset's own earning
	events := []Event{
		NewOpenAsset(MustParse("2020-01-01"), "", "fund", TypeStocks, NO(1000), Q(0), true),
		NewValuation(MustParse("2020-06-01"), "", "fund", NO(1200)),
	}
	a, err := newAsset("fund", events, MustParse("2020-06-01"))
	if err != nil {
		t.Fatalf("newAsset() returned an unexpected error: %v", err)
	}

	if got := a.Contribution(); !got.Equal(NO(1000)) {
		t.Errorf("Contribution() = %v, want 1000", got)
	}
	if got := a.SelfGrowth(); !got.Equal(NO(200)) {
		t.Errorf("SelfGrowth() = %v, want 200", got)
	}
	if got := a.SelfGrowthPercent(); !got.Equal(20) {
		t.Errorf("SelfGrowthPercent() = %v, want 20%%", got)
	}
}

func TestNewAsset_UnsortedEvents(t *testing.T) {
	// reconstruction sorts for itself, the input order carries no meaning
	events := []Event{
		NewValuation(MustParse("2020-06-01"), "", "fund", NO(1200)),
		NewOpenAsset(MustParse("2020-01-01"), "", "fund", TypeStocks, NO(1000), Q(0), true),
	}
	a, err := newAsset("fund", events, MustParse("2020-06-01"))
	if err != nil {
		t.Fatalf("newAsset() returned an unexpected error: %v", err)
	}
	if got := a.StartValue(); !got.Equal(NO(1000)) {
		t.Errorf("StartValue() = %v, want 1000", got)
	}
	if got := a.CurrentValue(); !got.Equal(NO(1200)) {
		t.Errorf("CurrentValue() = %v, want 1200", got)
	}
}

func TestNewAsset_Close(t *testing.T) {
	// closing forces the series to zero and synthesizes a withdrawal of the
	// whole pre-close value
	events := []Event{
		NewOpenAsset(MustParse("2020-01-01"), "", "TFSA", TypeSavings, NO(1000), Q(0), true),
		NewCloseAsset(MustParse("2020-03-01"), "", "TFSA", NO(1100)),
	}
	now := MustParse("2020-06-01")

	a, err := newAsset("TFSA", events, now)
	if err != nil {
		t.Fatalf("newAsset() returned an unexpected error: %v", err)
	}

	if !a.Closed {
		t.Errorf("Closed = false, want true")
	}
	if got, _ := dailyAsOf(a.Daily, MustParse("2020-02-29")); !got.Equal(NO(1000)) {
		t.Errorf("value before close = %v, want 1000", got)
	}
	if got, _ := dailyAsOf(a.Daily, MustParse("2020-03-01")); !got.IsZero() {
		t.Errorf("value on close day = %v, want 0", got)
	}
	if got := a.CurrentValue(); !got.IsZero() {
		t.Errorf("CurrentValue() = %v, want 0", got)
	}

	// contributions: +1000 at open, -1100 at close
	if got := a.Contribution(); !got.Equal(NO(-100)) {
		t.Errorf("Contribution() = %v, want -100", got)
	}
	// 0 - (-100): the asset earned 100 over its life
	if got := a.SelfGrowth(); !got.Equal(NO(100)) {
		t.Errorf("SelfGrowth() = %v, want 100", got)
	}
}

func TestNewAsset_Orphan(t *testing.T) {
	events := []Event{
		NewDeposit(MustParse("2020-02-01"), "", "TFSA", NO(500), NO(1500), Q(0)),
	}
	_, err := newAsset("TFSA", events, MustParse("2020-03-01"))
	if !errors.Is(err, ErrOrphanAsset) {
		t.Fatalf("newAsset() error = %v, want ErrOrphanAsset", err)
	}
}

func TestNewAsset_DoubleOpen(t *testing.T) {
	events := []Event{
		NewOpenAsset(MustParse("2020-01-01"), "", "TFSA", TypeSavings, NO(1000), Q(0), true),
		NewOpenAsset(MustParse("2020-02-01"), "", "TFSA", TypeSavings, NO(2000), Q(0), true),
	}
	_, err := newAsset("TFSA", events, MustParse("2020-03-01"))
	if err == nil {
		t.Fatalf("newAsset() = nil error on a twice-opened asset")
	}
}

func TestNewAsset_UnitsFollowTransactions(t *testing.T) {
	events := []Event{
		NewOpenAsset(MustParse("2020-01-01"), "", "fund", TypeStocks, NO(1000), Q(10), true),
		NewDeposit(MustParse("2020-02-01"), "", "fund", NO(500), NO(1500), Q(14)),
		NewValuation(MustParse("2020-03-01"), "", "fund", NO(1550)),
	}
	a, err := newAsset("fund", events, MustParse("2020-03-01"))
	if err != nil {
		t.Fatalf("newAsset() returned an unexpected error: %v", err)
	}
	if !a.Units.Equal(Q(14)) {
		t.Errorf("Units = %v, want 14", a.Units)
	}
}

func TestPerformance_GrowthPeriods(t *testing.T) {
	// 1000 at the end of 2019, marked up to 1100 mid January
	events := []Event{
		NewOpenAsset(MustParse("2019-12-01"), "", "fund", TypeStocks, NO(1000), Q(0), true),
		NewValuation(MustParse("2020-01-10"), "", "fund", NO(1100)),
	}
	a, err := newAsset("fund", events, MustParse("2020-01-15"))
	if err != nil {
		t.Fatalf("newAsset() returned an unexpected error: %v", err)
	}

	if got := a.GrowthAllTime(); !got.Equal(10) {
		t.Errorf("GrowthAllTime() = %v, want 10%%", got)
	}
	// the year starts at 1000 still, the markup lands on January 10th
	if got := a.GrowthYear(); !got.Equal(10) {
		t.Errorf("GrowthYear() = %v, want 10%%", got)
	}
	if got := a.GrowthMonth(); !got.Equal(10) {
		t.Errorf("GrowthMonth() = %v, want 10%%", got)
	}
	// flat since the markup
	if got := a.GrowthDay(); !got.Equal(0) {
		t.Errorf("GrowthDay() = %v, want 0", got)
	}
	if got := a.GrowthAmount(); !got.Equal(NO(100)) {
		t.Errorf("GrowthAmount() = %v, want 100", got)
	}
}
