package wealth

import (
	"testing"
)

func buildAsset(t *testing.T, name string, typ AssetType, events []Event, now Date) *Asset {
	t.Helper()
	a, err := newAsset(name, events, now)
	if err != nil {
		t.Fatalf("newAsset(%q) returned an unexpected error: %v", name, err)
	}
	if a.Type != typ {
		t.Fatalf("newAsset(%q) type = %v, want %v", name, a.Type, typ)
	}
	return a
}

func TestGroupAssets(t *testing.T) {
	now := MustParse("2020-02-01")
	cash := buildAsset(t, "checking", TypeCash, []Event{
		NewOpenAsset(MustParse("2020-01-01"), "", "checking", TypeCash, NO(100), Q(0), true),
	}, now)
	stockB := buildAsset(t, "beta", TypeStocks, []Event{
		NewOpenAsset(MustParse("2020-01-01"), "", "beta", TypeStocks, NO(200), Q(0), true),
	}, now)
	stockA := buildAsset(t, "alpha", TypeStocks, []Event{
		NewOpenAsset(MustParse("2020-01-01"), "", "alpha", TypeStocks, NO(300), Q(0), true),
	}, now)

	groups := groupAssets([]*Asset{stockB, cash, stockA}, now)

	if len(groups) != 2 {
		t.Fatalf("groupAssets() produced %d groups, want 2", len(groups))
	}
	// declaration order of the types: cash comes before stocks
	if groups[0].Type != TypeCash || groups[1].Type != TypeStocks {
		t.Errorf("group order = [%v %v], want [cash stocks]", groups[0].Type, groups[1].Type)
	}
	if len(groups[1].Assets) != 2 {
		t.Fatalf("stocks group has %d members, want 2", len(groups[1].Assets))
	}
	// members are sorted by name
	if groups[1].Assets[0].Name != "alpha" || groups[1].Assets[1].Name != "beta" {
		t.Errorf("stocks members = [%s %s], want [alpha beta]", groups[1].Assets[0].Name, groups[1].Assets[1].Name)
	}
	if got := groups[1].CurrentValue(); !got.Equal(NO(500)) {
		t.Errorf("stocks group value = %v, want 500", got)
	}
}

func TestCombine(t *testing.T) {
	now := MustParse("2020-01-05")
	early := buildAsset(t, "early", TypeCash, []Event{
		NewOpenAsset(MustParse("2020-01-01"), "", "early", TypeCash, NO(100), Q(0), true),
	}, now)
	late := buildAsset(t, "late", TypeCash, []Event{
		NewOpenAsset(MustParse("2020-01-03"), "", "late", TypeCash, NO(10), Q(0), true),
	}, now)

	combined := combine([]*Asset{early, late}, now)

	// the combined series spans from the earliest opening through now
	if len(combined.Daily) != 5 {
		t.Fatalf("combined series has %d entries, want 5", len(combined.Daily))
	}
	if got, _ := dailyAsOf(combined.Daily, MustParse("2020-01-02")); !got.Equal(NO(100)) {
		t.Errorf("combined value before the late asset = %v, want 100", got)
	}
	if got, _ := dailyAsOf(combined.Daily, MustParse("2020-01-03")); !got.Equal(NO(110)) {
		t.Errorf("combined value once both exist = %v, want 110", got)
	}

	// contributions are merged chronologically with running totals recomputed
	if len(combined.Contributions) != 2 {
		t.Fatalf("combined contributions = %d, want 2", len(combined.Contributions))
	}
	if got := combined.Contribution(); !got.Equal(NO(110)) {
		t.Errorf("combined Contribution() = %v, want 110", got)
	}
	if !combined.Contributions[0].Total.Equal(NO(100)) || !combined.Contributions[1].Total.Equal(NO(110)) {
		t.Errorf("running totals = [%v %v], want [100 110]",
			combined.Contributions[0].Total, combined.Contributions[1].Total)
	}
}

func TestCombine_Empty(t *testing.T) {
	combined := combine(nil, Today())
	if len(combined.Daily) != 0 || len(combined.Contributions) != 0 {
		t.Errorf("combine(nil) = %+v, want empty performance", combined)
	}
	if !combined.CurrentValue().IsZero() {
		t.Errorf("combine(nil).CurrentValue() = %v, want 0", combined.CurrentValue())
	}
}
