package wealth

import "fmt"

// Report is one immutable snapshot of everything the engine derives from
// the ledger: built once per invocation, never mutated afterwards, and
// bit-identical for identical (events, now) inputs.
type Report struct {
	Now      Date
	Currency string
	Birthday Date // zero when no date-of-birth event exists

	Salaries []DailyValue // daily monthly-salary series
	Assets   []*Asset     // every asset, sorted by name
	Groups   []*AssetGroup

	// Net is the combined performance of the assets included in net worth,
	// the series the wealth index and the year rollups are computed on.
	Net Performance

	WealthIndex *History[float64]
	Years       []*YearSummary
	WIGoals     []WIGoalLine
	Lifetimes   []Lifetime

	Current CurrentValues
}

// CurrentValues are the point-in-time numbers on the report date.
type CurrentValues struct {
	NetValue    Money
	Salary      Money
	WealthIndex float64
	Age         float64
}

// NewReport derives the full report from the ledger as of 'now'. A zero
// 'now' means today; injecting a fixed date makes the whole derivation
// deterministic.
//
// The sequence follows the data dependencies: birthday, salary series,
// asset reconstruction, net aggregation, wealth index, groups, year
// rollups, goal projections, and last the lifetime simulations seeded with
// the current salary and net value.
func (l *Ledger) NewReport(now Date) (*Report, error) {
	if now.IsZero() {
		now = Today()
	}

	// every asset event must land on an opened asset, reconstruction never
	// fabricates an implicit opening
	for ev := range l.Events() {
		name, ok := assetNameOf(ev)
		if !ok {
			continue
		}
		if !l.opened(name) {
			return nil, fmt.Errorf("%s event on asset %q: %w", ev.What(), name, ErrOrphanAsset)
		}
	}

	birth, _ := l.Birthday()
	salaries := l.Salaries().FillDaily(now)

	names := l.AssetNames()
	assets := make([]*Asset, 0, len(names))
	for _, name := range names {
		a, err := newAsset(name, l.EventsOf(name), now)
		if err != nil {
			return nil, err
		}
		if a == nil {
			// opened after 'now', not part of this report
			continue
		}
		assets = append(assets, a)
	}

	// the net-worth filter applies before aggregation, excluded assets
	// never touch the net series
	var netAssets []*Asset
	for _, a := range assets {
		if a.InNet {
			netAssets = append(netAssets, a)
		}
	}
	net := combine(netAssets, now)

	wi := buildWealthIndex(birth, net.Daily, salaries)

	current := CurrentValues{
		NetValue: net.CurrentValue(),
		Age:      ageYears(birth, now),
	}
	if s, ok := dailyAsOf(salaries, now); ok {
		current.Salary = s
	}
	_, current.WealthIndex = wi.Latest()

	lifetimes := make([]Lifetime, 0)
	for _, params := range l.MoneyLifetimes() {
		lifetimes = append(lifetimes, simulateLifetime(params, current.Salary, current.NetValue))
	}

	return &Report{
		Now:         now,
		Currency:    l.Currency(),
		Birthday:    birth,
		Salaries:    salaries,
		Assets:      assets,
		Groups:      groupAssets(assets, now),
		Net:         net,
		WealthIndex: wi,
		Years:       buildYears(net.Daily, net.Contributions, wi, salaries, l.YearGoals(), now),
		WIGoals:     buildWIGoals(l.WIGoals(), birth, now, current.WealthIndex),
		Lifetimes:   lifetimes,
		Current:     current,
	}, nil
}

// assetNameOf returns the asset name an event refers to, false for the
// variants that do not reference an asset.
func assetNameOf(ev Event) (string, bool) {
	switch e := ev.(type) {
	case OpenAsset:
		return e.Name, true
	case Deposit:
		return e.Name, true
	case Valuation:
		return e.Name, true
	case CloseAsset:
		return e.Name, true
	default:
		return "", false
	}
}
