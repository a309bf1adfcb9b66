package wealth

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// AssetType groups assets of the same nature for aggregation.
type AssetType string

const (
	TypeCash     AssetType = "cash"
	TypeSavings  AssetType = "savings"
	TypeStocks   AssetType = "stocks"
	TypeBonds    AssetType = "bonds"
	TypeCrypto   AssetType = "crypto"
	TypeProperty AssetType = "property"
	TypePension  AssetType = "pension"
	TypeOther    AssetType = "other"
)

// AssetTypes returns all known asset types.
func AssetTypes() []AssetType {
	return []AssetType{TypeCash, TypeSavings, TypeStocks, TypeBonds, TypeCrypto, TypeProperty, TypePension, TypeOther}
}

func knownAssetType(t AssetType) bool { return slices.Contains(AssetTypes(), t) }

// ParseAssetType parses an asset type from its string form.
func ParseAssetType(s string) (AssetType, error) {
	t := AssetType(s)
	if !knownAssetType(t) {
		return TypeOther, fmt.Errorf("unknown asset type %q, want one of %v", s, AssetTypes())
	}
	return t, nil
}

// ErrOrphanAsset reports asset events with no matching open-asset event. The
// engine never fabricates an implicit opening.
var ErrOrphanAsset = errors.New("missing open-asset event")

// Contribution is one money movement in or out of an asset: a deposit, a
// withdrawal, or one of the two synthesized movements implied by opening and
// closing. Total is the running sum of all movements up to this one.
type Contribution struct {
	On     Date
	Amount Money
	Total  Money
}

// Performance is the derived shape shared by every aggregation level: the
// full contribution list and the dense daily value series, from which all
// growth metrics follow.
type Performance struct {
	Contributions []Contribution
	Daily         []DailyValue
}

// Contribution returns the total contributed so far, the opening and closing
// movements included.
func (p Performance) Contribution() Money {
	if len(p.Contributions) == 0 {
		return Money{}
	}
	return p.Contributions[len(p.Contributions)-1].Total
}

// StartValue returns the first daily value, zero when the series is empty.
func (p Performance) StartValue() Money {
	if len(p.Daily) == 0 {
		return Money{}
	}
	return p.Daily[0].Value
}

// CurrentValue returns the last daily value, zero when the series is empty.
func (p Performance) CurrentValue() Money {
	if len(p.Daily) == 0 {
		return Money{}
	}
	return p.Daily[len(p.Daily)-1].Value
}

// SelfGrowth returns the portion of the current value not explained by
// contributions, the asset's own performance.
func (p Performance) SelfGrowth() Money {
	return p.CurrentValue().Sub(p.Contribution())
}

// SelfGrowthPercent returns the growth percentage from total contributions
// to current value.
func (p Performance) SelfGrowthPercent() Percent {
	return p.CurrentValue().GrowthFrom(p.Contribution())
}

// GrowthAmount returns the value change over the whole series.
func (p Performance) GrowthAmount() Money {
	return p.CurrentValue().Sub(p.StartValue())
}

// GrowthAllTime returns the growth percentage from the first daily value to
// the last.
func (p Performance) GrowthAllTime() Percent {
	return p.CurrentValue().GrowthFrom(p.StartValue())
}

// GrowthSince returns the growth percentage over the period containing the
// last day: from the first daily value inside that period to the last.
func (p Performance) GrowthSince(period Period) Percent {
	if len(p.Daily) == 0 {
		return 0
	}
	start := p.Daily[len(p.Daily)-1].On.StartOf(period)
	for _, dv := range p.Daily {
		if !dv.On.Before(start) {
			return p.CurrentValue().GrowthFrom(dv.Value)
		}
	}
	return 0
}

// GrowthYear returns the growth percentage over the current calendar year.
func (p Performance) GrowthYear() Percent { return p.GrowthSince(Yearly) }

// GrowthMonth returns the growth percentage over the current calendar month.
func (p Performance) GrowthMonth() Percent { return p.GrowthSince(Monthly) }

// GrowthDay returns the growth percentage over the last two daily points.
func (p Performance) GrowthDay() Percent {
	if len(p.Daily) < 2 {
		return 0
	}
	return p.CurrentValue().GrowthFrom(p.Daily[len(p.Daily)-2].Value)
}

// Asset is one logical asset reconstructed from its scattered events. It is
// derived in full on every run and never mutated afterwards.
type Asset struct {
	Name   string
	Type   AssetType
	InNet  bool
	Closed bool
	Opened Date
	Units  Quantity

	Performance
}

// newAsset reconstructs one asset from all the events sharing its name.
//
// The opening event contributes an initial deposit of the opening value, and
// a closing event contributes a withdrawal of the whole pre-close value plus
// a zero mark pinning the series to nothing from the close date on. The
// original events are never touched, the synthesized movements exist only in
// the derived Contributions list.
func newAsset(name string, events []Event, now Date) (*Asset, error) {
	events = slices.Clone(events)
	sort.SliceStable(events, func(i, j int) bool { return events[i].When().Before(events[j].When()) })

	var open *OpenAsset
	var closing *CloseAsset
	var futureOpen bool
	timeline := &Timeline{}
	type movement struct {
		on     Date
		amount Money
	}
	var movements []movement

	for _, ev := range events {
		// the derivation is point-in-time, events past 'now' do not exist yet
		if ev.When().After(now) {
			if _, ok := ev.(OpenAsset); ok {
				futureOpen = true
			}
			continue
		}
		switch e := ev.(type) {
		case OpenAsset:
			if open != nil {
				return nil, fmt.Errorf("asset %q is opened twice, on %s and %s", name, open.Date, e.Date)
			}
			o := e
			open = &o
			timeline.Append(e.Date, e.Value)
			movements = append(movements, movement{e.Date, e.Value})
		case Deposit:
			timeline.Append(e.Date, e.Value)
			movements = append(movements, movement{e.Date, e.Amount})
		case Valuation:
			timeline.Append(e.Date, e.Value)
		case CloseAsset:
			if closing != nil {
				return nil, fmt.Errorf("asset %q is closed twice, on %s and %s", name, closing.Date, e.Date)
			}
			c := e
			closing = &c
		default:
			return nil, fmt.Errorf("asset %q: unexpected %s event", name, ev.What())
		}
	}

	if open == nil {
		if futureOpen {
			// not opened yet on the report date, the asset does not exist
			return nil, nil
		}
		return nil, fmt.Errorf("asset %q: %w", name, ErrOrphanAsset)
	}
	if closing != nil {
		// worth nothing after closing
		timeline.Append(closing.Date, M(0, ""))
		movements = append(movements, movement{closing.Date, closing.Value.Neg()})
	}

	sort.SliceStable(movements, func(i, j int) bool { return movements[i].on.Before(movements[j].on) })
	contributions := make([]Contribution, 0, len(movements))
	total := Money{}
	for _, mv := range movements {
		total = total.Add(mv.amount)
		contributions = append(contributions, Contribution{On: mv.on, Amount: mv.amount, Total: total})
	}

	a := &Asset{
		Name:   name,
		Type:   open.Type,
		InNet:  open.InNet,
		Closed: closing != nil,
		Opened: open.Date,
		Units:  open.Units,
		Performance: Performance{
			Contributions: contributions,
			Daily:         timeline.FillDaily(now),
		},
	}
	// units follow the last transaction that tracked them
	for _, ev := range events {
		if e, ok := ev.(Deposit); ok && !e.Units.IsZero() && !e.Date.After(now) {
			a.Units = e.Units
		}
	}
	return a, nil
}
