package wealth

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Ledger is the whole collection of events, the single input of every
// derivation. It guarantees chronological order with stable same-date
// ordering, and indexes asset lifecycles so events can be validated against
// the full collection rather than the order they happen to arrive in.
type Ledger struct {
	events   []Event
	assets   map[string]*assetRecord
	currency string
}

// assetRecord tracks one asset's lifecycle boundaries.
type assetRecord struct {
	opens   int
	openOn  Date
	closes  int
	closeOn Date
}

// NewLedger creates a new empty ledger.
func NewLedger() *Ledger {
	return &Ledger{assets: make(map[string]*assetRecord)}
}

// SetCurrency sets the display currency reports are denominated in.
func (l *Ledger) SetCurrency(code string) { l.currency = code }

// Currency returns the display currency.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of events in the ledger.
func (l *Ledger) Len() int { return len(l.events) }

// Append validates and adds events to the ledger.
//
// The batch and the existing events are considered as one unordered
// collection: the asset index is rebuilt over the whole of it, each event is
// validated against that index, and the result is sorted by date. Validation
// is date-based, not order-based, so a deposit entered before its open-asset
// validates fine as long as the dates line up. The sort runs last because
// validation is also where missing dates get defaulted. On error the ledger
// is left untouched.
func (l *Ledger) Append(events ...Event) error {
	tentative := &Ledger{
		events:   append(slices.Clone(l.events), events...),
		assets:   make(map[string]*assetRecord),
		currency: l.currency,
	}
	if err := tentative.reindex(); err != nil {
		return err
	}
	for i, ev := range tentative.events {
		validated, err := ev.Validate(tentative)
		if err != nil {
			return fmt.Errorf("invalid %s event: %w", ev.What(), err)
		}
		tentative.events[i] = validated
	}
	tentative.stableSort()
	// validation may have filled in dates, rebuild the index from the final ones
	if err := tentative.reindex(); err != nil {
		return err
	}
	l.events, l.assets = tentative.events, tentative.assets
	return nil
}

// stableSort orders events chronologically, keeping the relative order of
// same-date events. Undated goal events sort first.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.events, func(i, j int) bool {
		return l.events[i].When().Before(l.events[j].When())
	})
}

// reindex rebuilds the asset lifecycle index from the sorted events.
func (l *Ledger) reindex() error {
	l.assets = make(map[string]*assetRecord)
	for _, ev := range l.events {
		switch e := ev.(type) {
		case OpenAsset:
			r := l.record(e.Name)
			r.opens++
			if r.opens == 1 {
				r.openOn = e.Date
			}
		case CloseAsset:
			r := l.record(e.Name)
			r.closes++
			if r.closes > 1 {
				return fmt.Errorf("asset %q is closed twice", e.Name)
			}
			r.closeOn = e.Date
		}
	}
	for name, r := range l.assets {
		if r.opens > 0 && r.closes > 0 && r.closeOn.Before(r.openOn) {
			return fmt.Errorf("asset %q is closed on %s, before it was opened on %s", name, r.closeOn, r.openOn)
		}
	}
	return nil
}

func (l *Ledger) record(name string) *assetRecord {
	r, ok := l.assets[name]
	if !ok {
		r = &assetRecord{}
		l.assets[name] = r
	}
	return r
}

// opened returns true if the collection holds an open-asset event for name.
func (l *Ledger) opened(name string) bool {
	r, ok := l.assets[name]
	return ok && r.opens > 0
}

// openCount returns how many open-asset events exist for name.
func (l *Ledger) openCount(name string) int {
	r, ok := l.assets[name]
	if !ok {
		return 0
	}
	return r.opens
}

// closedOn returns whether the asset is closed and on which date.
func (l *Ledger) closedOn(name string) (bool, Date) {
	r, ok := l.assets[name]
	if !ok || r.closes == 0 {
		return false, Date{}
	}
	return true, r.closeOn
}

// Events returns an iterator over all events in chronological order.
func (l *Ledger) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, ev := range l.events {
			if !yield(ev) {
				return
			}
		}
	}
}

// AssetNames returns the sorted names of all assets that have an open-asset
// event.
func (l *Ledger) AssetNames() []string {
	names := make([]string, 0, len(l.assets))
	for name, r := range l.assets {
		if r.opens > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// EventsOf returns the asset events belonging to one asset name, in
// chronological order.
func (l *Ledger) EventsOf(name string) []Event {
	var events []Event
	for _, ev := range l.events {
		switch e := ev.(type) {
		case OpenAsset:
			if e.Name == name {
				events = append(events, ev)
			}
		case Deposit:
			if e.Name == name {
				events = append(events, ev)
			}
		case Valuation:
			if e.Name == name {
				events = append(events, ev)
			}
		case CloseAsset:
			if e.Name == name {
				events = append(events, ev)
			}
		}
	}
	return events
}

// Birthday returns the declared date of birth. With several date-of-birth
// events the last one wins, it is a correction.
func (l *Ledger) Birthday() (Date, bool) {
	var birth Date
	found := false
	for _, ev := range l.events {
		if e, ok := ev.(Birthday); ok {
			birth, found = e.Date, true
		}
	}
	return birth, found
}

// Salaries returns the sparse salary marks, the last event winning on a
// same date, ready to be forward-filled.
func (l *Ledger) Salaries() *Timeline {
	t := &Timeline{}
	for _, ev := range l.events {
		if e, ok := ev.(Salary); ok {
			t.Append(e.Date, e.Value)
		}
	}
	return t
}

// WIGoals returns all declared wealth index goals, in entry order.
func (l *Ledger) WIGoals() []WIGoal {
	var goals []WIGoal
	for _, ev := range l.events {
		if e, ok := ev.(WIGoal); ok {
			goals = append(goals, e)
		}
	}
	return goals
}

// YearGoals returns all declared year growth goals, in entry order.
func (l *Ledger) YearGoals() []YearGoal {
	var goals []YearGoal
	for _, ev := range l.events {
		if e, ok := ev.(YearGoal); ok {
			goals = append(goals, e)
		}
	}
	return goals
}

// MoneyLifetimes returns all declared lifetime parameter sets, in entry order.
func (l *Ledger) MoneyLifetimes() []MoneyLifetime {
	var params []MoneyLifetime
	for _, ev := range l.events {
		if e, ok := ev.(MoneyLifetime); ok {
			params = append(params, e)
		}
	}
	return params
}
