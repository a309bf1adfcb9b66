package wealth

import (
	"errors"
	"fmt"
)

// EventType identifies one of the event variants recorded in the ledger.
type EventType string

const (
	EventBirthday      EventType = "date-of-birth"
	EventSalary        EventType = "salary"
	EventOpenAsset     EventType = "open-asset"
	EventTransaction   EventType = "transaction"
	EventValue         EventType = "value"
	EventCloseAsset    EventType = "close-asset"
	EventWIGoal        EventType = "wi-goal"
	EventYearGoal      EventType = "year-goal"
	EventMoneyLifetime EventType = "money-lifetime"
)

// Event is one immutable dated fact entered by the user. The engine never
// mutates events, it only derives new structures from them.
type Event interface {
	What() EventType // What returns the variant tag of the event.
	When() Date      // When returns the date the fact applies to, zero for undated goals.
	Equal(Event) bool
	Validate(ledger *Ledger) (Event, error)
}

type baseEvent struct {
	Data EventType `json:"event"`          // Data is the variant tag.
	Date Date      `json:"date,omitempty"` // Date is when the fact applies. Goal variants leave it empty.
	Memo string    `json:"memo,omitempty"` // Memo is an optional note.
}

// What returns the variant tag of the event.
func (e baseEvent) What() EventType { return e.Data }

// When returns the date of the event.
func (e baseEvent) When() Date { return e.Date }

// validate defaults a zero date to today. Variants where the date is the
// payload, or where there is no date at all, skip this.
func (e *baseEvent) validate() {
	if e.Date.IsZero() {
		e.Date = Today()
	}
}

// MarshalJSON implements the json.Marshaler interface for baseEvent.
func (e baseEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("event", e.Data)
	w.Optional("date", e.Date)
	w.Optional("memo", e.Memo)
	return w.MarshalJSON()
}

// assetEvent is the common part of all events that reference an asset by name.
type assetEvent struct {
	baseEvent
	Name string `json:"name"` // Name of the asset the event belongs to.
}

func (e assetEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("name", e.Name)
	return w.MarshalJSON()
}

// Birthday records the user's date of birth. It anchors every age
// computation, and through it the wealth index.
type Birthday struct {
	baseEvent
}

// NewBirthday creates a new Birthday event.
func NewBirthday(day Date) Birthday {
	return Birthday{baseEvent: baseEvent{Data: EventBirthday, Date: day}}
}

func (e Birthday) Equal(other Event) bool {
	o, ok := other.(Birthday)
	return ok && e.baseEvent == o.baseEvent
}

// Validate checks the Birthday event's fields. The date is the payload here,
// so it must be present and in the past.
func (e Birthday) Validate(ledger *Ledger) (Event, error) {
	if e.Date.IsZero() {
		return e, errors.New("birthday date is missing")
	}
	if e.Date.After(Today()) {
		return e, fmt.Errorf("birthday %s is in the future", e.Date)
	}
	return e, nil
}

// Salary records the monthly salary from a given date on. Successive events
// form a step function, each value holds until the next one.
type Salary struct {
	assetEvent
	Value Money `json:"value"` // Value is the monthly salary amount.
}

// NewSalary creates a new Salary event. The name labels the income source.
func NewSalary(day Date, memo, name string, value Money) Salary {
	return Salary{
		assetEvent: assetEvent{baseEvent: baseEvent{Data: EventSalary, Date: day, Memo: memo}, Name: name},
		Value:      value,
	}
}

func (e Salary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.assetEvent)
	w.Append("value", e.Value)
	return w.MarshalJSON()
}

func (e Salary) Equal(other Event) bool {
	o, ok := other.(Salary)
	return ok && e.assetEvent == o.assetEvent && e.Value.Equal(o.Value)
}

// Validate checks the Salary event's fields.
func (e Salary) Validate(ledger *Ledger) (Event, error) {
	e.baseEvent.validate()
	if e.Name == "" {
		return e, errors.New("salary name is missing")
	}
	if e.Value.IsNegative() {
		return e, fmt.Errorf("salary %q has a negative value", e.Name)
	}
	return e, nil
}

// OpenAsset records the creation of an asset. It implies an opening
// contribution equal to the initial value.
type OpenAsset struct {
	assetEvent
	Type  AssetType `json:"type"`            // Type groups assets for aggregation.
	Value Money     `json:"value"`           // Value is the initial asset value.
	Units Quantity  `json:"units,omitempty"` // Units initially held, zero when not tracked.
	InNet bool      `json:"net,omitempty"`   // InNet includes the asset in net-worth aggregates.
}

// NewOpenAsset creates a new OpenAsset event.
func NewOpenAsset(day Date, memo, name string, typ AssetType, value Money, units Quantity, inNet bool) OpenAsset {
	return OpenAsset{
		assetEvent: assetEvent{baseEvent: baseEvent{Data: EventOpenAsset, Date: day, Memo: memo}, Name: name},
		Type:       typ,
		Value:      value,
		Units:      units,
		InNet:      inNet,
	}
}

func (e OpenAsset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.assetEvent)
	w.Append("type", e.Type)
	w.Append("value", e.Value)
	if !e.Units.IsZero() {
		w.Append("units", e.Units)
	}
	if e.InNet {
		w.Append("net", e.InNet)
	}
	return w.MarshalJSON()
}

func (e OpenAsset) Equal(other Event) bool {
	o, ok := other.(OpenAsset)
	return ok && e.assetEvent == o.assetEvent && e.Type == o.Type &&
		e.Value.Equal(o.Value) && e.Units.Equal(o.Units) && e.InNet == o.InNet
}

// Validate checks the OpenAsset event's fields and that the asset name is
// not already taken.
func (e OpenAsset) Validate(ledger *Ledger) (Event, error) {
	e.baseEvent.validate()
	if e.Name == "" {
		return e, errors.New("open-asset name is missing")
	}
	if !knownAssetType(e.Type) {
		return e, fmt.Errorf("open-asset %q has unknown type %q, want one of %v", e.Name, e.Type, AssetTypes())
	}
	if e.Value.IsNegative() {
		return e, fmt.Errorf("open-asset %q has a negative value", e.Name)
	}
	if ledger != nil && ledger.openCount(e.Name) > 1 {
		return e, fmt.Errorf("asset %q is already opened", e.Name)
	}
	return e, nil
}

// Deposit records money moved into (positive amount) or out of (negative
// amount) an asset. Its tag on the wire is "transaction".
type Deposit struct {
	assetEvent
	Amount Money    `json:"amount"`          // Amount deposited, negative for a withdrawal.
	Value  Money    `json:"value"`           // Value of the asset right after the transaction.
	Units  Quantity `json:"units,omitempty"` // Units held after the transaction, zero when not tracked.
}

// NewDeposit creates a new Deposit event. A withdrawal is a negative amount.
func NewDeposit(day Date, memo, name string, amount, value Money, units Quantity) Deposit {
	return Deposit{
		assetEvent: assetEvent{baseEvent: baseEvent{Data: EventTransaction, Date: day, Memo: memo}, Name: name},
		Amount:     amount,
		Value:      value,
		Units:      units,
	}
}

func (e Deposit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.assetEvent)
	w.Append("amount", e.Amount)
	w.Append("value", e.Value)
	if !e.Units.IsZero() {
		w.Append("units", e.Units)
	}
	return w.MarshalJSON()
}

func (e Deposit) Equal(other Event) bool {
	o, ok := other.(Deposit)
	return ok && e.assetEvent == o.assetEvent && e.Amount.Equal(o.Amount) &&
		e.Value.Equal(o.Value) && e.Units.Equal(o.Units)
}

// Validate checks the Deposit event's fields and that it references an open,
// not yet closed, asset.
func (e Deposit) Validate(ledger *Ledger) (Event, error) {
	e.baseEvent.validate()
	if e.Name == "" {
		return e, errors.New("transaction name is missing")
	}
	if e.Amount.IsZero() {
		return e, fmt.Errorf("transaction on %q has no amount", e.Name)
	}
	if e.Value.IsNegative() {
		return e, fmt.Errorf("transaction on %q has a negative value", e.Name)
	}
	return e, checkAssetOpen(ledger, e.Name, e.Date, "transaction")
}

// Valuation records the value of an asset on a date, a point-in-time mark
// with no money moving. Its tag on the wire is "value".
type Valuation struct {
	assetEvent
	Value Money `json:"value"` // Value of the asset on that date.
}

// NewValuation creates a new Valuation event.
func NewValuation(day Date, memo, name string, value Money) Valuation {
	return Valuation{
		assetEvent: assetEvent{baseEvent: baseEvent{Data: EventValue, Date: day, Memo: memo}, Name: name},
		Value:      value,
	}
}

func (e Valuation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.assetEvent)
	w.Append("value", e.Value)
	return w.MarshalJSON()
}

func (e Valuation) Equal(other Event) bool {
	o, ok := other.(Valuation)
	return ok && e.assetEvent == o.assetEvent && e.Value.Equal(o.Value)
}

// Validate checks the Valuation event's fields and that it references an
// open, not yet closed, asset.
func (e Valuation) Validate(ledger *Ledger) (Event, error) {
	e.baseEvent.validate()
	if e.Name == "" {
		return e, errors.New("value name is missing")
	}
	if e.Value.IsNegative() {
		return e, fmt.Errorf("value on %q is negative", e.Name)
	}
	return e, checkAssetOpen(ledger, e.Name, e.Date, "value")
}

// CloseAsset records the end of an asset's life. It implies a closing
// withdrawal of the whole pre-close value and forces the asset's series to
// zero from the close date on.
type CloseAsset struct {
	assetEvent
	Value Money `json:"value"` // Value of the asset right before closing.
}

// NewCloseAsset creates a new CloseAsset event.
func NewCloseAsset(day Date, memo, name string, value Money) CloseAsset {
	return CloseAsset{
		assetEvent: assetEvent{baseEvent: baseEvent{Data: EventCloseAsset, Date: day, Memo: memo}, Name: name},
		Value:      value,
	}
}

func (e CloseAsset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.assetEvent)
	w.Append("value", e.Value)
	return w.MarshalJSON()
}

func (e CloseAsset) Equal(other Event) bool {
	o, ok := other.(CloseAsset)
	return ok && e.assetEvent == o.assetEvent && e.Value.Equal(o.Value)
}

// Validate checks the CloseAsset event's fields and that it references an
// open, not yet closed, asset.
func (e CloseAsset) Validate(ledger *Ledger) (Event, error) {
	e.baseEvent.validate()
	if e.Name == "" {
		return e, errors.New("close-asset name is missing")
	}
	if e.Value.IsNegative() {
		return e, fmt.Errorf("close-asset %q has a negative value", e.Name)
	}
	return e, checkAssetOpen(ledger, e.Name, e.Date, "close-asset")
}

// WIGoal declares a target wealth index to reach at a given age.
type WIGoal struct {
	baseEvent
	Index float64 `json:"wealth-index"` // Index is the target wealth index.
	Age   float64 `json:"age"`          // Age in years at which to reach it.
}

// NewWIGoal creates a new WIGoal event.
func NewWIGoal(memo string, index, age float64) WIGoal {
	return WIGoal{
		baseEvent: baseEvent{Data: EventWIGoal, Memo: memo},
		Index:     index,
		Age:       age,
	}
}

func (e WIGoal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("wealth-index", e.Index)
	w.Append("age", e.Age)
	return w.MarshalJSON()
}

func (e WIGoal) Equal(other Event) bool {
	o, ok := other.(WIGoal)
	return ok && e.baseEvent == o.baseEvent && e.Index == o.Index && e.Age == o.Age
}

// Validate checks the WIGoal event's fields.
func (e WIGoal) Validate(ledger *Ledger) (Event, error) {
	if e.Index <= 0 {
		return e, errors.New("wi-goal wealth-index is missing")
	}
	if e.Age <= 0 {
		return e, errors.New("wi-goal age is missing")
	}
	return e, nil
}

// YearGoal declares a target growth percentage for one calendar year.
type YearGoal struct {
	baseEvent
	Year       int     `json:"year"`       // Year the goal applies to.
	Percentage Percent `json:"percentage"` // Percentage growth targeted over that year.
}

// NewYearGoal creates a new YearGoal event.
func NewYearGoal(memo string, year int, percentage Percent) YearGoal {
	return YearGoal{
		baseEvent:  baseEvent{Data: EventYearGoal, Memo: memo},
		Year:       year,
		Percentage: percentage,
	}
}

func (e YearGoal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("year", e.Year)
	w.Append("percentage", e.Percentage)
	return w.MarshalJSON()
}

func (e YearGoal) Equal(other Event) bool {
	o, ok := other.(YearGoal)
	return ok && e.baseEvent == o.baseEvent && e.Year == o.Year && e.Percentage.Equal(o.Percentage)
}

// Validate checks the YearGoal event's fields.
func (e YearGoal) Validate(ledger *Ledger) (Event, error) {
	if e.Year == 0 {
		return e, errors.New("year-goal year is missing")
	}
	if e.Percentage == 0 {
		return e, errors.New("year-goal percentage is missing")
	}
	return e, nil
}

// MoneyLifetime declares one parameter set for the depletion simulation:
// how long would the net assets last, withdrawing a percentage of the
// current salary every month, with withdrawals growing with inflation and
// the remaining assets growing at the given rate.
type MoneyLifetime struct {
	baseEvent
	Inflation       Percent `json:"inflation"`         // Inflation is the annual rate applied to withdrawals.
	PercentOfSalary Percent `json:"percent-of-salary"` // PercentOfSalary sizes the monthly withdrawal.
	AssetGrowth     Percent `json:"asset-growth"`      // AssetGrowth is the annual rate of the remaining assets.
}

// NewMoneyLifetime creates a new MoneyLifetime event.
func NewMoneyLifetime(memo string, inflation, percentOfSalary, assetGrowth Percent) MoneyLifetime {
	return MoneyLifetime{
		baseEvent:       baseEvent{Data: EventMoneyLifetime, Memo: memo},
		Inflation:       inflation,
		PercentOfSalary: percentOfSalary,
		AssetGrowth:     assetGrowth,
	}
}

func (e MoneyLifetime) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("inflation", e.Inflation)
	w.Append("percent-of-salary", e.PercentOfSalary)
	w.Append("asset-growth", e.AssetGrowth)
	return w.MarshalJSON()
}

func (e MoneyLifetime) Equal(other Event) bool {
	o, ok := other.(MoneyLifetime)
	return ok && e.baseEvent == o.baseEvent && e.Inflation.Equal(o.Inflation) &&
		e.PercentOfSalary.Equal(o.PercentOfSalary) && e.AssetGrowth.Equal(o.AssetGrowth)
}

// Validate checks the MoneyLifetime event's fields. A negative inflation is
// rejected here so the simulation never has to deal with it.
func (e MoneyLifetime) Validate(ledger *Ledger) (Event, error) {
	if e.Inflation < 0 {
		return e, errors.New("money-lifetime inflation is negative")
	}
	if e.PercentOfSalary <= 0 {
		return e, errors.New("money-lifetime percent-of-salary is missing")
	}
	return e, nil
}

// checkAssetOpen verifies that an asset event lands on an asset that exists
// and is still open on that date. A nil ledger skips the check, the
// reconstruction performs it again over the full collection.
func checkAssetOpen(ledger *Ledger, name string, on Date, kind string) error {
	if ledger == nil {
		return nil
	}
	if !ledger.opened(name) {
		return fmt.Errorf("%s on %q: %w", kind, name, ErrOrphanAsset)
	}
	if closed, closeDate := ledger.closedOn(name); closed && on.After(closeDate) {
		return fmt.Errorf("%s on %q: asset was closed on %s", kind, name, closeDate)
	}
	return nil
}
