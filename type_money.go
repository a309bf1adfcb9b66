package wealth

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
//
// The ledger is single-currency: amounts are persisted as bare numbers and
// carry no currency code of their own. A display currency is attached late,
// with In, only when a value is about to be formatted.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency, never nil even for unknown codes.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// In returns the same amount denominated in the given display currency.
func (m Money) In(code string) Money { return Money{value: m.value, cur: code} }

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string           { return m.cur }
func (m Money) Equal(n Money) bool         { return m.value.Equal(n.value) }
func (m Money) IsZero() bool               { return m.value.IsZero() }
func (m Money) IsPositive() bool           { return m.value.IsPositive() }
func (m Money) IsNegative() bool           { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool      { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool   { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                 { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money       { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Div(q Quantity) Money       { return Money{value: m.value.Div(q.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// AsFloat returns the amount as a float64. Ratio computations (wealth index,
// growth percentages) are float territory, exactness stops there.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// GrowthFrom returns the growth percentage from start to m.
//
// By convention the growth from or to a zero amount is zero, a from-nothing
// base has no meaningful rate. Otherwise it is 100*(m/start - 1).
func (m Money) GrowthFrom(start Money) Percent {
	if start.value.IsZero() || m.value.IsZero() {
		return 0
	}
	ratio := m.value.Div(start.value)
	return Percent(ratio.Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// PercentOf returns which percentage of 'whole' this amount represents,
// zero when 'whole' is zero.
func (m Money) PercentOf(whole Money) Percent {
	if whole.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(whole.value).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(bytes []byte) error {
	m.cur = ""
	return m.value.UnmarshalJSON(bytes)
}
