package econ

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a given currency, used to present cash values.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the money value v in currency cur (an ISO 4217 code).
func M[T float64 | int | int64 | decimal.Decimal](v T, cur string) Money {
	switch v := any(v).(type) {
	case decimal.Decimal:
		return Money{value: v, cur: cur}
	case float64:
		return Money{value: decimal.NewFromFloat(v), cur: cur}
	case int:
		return Money{value: decimal.NewFromInt(int64(v)), cur: cur}
	case int64:
		return Money{value: decimal.NewFromInt(v), cur: cur}
	}
	panic("unsupported type")
}

// currency returns the money's currency, never nil.
func (m Money) currency() *money.Currency {
	// unknown codes get a generic definition from the constructor.
	return money.New(0, m.cur).Currency()
}

// String formats the value with the currency's fraction digits: "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	return cur.Formatter().Format(m.value.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// Whole formats the value rounded to the major unit, thousands grouped:
// "$1,235".
func (m Money) Whole() string {
	cur := m.currency()
	f := money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(m.value.Round(0).IntPart())
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
