package swr

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a currency, such as a portfolio's terminal value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns an amount of currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// MF is M for a float, as returned by the simulator.
func MF(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted the way its currency is usually written, rounded
// to the currency's minor unit.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string            { return m.cur }
func (m Money) Value() decimal.Decimal      { return m.value }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) LessThan(n Money) bool       { return m.value.LessThan(n.value) }
func (m Money) Mul(f decimal.Decimal) Money { return Money{value: m.value.Mul(f), cur: m.cur} }
