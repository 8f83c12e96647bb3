package types

import "github.com/shopspring/decimal"

// Money is a fixed-point monetary amount. It wraps decimal.Decimal so that
// share arithmetic never accumulates binary floating-point drift, and it
// marshals as a bare JSON number because the backend models amounts as
// decimals, not strings.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal value.
func NewMoney(d decimal.Decimal) Money { return Money{d} }

// MoneyFromInt builds an amount from whole units.
func MoneyFromInt(v int64) Money { return Money{decimal.NewFromInt(v)} }

// MoneyFromFloat builds an amount from a float64, e.g. user input already
// parsed by the embedding application.
func MoneyFromFloat(v float64) Money { return Money{decimal.NewFromFloat(v)} }

// MoneyFromString parses a decimal string such as "10.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// MarshalJSON emits the amount as an unquoted number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// UnmarshalJSON accepts both quoted and unquoted numbers; decimal.Decimal
// already handles either form.
func (m *Money) UnmarshalJSON(b []byte) error {
	return m.Decimal.UnmarshalJSON(b)
}
