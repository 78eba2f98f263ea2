package money

import (
	"github.com/shopspring/decimal"
)

// Money represents custom type for processing money.
type Money struct {
	decimal decimal.Decimal
}

// Zero represents zero (0) amount.
// Zero always equals to 0 and to 0.0...N.
var Zero = NewFromInt(0)

// NewFromString parses string and returns decimal amount.
// If s is empty, will be returned Zero decimal without throwing an error.
func NewFromString(s string) (Money, error) {
	if len(s) == 0 {
		return Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Money{d}, nil
}

// NewFromInt returns decimal from integer number.
func NewFromInt(i int64) Money {
	d := decimal.NewFromInt(i)
	return Money{d}
}

// NewFromFloat returns decimal from float number.
// Uses the shortest decimal representation of f, so 0.925 stays 0.925.
// f must be finite.
func NewFromFloat(f float64) Money {
	d := decimal.NewFromFloat(f)
	return Money{d}
}

// Mul multiplies left amount by right.
func (m *Money) Mul(right Money) {
	m.decimal = m.decimal.Mul(right.decimal)
}

// Round rounds amount to the given number of decimal places.
// Halves are rounded away from zero, which is half-up for positive amounts.
func (m *Money) Round(places int32) {
	m.decimal = m.decimal.Round(places)
}

// Equal checks if left amount equals to right.
func (m Money) Equal(right Money) bool {
	return m.decimal.Equal(right.decimal)
}

// IsPositive checks if amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.decimal.IsPositive()
}

// Digits returns the number of digits before and after the decimal point.
// Trailing zeros written in the source string are counted, so "1.50" has 2 fractional digits.
func (m Money) Digits() (integer, fractional int) {
	exponent := int(m.decimal.Exponent())
	numDigits := m.decimal.NumDigits()

	if exponent >= 0 {
		return numDigits + exponent, 0
	}

	return max(numDigits+exponent, 0), -exponent
}

// StringFixed returns string representation of amount with 2 places after digit.
// Resulting string will be rounded to nearest.
func (m Money) StringFixed() string {
	return m.decimal.StringFixed(2)
}

// String returns string representation of amount without any limitation.
func (m Money) String() string {
	return m.decimal.String()
}
