package models

import (
	"fmt"

	"github.com/VladPetriv/currency_converter/pkg/money"
)

// ConversionRequest represents a single request to convert an amount between two currencies.
type ConversionRequest struct {
	ID           string      `validate:"required"`
	FromCurrency string      `validate:"required,len=3,alpha,uppercase"`
	ToCurrency   string      `validate:"required,len=3,alpha,uppercase"`
	Amount       money.Money `validate:"-"`
}

// ConversionResult represents the outcome of a conversion. It's never stored.
type ConversionResult struct {
	Request         ConversionRequest
	Rate            float64
	ConvertedAmount money.Money
}

// String returns the result in "10.00 USD = 9.25 EUR" format.
func (c ConversionResult) String() string {
	return fmt.Sprintf(
		"%s %s = %s %s",
		c.Request.Amount.StringFixed(), c.Request.FromCurrency,
		c.ConvertedAmount.StringFixed(), c.Request.ToCurrency,
	)
}
