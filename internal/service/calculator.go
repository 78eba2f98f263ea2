package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/VladPetriv/currency_converter/pkg/money"
)

// Limits for user amounts. Digits are expanded in full when the result is rendered, so "1e2000000" is refused.
const (
	maxIntegerDigits    = 15
	maxFractionalDigits = 18
)

// Reasons of InvalidAmountError which get their own user messages.
const (
	reasonAmountNotPositive = "amount must be positive"
	reasonAmountOutOfRange  = "amount is out of range"
)

// ParseAmount parses user input into a positive amount.
func ParseAmount(text string) (money.Money, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return money.Zero, &InvalidAmountError{Amount: text, Reason: "amount is empty"}
	}

	amount, err := money.NewFromString(text)
	if err != nil {
		return money.Zero, &InvalidAmountError{Amount: text, Reason: "amount is not a number"}
	}
	if !amount.IsPositive() {
		return money.Zero, &InvalidAmountError{Amount: text, Reason: reasonAmountNotPositive}
	}

	integer, fractional := amount.Digits()
	if integer > maxIntegerDigits || fractional > maxFractionalDigits {
		return money.Zero, &InvalidAmountError{Amount: text, Reason: reasonAmountOutOfRange}
	}

	return amount, nil
}

// convertAmount returns amount * rate rounded half-up to 2 decimal places.
func convertAmount(amount money.Money, rate float64) (money.Money, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return money.Zero, &InvalidAmountError{
			Amount: strconv.FormatFloat(rate, 'f', -1, 64),
			Reason: "exchange rate is not a finite number",
		}
	}

	converted := amount
	converted.Mul(money.NewFromFloat(rate))
	converted.Round(2)

	return converted, nil
}
