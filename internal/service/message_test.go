package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		err      error
		expected string
	}{
		{
			desc:     "non-positive amount",
			err:      &InvalidAmountError{Amount: "0", Reason: "amount must be positive"},
			expected: "Amount must be positive.",
		},
		{
			desc:     "amount out of range",
			err:      &InvalidAmountError{Amount: "1e2000000", Reason: reasonAmountOutOfRange},
			expected: "Amount is too large or has too many decimal places.",
		},
		{
			desc:     "non-numeric amount",
			err:      &InvalidAmountError{Amount: "abc", Reason: "amount is not a number"},
			expected: "Invalid amount.",
		},
		{
			desc:     "wrapped unknown currency",
			err:      fmt.Errorf("get rate: %w", &UnknownCurrencyError{Currency: "XYZ"}),
			expected: "Currency code 'XYZ' is not supported.",
		},
		{
			desc:     "invalid currency code",
			err:      &InvalidCurrencyError{Currency: "US"},
			expected: "Invalid currency code 'US'. Use 3-letter codes like USD.",
		},
		{
			desc:     "api request error",
			err:      &APIRequestError{StatusCode: 404},
			expected: "Exchange rate service request failed (status 404).",
		},
		{
			desc:     "api logic error",
			err:      &APILogicError{ErrorType: "invalid-key"},
			expected: "Error fetching rate, please try again later.",
		},
		{
			desc:     "malformed response",
			err:      &MalformedResponseError{Reason: "no rates"},
			expected: "Error fetching rate, please try again later.",
		},
		{
			desc:     "configuration error",
			err:      &ConfigurationError{Setting: "api key", Reason: "missing"},
			expected: "Converter is not configured.",
		},
		{
			desc:     "unknown error",
			err:      errors.New("boom"),
			expected: "Something went wrong, please try again later.",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, UserMessage(tc.err))
		})
	}
}

func TestCurrenciesMessage(t *testing.T) {
	t.Parallel()

	actual := currenciesMessage([]string{"AUD", "EUR", "GBP", "USD", "JPY"}, 2)
	assert.Equal(t, "Supported currencies:\nAUD EUR\nGBP USD\nJPY", actual)
}
