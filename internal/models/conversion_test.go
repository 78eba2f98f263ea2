package models_test

import (
	"testing"

	"github.com/VladPetriv/currency_converter/internal/models"
	"github.com/VladPetriv/currency_converter/pkg/money"
	"github.com/stretchr/testify/assert"
)

func TestConversionResult_String(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		result   models.ConversionResult
		expected string
	}{
		{
			desc: "positive: amounts rendered with two decimal places",
			result: models.ConversionResult{
				Request: models.ConversionRequest{
					FromCurrency: "USD",
					ToCurrency:   "EUR",
					Amount:       money.NewFromInt(10),
				},
				Rate:            0.925,
				ConvertedAmount: money.NewFromFloat(9.25),
			},
			expected: "10.00 USD = 9.25 EUR",
		},
		{
			desc: "positive: fractional amount",
			result: models.ConversionResult{
				Request: models.ConversionRequest{
					FromCurrency: "GBP",
					ToCurrency:   "JPY",
					Amount:       money.NewFromFloat(1.5),
				},
				Rate:            190.1234,
				ConvertedAmount: money.NewFromFloat(285.19),
			},
			expected: "1.50 GBP = 285.19 JPY",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.result.String())
		})
	}
}
