package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney_Mul(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc          string
		initialAmount Money
		right         Money
		expected      string
	}{
		{
			desc:          "Should multiply initial amount by 2",
			initialAmount: NewFromInt(10),
			right:         NewFromInt(2),
			expected:      "20",
		},
		{
			desc:          "Should keep exact decimal product",
			initialAmount: NewFromInt(10),
			right:         NewFromFloat(0.925),
			expected:      "9.25",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			tc.initialAmount.Mul(tc.right)
			assert.Equal(t, tc.expected, tc.initialAmount.String())
		})
	}
}

func TestMoney_Digits(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc               string
		amount             string
		expectedInteger    int
		expectedFractional int
	}{
		{
			desc:            "Should count integer digits",
			amount:          "123",
			expectedInteger: 3,
		},
		{
			desc:               "Should count fractional digits with trailing zeros",
			amount:             "12.50",
			expectedInteger:    2,
			expectedFractional: 2,
		},
		{
			desc:               "Should not count leading zero of fraction as integer digit",
			amount:             "0.005",
			expectedFractional: 3,
		},
		{
			desc:            "Should expand positive exponent",
			amount:          "1e20",
			expectedInteger: 21,
		},
		{
			desc:               "Should expand negative exponent",
			amount:             "1.5e-10",
			expectedFractional: 11,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			amount, err := NewFromString(tc.amount)
			assert.NoError(t, err)

			integer, fractional := amount.Digits()
			assert.Equal(t, tc.expectedInteger, integer)
			assert.Equal(t, tc.expectedFractional, fractional)
		})
	}
}

func TestMoney_Round(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		amount   string
		expected string
	}{
		{
			desc:     "Should round half up",
			amount:   "9.255",
			expected: "9.26",
		},
		{
			desc:     "Should round down below half",
			amount:   "9.2549",
			expected: "9.25",
		},
		{
			desc:     "Should keep exact value",
			amount:   "9.25",
			expected: "9.25",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			amount, err := NewFromString(tc.amount)
			assert.NoError(t, err)

			amount.Round(2)
			assert.Equal(t, tc.expected, amount.StringFixed())
		})
	}
}

func TestMoney_IsPositive(t *testing.T) {
	t.Parallel()

	assert.True(t, NewFromInt(1).IsPositive())
	assert.False(t, Zero.IsPositive())
	assert.False(t, NewFromInt(-5).IsPositive())
}

func TestMoney_StringFixed(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc          string
		initialAmount Money
		expected      string
	}{
		{
			desc:          "Should return string representation of float with 2 places after digit",
			initialAmount: NewFromFloat(10.12),
			expected:      "10.12",
		},
		{
			desc:          "Should return string representation of float with 5 places after digit with limitation to 2 decimal places",
			initialAmount: NewFromFloat(100.12345),
			expected:      "100.12",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.initialAmount.StringFixed())
		})
	}
}

func TestMoney_String(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc          string
		initialAmount Money
		expected      string
	}{
		{
			desc:          "Should return string representation of float with 2 places after digit",
			initialAmount: NewFromFloat(10.12),
			expected:      "10.12",
		},
		{
			desc:          "Should return string representation of float with 5 places after digit without any limitation",
			initialAmount: NewFromFloat(100.12345),
			expected:      "100.12345",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.initialAmount.String())
		})
	}
}
