package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		text     string
		expected command
	}{
		{
			desc:     "start command",
			text:     "/start",
			expected: command{kind: commandHelp},
		},
		{
			desc:     "currencies command with bot name",
			text:     "/currencies@converter_bot",
			expected: command{kind: commandCurrencies},
		},
		{
			desc: "convert command with all arguments",
			text: "/convert 10 usd gbp",
			expected: command{kind: commandConvert, opts: ConvertOptions{
				Amount: "10", FromCurrency: "usd", ToCurrency: "gbp",
			}},
		},
		{
			desc: "convert command uses default currencies",
			text: "/convert 10",
			expected: command{kind: commandConvert, opts: ConvertOptions{
				Amount: "10", FromCurrency: "USD", ToCurrency: "EUR",
			}},
		},
		{
			desc: "bare conversion with separator word",
			text: "2.5 GBP to JPY",
			expected: command{kind: commandConvert, opts: ConvertOptions{
				Amount: "2.5", FromCurrency: "GBP", ToCurrency: "JPY",
			}},
		},
		{
			desc: "bare conversion with negative amount is still a conversion",
			text: "-5 USD EUR",
			expected: command{kind: commandConvert, opts: ConvertOptions{
				Amount: "-5", FromCurrency: "USD", ToCurrency: "EUR",
			}},
		},
		{
			desc: "convert command with non-numeric amount",
			text: "/convert abc usd eur",
			expected: command{kind: commandConvert, opts: ConvertOptions{
				Amount: "abc", FromCurrency: "usd", ToCurrency: "eur",
			}},
		},
		{
			desc:     "convert command without arguments",
			text:     "/convert",
			expected: command{kind: commandUnknown},
		},
		{
			desc:     "too many arguments",
			text:     "10 USD EUR GBP",
			expected: command{kind: commandUnknown},
		},
		{
			desc:     "plain text",
			text:     "hello there",
			expected: command{kind: commandUnknown},
		},
		{
			desc:     "mention of bot name only",
			text:     "@converter_bot",
			expected: command{kind: commandUnknown},
		},
		{
			desc:     "text starting with mention",
			text:     "@converter_bot hi",
			expected: command{kind: commandUnknown},
		},
		{
			desc:     "empty text",
			text:     "   ",
			expected: command{kind: commandUnknown},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, parseCommand(tc.text))
		})
	}
}
