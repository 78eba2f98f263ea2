package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Texts which are sent to users.
const (
	helpMessage = `Send an amount and two currency codes to convert, for example:
/convert 10 USD EUR
10 usd eur
Currency codes default to USD and EUR when omitted.
/currencies shows all supported currency codes.`
	convertingMessage          = "Converting..."
	conversionInProgressMessage = "A conversion is already in progress, please wait for the result."
	busyMessage                = "Too many conversions right now, please try again in a moment."
	unknownCommandMessage      = "Unknown command."
)

var defaultKeyboardRows = []KeyboardRow{
	{Buttons: []string{botConvertCommand + " 1 " + defaultFromCurrency + " " + defaultToCurrency, botCurrenciesCommand}},
	{Buttons: []string{botHelpCommand}},
}

// UserMessage returns a short message about err which can be shown to users.
func UserMessage(err error) string {
	var (
		invalidAmountErr   *InvalidAmountError
		invalidCurrencyErr *InvalidCurrencyError
		unknownCurrencyErr *UnknownCurrencyError
		apiRequestErr      *APIRequestError
		apiLogicErr        *APILogicError
		malformedErr       *MalformedResponseError
		configurationErr   *ConfigurationError
	)

	switch {
	case errors.As(err, &invalidAmountErr):
		switch invalidAmountErr.Reason {
		case reasonAmountNotPositive:
			return "Amount must be positive."
		case reasonAmountOutOfRange:
			return "Amount is too large or has too many decimal places."
		default:
			return "Invalid amount."
		}
	case errors.As(err, &invalidCurrencyErr):
		return fmt.Sprintf("Invalid currency code '%s'. Use 3-letter codes like USD.", invalidCurrencyErr.Currency)
	case errors.As(err, &unknownCurrencyErr):
		return fmt.Sprintf("Currency code '%s' is not supported.", unknownCurrencyErr.Currency)
	case errors.As(err, &apiRequestErr):
		return fmt.Sprintf("Exchange rate service request failed (status %d).", apiRequestErr.StatusCode)
	case errors.As(err, &apiLogicErr), errors.As(err, &malformedErr):
		return "Error fetching rate, please try again later."
	case errors.As(err, &configurationErr):
		return "Converter is not configured."
	default:
		return "Something went wrong, please try again later."
	}
}

// currenciesMessage renders codes as lines of codesPerLine entries.
func currenciesMessage(codes []string, codesPerLine int) string {
	lines := lo.Map(lo.Chunk(codes, codesPerLine), func(chunk []string, _ int) string {
		return strings.Join(chunk, " ")
	})

	return "Supported currencies:\n" + strings.Join(lines, "\n")
}
