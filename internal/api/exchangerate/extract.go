package exchangerate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/VladPetriv/currency_converter/internal/service"
)

// ExtractRate decodes body of the latest rates response and returns rate for targetCurrency.
func ExtractRate(body, targetCurrency string) (float64, error) {
	var response latestRatesResponse
	err := json.Unmarshal([]byte(body), &response)
	if err != nil {
		return 0, &service.MalformedResponseError{Reason: fmt.Sprintf("decode response: %v", err)}
	}

	if response.ConversionRates == nil {
		if response.Result == resultError {
			return 0, &service.APILogicError{ErrorType: response.ErrorType, Body: body}
		}

		return 0, &service.MalformedResponseError{Reason: "conversion_rates not found"}
	}

	rate, ok := response.ConversionRates[targetCurrency]
	if !ok {
		return 0, &service.UnknownCurrencyError{Currency: targetCurrency}
	}
	if rate == nil {
		return 0, &service.MalformedResponseError{Reason: fmt.Sprintf("rate for %s is null", targetCurrency)}
	}

	return *rate, nil
}

// Markers of the response shape which ScanRate relies on.
const (
	ratesMarker = `"conversion_rates":{`
	errorMarker = `"result":"error"`
)

// ScanRate finds rate for targetCurrency by searching literal markers in body, without decoding it.
// The first `"<CODE>":` after the rates marker wins, and the value ends at the nearest ',' or '}'.
// Produces the same results and errors as ExtractRate for well-formed responses.
func ScanRate(body, targetCurrency string) (float64, error) {
	ratesStart := strings.Index(body, ratesMarker)
	if ratesStart == -1 {
		if strings.Contains(body, errorMarker) {
			return 0, &service.APILogicError{Body: body}
		}

		return 0, &service.MalformedResponseError{Reason: "conversion_rates not found"}
	}

	currencyMarker := `"` + targetCurrency + `":`
	currencyStart := strings.Index(body[ratesStart:], currencyMarker)
	if currencyStart == -1 {
		return 0, &service.UnknownCurrencyError{Currency: targetCurrency}
	}

	valueStart := ratesStart + currencyStart + len(currencyMarker)
	rest := body[valueStart:]

	valueEnd := -1
	commaIndex := strings.IndexByte(rest, ',')
	braceIndex := strings.IndexByte(rest, '}')
	switch {
	case commaIndex != -1 && braceIndex != -1:
		valueEnd = min(commaIndex, braceIndex)
	case commaIndex != -1:
		valueEnd = commaIndex
	case braceIndex != -1:
		valueEnd = braceIndex
	default:
		return 0, &service.MalformedResponseError{Reason: fmt.Sprintf("could not find end of rate value for %s", targetCurrency)}
	}

	rateText := strings.TrimSpace(rest[:valueEnd])
	rate, err := strconv.ParseFloat(rateText, 64)
	if err != nil {
		return 0, &service.MalformedResponseError{Reason: fmt.Sprintf("parse rate value %q for %s", rateText, targetCurrency)}
	}

	return rate, nil
}
