package service

import (
	"fmt"
)

// ConfigurationError is returned when a required setting is missing. It's fatal and never retried.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration of %s: %s", e.Setting, e.Reason)
}

// APIRequestError is returned when exchange rate API responds with non-200 status code.
type APIRequestError struct {
	StatusCode int
	Body       string
}

func (e *APIRequestError) Error() string {
	return fmt.Sprintf("exchange rate api request failed(statusCode: %d, body: %s)", e.StatusCode, e.Body)
}

// APILogicError is returned when exchange rate API reports an error inside a successful response.
type APILogicError struct {
	ErrorType string
	Body      string
}

func (e *APILogicError) Error() string {
	if e.ErrorType != "" {
		return fmt.Sprintf("exchange rate api returned an error(type: %s): %s", e.ErrorType, e.Body)
	}

	return fmt.Sprintf("exchange rate api returned an error: %s", e.Body)
}

// MalformedResponseError is returned when exchange rate API response has unexpected shape.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed exchange rate api response: %s", e.Reason)
}

// UnknownCurrencyError is returned when target currency is absent from the rates.
type UnknownCurrencyError struct {
	Currency string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("currency code '%s' not found in exchange rates", e.Currency)
}

// Expected reports that unknown currency is caused by user input.
func (e *UnknownCurrencyError) Expected() bool { return true }

// InvalidAmountError is returned for non-positive, non-numeric or non-finite amounts and rates.
type InvalidAmountError struct {
	Amount string
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %s", e.Amount, e.Reason)
}

// Expected reports that invalid amount is caused by user input.
func (e *InvalidAmountError) Expected() bool { return true }

// InvalidCurrencyError is returned when currency code isn't a 3-letter code.
type InvalidCurrencyError struct {
	Currency string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("invalid currency code %q", e.Currency)
}

// Expected reports that invalid currency code is caused by user input.
func (e *InvalidCurrencyError) Expected() bool { return true }
