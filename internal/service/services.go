package service

import (
	"context"

	"github.com/VladPetriv/currency_converter/internal/models"
)

// Services contains all services.
type Services struct {
	Converter ConverterService
	Event     EventService
}

// ConverterService provides functionality for converting amounts between currencies.
type ConverterService interface {
	// Convert validates the input, fetches the exchange rate and calculates the converted amount.
	Convert(ctx context.Context, opts ConvertOptions) (*models.ConversionResult, error)
	// AvailableCurrencies returns sorted ISO 4217 codes which can be offered to users.
	AvailableCurrencies() []string
}

// ConvertOptions represents raw user input for a conversion.
type ConvertOptions struct {
	FromCurrency string
	ToCurrency   string
	Amount       string
}

// EventService provides functionality for receiving updates from messenger and reacting on them.
type EventService interface {
	// Listen receives updates from messenger until ctx is done.
	Listen(ctx context.Context)
}
