package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/VladPetriv/currency_converter/internal/models"
	"github.com/VladPetriv/currency_converter/pkg/errs"
	"github.com/VladPetriv/currency_converter/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type converterService struct {
	logger   *logger.Logger
	apis     APIs
	validate *validator.Validate

	currenciesOnce sync.Once
	currencies     []string
}

var _ ConverterService = (*converterService)(nil)

// NewConverter returns new instance of converter service.
func NewConverter(logger *logger.Logger, apis APIs) *converterService {
	return &converterService{
		logger:   logger,
		apis:     apis,
		validate: validator.New(),
	}
}

func (c *converterService) Convert(ctx context.Context, opts ConvertOptions) (*models.ConversionResult, error) {
	logger := c.logger.With().Str("name", "converterService.Convert").Logger()
	logger.Debug().Any("opts", opts).Msg("got args")

	amount, err := ParseAmount(opts.Amount)
	if err != nil {
		logger.Info().Err(err).Msg("invalid amount")
		return nil, err
	}

	request := models.ConversionRequest{
		ID:           uuid.NewString(),
		FromCurrency: NormalizeCurrency(opts.FromCurrency),
		ToCurrency:   NormalizeCurrency(opts.ToCurrency),
		Amount:       amount,
	}
	logger = logger.With().Str("requestID", request.ID).Logger()

	err = c.validateRequest(request)
	if err != nil {
		logger.Info().Err(err).Msg("invalid conversion request")
		return nil, err
	}

	rate, err := c.apis.RateProvider.GetExchangeRate(ctx, request.FromCurrency, request.ToCurrency)
	if err != nil {
		if errs.IsExpected(err) {
			logger.Info().Msg(err.Error())
			return nil, err
		}

		logger.Error().Err(err).Msg("get exchange rate through rate provider")
		return nil, fmt.Errorf("get exchange rate through rate provider: %w", err)
	}
	logger.Debug().Str("amount", request.Amount.String()).Float64("rate", rate).Msg("got exchange rate")

	convertedAmount, err := convertAmount(request.Amount, rate)
	if err != nil {
		logger.Error().Err(err).Msg("convert amount")
		return nil, fmt.Errorf("convert amount: %w", err)
	}

	return &models.ConversionResult{
		Request:         request,
		Rate:            rate,
		ConvertedAmount: convertedAmount,
	}, nil
}

func (c *converterService) validateRequest(request models.ConversionRequest) error {
	err := c.validate.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		currency, _ := validationErrs[0].Value().(string)
		return &InvalidCurrencyError{Currency: currency}
	}

	return fmt.Errorf("validate conversion request: %w", err)
}

// NormalizeCurrency trims and upper-cases currency code. It doesn't check the code against any list.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
