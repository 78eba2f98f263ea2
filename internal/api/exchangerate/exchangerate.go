package exchangerate

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/VladPetriv/currency_converter/internal/service"
	"github.com/VladPetriv/currency_converter/pkg/logger"
	"resty.dev/v3"
)

// placeholderAPIKey is the value shipped in sample configs instead of a real key.
const placeholderAPIKey = "YOUR_API_KEY_HERE"

const defaultTimeout = 10 * time.Second

type exchangeRateAPI struct {
	httpClient *resty.Client
	apiKey     string
}

var _ service.RateProvider = (*exchangeRateAPI)(nil)

// Options represents options that required for creating new instance of exchange rate API.
type Options struct {
	// APIURL represents versioned API root, e.g. https://v6.exchangerate-api.com/v6
	APIURL string
	APIKey string
	// Timeout limits a single request. Defaults to 10s.
	Timeout time.Duration
	Logger  *logger.Logger
}

// New creates a new instance of exchange rate API.
func New(opts Options) (*exchangeRateAPI, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" || apiKey == placeholderAPIKey {
		return nil, &service.ConfigurationError{
			Setting: "exchange rate api key",
			Reason:  "key is not set, get a free one at https://www.exchangerate-api.com",
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(opts.APIURL, "/")).
		SetTimeout(timeout)

	if opts.Logger != nil {
		httpClient.SetLogger(restyLogger{opts.Logger})
	}

	return &exchangeRateAPI{
		httpClient: httpClient,
		apiKey:     apiKey,
	}, nil
}

// Fetch returns raw body of the latest rates for baseCurrency. It makes exactly one request.
func (e *exchangeRateAPI) Fetch(ctx context.Context, baseCurrency string) (string, error) {
	response, err := e.httpClient.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"apiKey":       e.apiKey,
			"baseCurrency": baseCurrency,
		}).
		Get("/{apiKey}/latest/{baseCurrency}")
	if err != nil {
		return "", fmt.Errorf("send get latest rates request: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return "", &service.APIRequestError{
			StatusCode: response.StatusCode(),
			Body:       response.String(),
		}
	}

	return response.String(), nil
}

func (e *exchangeRateAPI) GetExchangeRate(ctx context.Context, baseCurrency, targetCurrency string) (float64, error) {
	body, err := e.Fetch(ctx, baseCurrency)
	if err != nil {
		return 0, err
	}

	return ExtractRate(body, targetCurrency)
}

type restyLogger struct {
	logger *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.logger.Error().Str("name", "exchangerate.httpClient").Msgf(format, v...)
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.logger.Warn().Str("name", "exchangerate.httpClient").Msgf(format, v...)
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.logger.Debug().Str("name", "exchangerate.httpClient").Msgf(format, v...)
}
