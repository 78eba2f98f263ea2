package httpapi

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/VladPetriv/currency_converter/internal/service"
	"github.com/VladPetriv/currency_converter/pkg/errs"
	"github.com/VladPetriv/currency_converter/pkg/logger"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

const (
	defaultFromCurrency = "USD"
	defaultToCurrency   = "EUR"
)

type server struct {
	logger    *logger.Logger
	converter service.ConverterService
	address   string
	srv       *fasthttp.Server
}

// Options represents options for creating new instance of the conversion HTTP server.
type Options struct {
	Address   string
	Logger    *logger.Logger
	Converter service.ConverterService
}

// New creates a new conversion HTTP server.
func New(opts Options) *server {
	s := &server{
		logger:    opts.Logger,
		converter: opts.Converter,
		address:   opts.Address,
	}

	r := router.New()
	r.GET("/convert", s.handleConvert)
	r.GET("/currencies", s.handleCurrencies)
	r.GET("/health", s.handleHealth)

	s.srv = &fasthttp.Server{
		Handler:      r.Handler,
		Name:         "currency-converter",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

// Handler returns the root request handler.
func (s *server) Handler() fasthttp.RequestHandler {
	return s.srv.Handler
}

// ListenAndServe serves requests until Shutdown is called.
func (s *server) ListenAndServe() error {
	return s.srv.ListenAndServe(s.address)
}

// Shutdown gracefully stops the server waiting for active requests.
func (s *server) Shutdown() error {
	return s.srv.Shutdown()
}

type convertResponse struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    string  `json:"amount"`
	Rate      float64 `json:"rate"`
	Converted string  `json:"converted"`
	Text      string  `json:"text"`
}

type currenciesResponse struct {
	Currencies []string `json:"currencies"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleConvert(ctx *fasthttp.RequestCtx) {
	logger := s.logger.With().Str("name", "server.handleConvert").Logger()

	args := ctx.QueryArgs()
	opts := service.ConvertOptions{
		FromCurrency: queryArgOrDefault(args, "from", defaultFromCurrency),
		ToCurrency:   queryArgOrDefault(args, "to", defaultToCurrency),
		Amount:       string(args.Peek("amount")),
	}
	logger.Debug().Any("opts", opts).Msg("got args")

	result, err := s.converter.Convert(ctx, opts)
	if err != nil {
		if !errs.IsExpected(err) {
			logger.Error().Err(err).Msg("convert")
		}

		s.writeJSON(ctx, statusCode(err), errorResponse{Error: service.UserMessage(err)})
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, convertResponse{
		From:      result.Request.FromCurrency,
		To:        result.Request.ToCurrency,
		Amount:    result.Request.Amount.StringFixed(),
		Rate:      result.Rate,
		Converted: result.ConvertedAmount.StringFixed(),
		Text:      result.String(),
	})
}

func (s *server) handleCurrencies(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusOK, currenciesResponse{Currencies: s.converter.AvailableCurrencies()})
}

func (s *server) handleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString("ok")
}

func (s *server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)

	err := json.NewEncoder(ctx).Encode(body)
	if err != nil {
		s.logger.Error().Err(err).Msg("encode response body")
	}
}

func queryArgOrDefault(args *fasthttp.Args, key, defaultValue string) string {
	value := string(args.Peek(key))
	if value == "" {
		return defaultValue
	}

	return value
}

func statusCode(err error) int {
	var (
		invalidAmountErr   *service.InvalidAmountError
		invalidCurrencyErr *service.InvalidCurrencyError
		unknownCurrencyErr *service.UnknownCurrencyError
		apiRequestErr      *service.APIRequestError
		apiLogicErr        *service.APILogicError
		malformedErr       *service.MalformedResponseError
	)

	switch {
	case errors.As(err, &invalidAmountErr),
		errors.As(err, &invalidCurrencyErr),
		errors.As(err, &unknownCurrencyErr):
		return fasthttp.StatusBadRequest
	case errors.As(err, &apiRequestErr),
		errors.As(err, &apiLogicErr),
		errors.As(err, &malformedErr):
		return fasthttp.StatusBadGateway
	default:
		return fasthttp.StatusInternalServerError
	}
}
