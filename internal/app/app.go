package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/VladPetriv/currency_converter/config"
	"github.com/VladPetriv/currency_converter/internal/api/exchangerate"
	"github.com/VladPetriv/currency_converter/internal/api/httpapi"
	"github.com/VladPetriv/currency_converter/internal/api/telegram"
	"github.com/VladPetriv/currency_converter/internal/service"
	"github.com/VladPetriv/currency_converter/pkg/logger"
)

var errNoFrontEnds = errors.New("both http and telegram front ends are disabled")

// Run is used to start the application. It blocks until ctx is done and everything is stopped.
// Returns an error when the application can't start or one of its servers fails.
func Run(ctx context.Context, cfg *config.Config, logger *logger.Logger) error {
	rateProvider, err := exchangerate.New(exchangerate.Options{
		APIURL:  cfg.ExchangeRate.APIURL,
		APIKey:  cfg.ExchangeRate.APIKey,
		Timeout: cfg.ExchangeRate.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("create exchange rate api: %w", err)
	}

	converter := service.NewConverter(logger, service.APIs{RateProvider: rateProvider})

	if !cfg.HTTP.Enabled && !cfg.Telegram.Enabled {
		return errNoFrontEnds
	}

	var messenger service.Messenger
	if cfg.Telegram.Enabled {
		messenger, err = telegram.New(telegram.Options{
			Token:         cfg.Telegram.BotToken,
			UpdatesType:   cfg.Telegram.UpdatesType,
			ServerAddress: cfg.Telegram.ServerAddress,
			WebhookURL:    cfg.Telegram.WebhookURL,
		})
		if err != nil {
			return fmt.Errorf("create telegram messenger: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		serveErr error
	)

	var httpServer interface{ Shutdown() error }
	if cfg.HTTP.Enabled {
		srv := httpapi.New(httpapi.Options{
			Address:   cfg.HTTP.Address,
			Logger:    logger,
			Converter: converter,
		})
		httpServer = srv

		wg.Add(1)
		go func() {
			defer wg.Done()

			logger.Info().Str("address", cfg.HTTP.Address).Msg("start http server")
			err := srv.ListenAndServe()
			if err != nil {
				logger.Error().Err(err).Msg("listen and serve http")
				// Read only after wg.Wait.
				serveErr = fmt.Errorf("listen and serve http: %w", err)
				cancel()
			}
		}()
	}

	if messenger != nil {
		events := service.NewEvent(&service.EventOptions{
			Logger:       logger,
			Messenger:    messenger,
			Converter:    converter,
			WorkersCount: cfg.Worker.Count,
			QueueSize:    cfg.Worker.QueueSize,
		})

		wg.Add(1)
		go func() {
			defer wg.Done()

			logger.Info().Str("updatesType", cfg.Telegram.UpdatesType).Msg("start listening for telegram updates")
			events.Listen(ctx)
		}()
	}

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	if messenger != nil {
		err := messenger.Close()
		if err != nil {
			logger.Error().Err(err).Msg("close messenger")
		}
	}
	if httpServer != nil {
		err := httpServer.Shutdown()
		if err != nil {
			logger.Error().Err(err).Msg("shutdown http server")
		}
	}

	wg.Wait()
	logger.Info().Msg("stopped")

	return serveErr
}
