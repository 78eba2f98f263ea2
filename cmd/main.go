package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/VladPetriv/currency_converter/config"
	"github.com/VladPetriv/currency_converter/internal/app"
	"github.com/VladPetriv/currency_converter/pkg/logger"
)

func main() {
	cfg := config.Get()

	logger, err := logger.New(logger.Options{
		LogLevel:        cfg.Logger.LogLevel,
		LogFile:         cfg.Logger.LogFilename,
		PrettyLogOutput: cfg.Logger.PrettyLogOutput,
		MaxFileSizeMB:   cfg.Logger.MaxFileSizeMB,
	})
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = app.Run(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("run app")
	}
}
