package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tvpalette/palette-api/internal/infrastructure/config"
	"github.com/tvpalette/palette-api/pkg/logger"
)

const serviceName = "palette-api"

func main() {
	bootLog := logger.New(logger.Options{Service: serviceName})
	cfg := config.Load(bootLog)

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: serviceName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer a.close()

	if err := a.run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		a.close()
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
