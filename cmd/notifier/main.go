package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"hostel/config"
	"hostel/di"
	"hostel/shared/logger"
	"hostel/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeNotifier()

	log.Info().Str("driver", cfg.Notification.Driver).Str("topic", cfg.Notification.Topic).Msg("Starting notification worker.")

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Notification worker stopped")
	}

	log.Info().Msg("Notification worker stopped.")
}
