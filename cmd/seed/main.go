package main

import (
	"context"

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

	res, err := di.InitializeSeeder().Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	log.Info().
		Int("rooms_created", res.RoomsCreated).
		Int("rooms_skipped", res.RoomsSkipped).
		Bool("admin_created", res.AdminCreated).
		Msg("Seeding completed")
}
