package main

import (
	"hostel/config"
	"hostel/di"
	"hostel/shared/logger"
	"hostel/shared/timezone"
)

// @title Hostel Booking API
// @version 1.0
// @description Room booking, payment verification and student administration for campus hostels.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	http := di.InitializeService()
	http.Serve()
}
