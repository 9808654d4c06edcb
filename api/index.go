package handler

import (
	"net/http"
	"sync"

	"hostel/config"
	"hostel/di"
	"hostel/shared/logger"
	"hostel/shared/timezone"
	transport "hostel/transport/http"
)

var (
	once    sync.Once
	service *transport.HTTP
)

// Handler is the serverless entrypoint. The service graph is built on the first request
// and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		timezone.Init(cfg.App.Timezone)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
