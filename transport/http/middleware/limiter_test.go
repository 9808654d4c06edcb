package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostel/config"
	otelMocks "hostel/infras/otel/mocks"
	cacheMocks "hostel/shared/cache/mocks"
	"hostel/shared/constant"
	"hostel/transport/http/middleware"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestAppMiddleware_RateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		setupMock     func(cache *cacheMocks.MockRedisCache)
		wantStatus    int
		wantRemaining string
	}{
		{
			name:       "disabled passes through",
			setupMock:  func(_ *cacheMocks.MockRedisCache) {},
			wantStatus: http.StatusOK,
		},
		{
			name:   "within window",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.7:curl/8.0", 60).Return(int64(1), nil)
			},
			wantStatus:    http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:   "over the limit",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)
			},
			wantStatus:    http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:   "cache unavailable lets request through",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("connection refused"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(cache)

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(tt.enable), cache)
			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms/available", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.7, 172.16.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "curl/8.0")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
