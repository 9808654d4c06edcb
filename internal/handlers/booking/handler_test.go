package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "hostel/infras/otel/mocks"
	bookingMocks "hostel/internal/domains/booking/mocks"
	"hostel/internal/domains/booking/model"
	"hostel/internal/handlers/booking"
	"hostel/shared/constant"
)

func newRouter(t *testing.T) (chi.Router, *bookingMocks.MockBookingService) {
	t.Helper()

	svc := bookingMocks.NewMockBookingService(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_Decisions(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		userID     string
		body       string
		setupMock  func(svc *bookingMocks.MockBookingService)
		wantStatus int
	}{
		{
			name:   "approve records the signed in admin",
			path:   "/bookings/b-1/approve",
			userID: "admin-1",
			body:   `{"notes":"welcome"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Approve(gomock.Any(), "b-1", "admin-1", "welcome").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "approve over api key records the system actor",
			path: "/bookings/b-1/approve",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Approve(gomock.Any(), "b-1", constant.ContextSystem, "").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "reject over api key records the system actor",
			path: "/bookings/b-1/reject",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Reject(gomock.Any(), "b-1", constant.ContextSystem, "").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "decided booking",
			path:   "/bookings/b-1/reject",
			userID: "admin-1",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Reject(gomock.Any(), "b-1", "admin-1", "").Return(model.ErrInvalidTransition)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			if tt.userID != "" {
				req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, tt.userID))
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
