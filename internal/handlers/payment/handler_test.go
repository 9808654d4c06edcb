package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "hostel/infras/otel/mocks"
	bookingMocks "hostel/internal/domains/booking/mocks"
	paymentModel "hostel/internal/domains/payment/model"
	"hostel/internal/handlers/payment"
	"hostel/shared/constant"
)

func TestHandler_PaymentActions(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		userID     string
		setupMock  func(bookings *bookingMocks.MockBookingService)
		wantStatus int
	}{
		{
			name:   "verify by admin",
			path:   "/payments/p-1/verify",
			userID: "admin-1",
			setupMock: func(bookings *bookingMocks.MockBookingService) {
				bookings.EXPECT().VerifyPayment(gomock.Any(), "p-1", "admin-1").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "verify over api key records the system actor",
			path: "/payments/p-1/verify",
			setupMock: func(bookings *bookingMocks.MockBookingService) {
				bookings.EXPECT().VerifyPayment(gomock.Any(), "p-1", constant.ContextSystem).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "reject over api key records the system actor",
			path: "/payments/p-1/reject",
			setupMock: func(bookings *bookingMocks.MockBookingService) {
				bookings.EXPECT().RejectPayment(gomock.Any(), "p-1", constant.ContextSystem).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "settled payment",
			path:   "/payments/p-1/reject",
			userID: "admin-1",
			setupMock: func(bookings *bookingMocks.MockBookingService) {
				bookings.EXPECT().RejectPayment(gomock.Any(), "p-1", "admin-1").Return(paymentModel.ErrPaymentSettled)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := bookingMocks.NewMockBookingService(gomock.NewController(t))
			tt.setupMock(bookings)

			handler := payment.New(nil, bookings, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.userID != "" {
				req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, tt.userID))
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
