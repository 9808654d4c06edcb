package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hostel/infras/otel/mocks"
	paymentMocks "hostel/internal/domains/payment/mocks"
	"hostel/internal/domains/payment/model"
	"hostel/internal/domains/payment/model/dto"
	"hostel/internal/domains/payment/service"
	gDto "hostel/shared/dto"
)

func TestPaymentService_GetAll(t *testing.T) {
	room := "r-1"

	tests := []struct {
		name      string
		filter    dto.PaymentFilter
		wantWhere string
		countErr  error
		wantErr   bool
	}{
		{
			name:      "filters by status",
			filter:    dto.PaymentFilter{Status: model.StatusPending},
			wantWhere: "(payments.status = :status)",
		},
		{
			name:      "no filter",
			wantWhere: "",
		},
		{
			name:     "count fails",
			countErr: errors.New("connection reset"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := paymentMocks.NewMockPayment(ctrl)
			svc := service.New(repo, otelMocks.NewOtel())

			repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				where, _ := filter.GetWhereClause()
				assert.Equal(t, tt.wantWhere, where)

				return 1, tt.countErr
			})

			if !tt.wantErr {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Payment{{
					ID:     "p-1",
					RoomID: &room,
					Amount: decimal.NewFromInt(18000),
					Status: model.StatusPending,
				}}, nil)
			}

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, tt.filter)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Len(t, res.Payments, 1)
			assert.Equal(t, "r-1", *res.Payments[0].RoomID)
			assert.Nil(t, res.Payments[0].VerificationDate)
		})
	}
}

func TestPaymentService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := paymentMocks.NewMockPayment(ctrl)
	svc := service.New(repo, otelMocks.NewOtel())

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)

	_, err := svc.Get(context.Background(), "p-404")

	assert.ErrorIs(t, err, model.ErrPaymentNotFound)
}
