package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	otelMocks "hostel/infras/otel/mocks"
	pgMocks "hostel/infras/postgres/mocks"
	"hostel/internal/domains/payment/model"
	"hostel/internal/domains/payment/repository"
	"hostel/shared/constant"
)

var (
	settleSQL = pgMocks.QueryLike(
		"UPDATE payments SET modified_at = $1, modified_by = $2, status = $3, verification_date = $4, verified = $5",
		"WHERE (payments.id = $6 AND payments.status != $7)",
	)
	paymentSQL = pgMocks.QueryLike("FROM payments", "WHERE (payments.id = $1)")
)

func TestStore_Settle(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		setupMock func(mock sqlmock.Sqlmock, status string)
		wantErr   error
	}{
		{
			name:   "pending payment is confirmed",
			status: model.StatusConfirmed,
			setupMock: func(mock sqlmock.Sqlmock, status string) {
				mock.ExpectExec(settleSQL).
					WithArgs(sqlmock.AnyArg(), constant.ContextSystem, status, sqlmock.AnyArg(), true, "p-1", status).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "pending payment is failed",
			status: model.StatusFailed,
			setupMock: func(mock sqlmock.Sqlmock, status string) {
				mock.ExpectExec(settleSQL).
					WithArgs(sqlmock.AnyArg(), constant.ContextSystem, status, sqlmock.AnyArg(), true, "p-1", status).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "already in the target state is a no-op",
			status: model.StatusConfirmed,
			setupMock: func(mock sqlmock.Sqlmock, status string) {
				mock.ExpectExec(settleSQL).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectPrepare(paymentSQL).ExpectQuery().
					WithArgs("p-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("p-1", status))
			},
		},
		{
			name:   "payment does not exist",
			status: model.StatusFailed,
			setupMock: func(mock sqlmock.Sqlmock, _ string) {
				mock.ExpectExec(settleSQL).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectPrepare(paymentSQL).ExpectQuery().
					WithArgs("p-1").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: model.ErrPaymentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := pgMocks.NewConnection(t)
			tx := pgMocks.BeginTx(t, conn, mock)
			tt.setupMock(mock, tt.status)

			repo := repository.New(conn, otelMocks.NewOtel())

			var err error
			if tt.status == model.StatusConfirmed {
				err = repo.MarkConfirmedTx(context.Background(), tx, "p-1")
			} else {
				err = repo.MarkFailedTx(context.Background(), tx, "p-1")
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}
