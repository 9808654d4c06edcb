package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "hostel/infras/otel/mocks"
	pgMocks "hostel/infras/postgres/mocks"
	"hostel/internal/domains/booking/model"
	"hostel/internal/domains/booking/repository"
	gDto "hostel/shared/dto"
)

var (
	transitionSQL = pgMocks.QueryLike(
		"UPDATE booking_requests SET admin_notes = $1, modified_at = $2, modified_by = $3, processed_at = $4, processed_by = $5, status = $6",
		"WHERE (booking_requests.id = $7 AND booking_requests.status = $8)",
	)
	bookingSQL = pgMocks.QueryLike("FROM booking_requests", "WHERE (booking_requests.id = $1)")
)

func TestBooking_TransitionTx(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "pending booking is approved",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(transitionSQL).
					WithArgs("welcome", sqlmock.AnyArg(), "admin-1", sqlmock.AnyArg(), "admin-1", model.StatusApproved, "b-1", model.StatusPending).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "booking already left pending",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(transitionSQL).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectPrepare(bookingSQL).ExpectQuery().
					WithArgs("b-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("b-1", model.StatusRejected))
			},
			wantErr: model.ErrInvalidTransition,
		},
		{
			name: "booking does not exist",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(transitionSQL).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectPrepare(bookingSQL).ExpectQuery().
					WithArgs("b-1").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: model.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := pgMocks.NewConnection(t)
			tx := pgMocks.BeginTx(t, conn, mock)
			tt.setupMock(mock)

			err := repository.New(conn, otelMocks.NewOtel()).
				TransitionTx(context.Background(), tx, "b-1", model.StatusApproved, "admin-1", "welcome")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBooking_FindPendingTx(t *testing.T) {
	conn, mock := pgMocks.NewConnection(t)
	tx := pgMocks.BeginTx(t, conn, mock)

	mock.ExpectPrepare(pgMocks.QueryLike(
		"FROM booking_requests",
		"WHERE ((booking_requests.student_id = $1) AND booking_requests.status = $2)",
		"ORDER BY booking_requests.id",
		"FOR UPDATE OF booking_requests",
	)).ExpectQuery().
		WithArgs("s-1", model.StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "status"}).
			AddRow("b-1", "s-1", model.StatusPending).
			AddRow("b-2", "s-1", model.StatusPending))

	bookings, err := repository.New(conn, otelMocks.NewOtel()).FindPendingTx(context.Background(), tx,
		gDto.And(gDto.Eq(model.TableName, model.FieldStudentID, "s-1")))
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b-2", bookings[1].ID)
}
