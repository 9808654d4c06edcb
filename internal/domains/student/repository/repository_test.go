package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "hostel/infras/otel/mocks"
	pgMocks "hostel/infras/postgres/mocks"
	"hostel/internal/domains/student/model"
	"hostel/internal/domains/student/repository"
	"hostel/shared/constant"
)

func TestTracker_AssignRoomTx(t *testing.T) {
	assignSQL := pgMocks.QueryLike(
		"UPDATE students SET modified_at = $1, modified_by = $2, payment_status = $3, room_id = $4",
		"WHERE (students.id = $5)",
	)

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "binds the room and confirms", affected: 1},
		{name: "student does not exist", affected: 0, wantErr: model.ErrStudentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := pgMocks.NewConnection(t)
			tx := pgMocks.BeginTx(t, conn, mock)

			mock.ExpectExec(assignSQL).
				WithArgs(sqlmock.AnyArg(), constant.ContextSystem, model.PaymentStatusConfirmed, "room-1", "s-1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repository.New(conn, otelMocks.NewOtel()).AssignRoomTx(context.Background(), tx, "s-1", "room-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestTracker_ClearRoomTx(t *testing.T) {
	conn, mock := pgMocks.NewConnection(t)
	tx := pgMocks.BeginTx(t, conn, mock)

	mock.ExpectExec(pgMocks.QueryLike(
		"UPDATE students SET modified_at = $1, modified_by = $2, room_id = $3",
		"WHERE (students.id = $4)",
	)).
		WithArgs(sqlmock.AnyArg(), constant.ContextSystem, nil, "s-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repository.New(conn, otelMocks.NewOtel()).ClearRoomTx(context.Background(), tx, "s-1")
	assert.NoError(t, err)
}

func TestTracker_ResetToNoRequestTx(t *testing.T) {
	conn, mock := pgMocks.NewConnection(t)
	tx := pgMocks.BeginTx(t, conn, mock)

	mock.ExpectExec(pgMocks.QueryLike(
		"UPDATE students SET modified_at = $1, modified_by = $2, payment_status = $3",
		"WHERE (students.id = $4)",
	)).
		WithArgs(sqlmock.AnyArg(), constant.ContextSystem, model.PaymentStatusNoRequest, "s-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repository.New(conn, otelMocks.NewOtel()).ResetToNoRequestTx(context.Background(), tx, "s-1")
	assert.ErrorIs(t, err, model.ErrStudentNotFound)
}

func TestTracker_GetStudentTx(t *testing.T) {
	t.Run("locks the row when asked", func(t *testing.T) {
		conn, mock := pgMocks.NewConnection(t)
		tx := pgMocks.BeginTx(t, conn, mock)

		mock.ExpectPrepare(pgMocks.QueryLike("FROM students", "WHERE (students.id = $1)", "FOR UPDATE OF students")).ExpectQuery().
			WithArgs("s-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "payment_status"}).AddRow("s-1", model.PaymentStatusPending))

		student, err := repository.New(conn, otelMocks.NewOtel()).GetStudentTx(context.Background(), tx, "s-1", true)
		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusPending, student.PaymentStatus)
	})

	t.Run("missing student", func(t *testing.T) {
		conn, mock := pgMocks.NewConnection(t)
		tx := pgMocks.BeginTx(t, conn, mock)

		mock.ExpectPrepare(pgMocks.QueryLike("FROM students", "WHERE (students.id = $1)")).ExpectQuery().
			WithArgs("s-1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repository.New(conn, otelMocks.NewOtel()).GetStudentTx(context.Background(), tx, "s-1", false)
		assert.ErrorIs(t, err, model.ErrStudentNotFound)
	})
}
