package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "hostel/infras/otel/mocks"
	pgMocks "hostel/infras/postgres/mocks"
	"hostel/internal/domains/room/model"
	"hostel/internal/domains/room/repository"
)

var (
	reserveSQL = pgMocks.QueryLike(
		"UPDATE rooms SET available_seats = available_seats - 1, modified_at = $1, modified_by = $2",
		"WHERE (rooms.id = $3 AND rooms.available_seats > $4)",
	)
	releaseSQL = pgMocks.QueryLike(
		"UPDATE rooms SET available_seats = LEAST(available_seats + 1, capacity), modified_at = $1, modified_by = $2",
		"WHERE (rooms.id = $3)",
	)
	lookupSQL = pgMocks.QueryLike("SELECT rooms.id FROM rooms", "WHERE (rooms.id = $1)")
)

func TestLedger_ReserveSeatTx(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
		wantMsg   string
	}{
		{
			name: "takes a seat with one conditional update",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(reserveSQL).
					WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "room-1", int64(0)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no seat left",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(reserveSQL).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectPrepare(lookupSQL).ExpectQuery().
					WithArgs("room-1").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("room-1"))
			},
			wantErr: model.ErrOutOfStock,
		},
		{
			name: "room does not exist",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(reserveSQL).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectPrepare(lookupSQL).ExpectQuery().
					WithArgs("room-1").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: model.ErrRoomNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(reserveSQL).WillReturnError(errors.New("connection reset"))
			},
			wantMsg: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := pgMocks.NewConnection(t)
			tx := pgMocks.BeginTx(t, conn, mock)
			tt.setupMock(mock)

			err := repository.New(conn, otelMocks.NewOtel()).ReserveSeatTx(context.Background(), tx, "room-1")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				assert.ErrorContains(t, err, tt.wantMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestLedger_ReleaseSeatTx(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "gives the seat back capped at capacity", affected: 1},
		{name: "room does not exist", affected: 0, wantErr: model.ErrRoomNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := pgMocks.NewConnection(t)
			tx := pgMocks.BeginTx(t, conn, mock)

			mock.ExpectExec(releaseSQL).
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "room-1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repository.New(conn, otelMocks.NewOtel()).ReleaseSeatTx(context.Background(), tx, "room-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestLedger_GetRoomTx(t *testing.T) {
	t.Run("locks the row when asked", func(t *testing.T) {
		conn, mock := pgMocks.NewConnection(t)
		tx := pgMocks.BeginTx(t, conn, mock)

		mock.ExpectPrepare(pgMocks.QueryLike("FROM rooms", "WHERE (rooms.id = $1)", "FOR UPDATE OF rooms")).ExpectQuery().
			WithArgs("room-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "capacity", "available_seats"}).AddRow("room-1", 4, 1))

		room, err := repository.New(conn, otelMocks.NewOtel()).GetRoomTx(context.Background(), tx, "room-1", true)
		require.NoError(t, err)
		assert.Equal(t, 4, room.Capacity)
		assert.Equal(t, 1, room.AvailableSeats)
	})

	t.Run("missing room", func(t *testing.T) {
		conn, mock := pgMocks.NewConnection(t)
		tx := pgMocks.BeginTx(t, conn, mock)

		mock.ExpectPrepare(pgMocks.QueryLike("FROM rooms", "WHERE (rooms.id = $1)")).ExpectQuery().
			WithArgs("room-1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repository.New(conn, otelMocks.NewOtel()).GetRoomTx(context.Background(), tx, "room-1", false)
		assert.ErrorIs(t, err, model.ErrRoomNotFound)
	})
}
