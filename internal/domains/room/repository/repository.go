package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/room/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gRepo "hostel/shared/repository"
	"hostel/shared/timezone"
)

// Ledger moves seats in and out of a room inside a caller's transaction. Every seat
// taken by ReserveSeatTx is given back by exactly one ReleaseSeatTx unless the booking
// holding it is approved.
type Ledger interface {
	// ReserveSeatTx takes one seat with a single conditional update, so two callers
	// racing for the last seat cannot both succeed.
	ReserveSeatTx(ctx context.Context, sqltx *sqlx.Tx, roomID string) error
	// ReleaseSeatTx returns one seat, never exceeding capacity.
	ReleaseSeatTx(ctx context.Context, sqltx *sqlx.Tx, roomID string) error
	GetRoomTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, forUpdate bool) (model.Room, error)
}

type Room interface {
	Ledger
	Insert(ctx context.Context, model model.Room) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) ReserveSeatTx(ctx context.Context, sqltx *sqlx.Tx, roomID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ReserveSeatTx")
	defer scope.End()

	affected, err := r.UpdateTxAffected(ctx, sqltx, map[string]any{
		model.FieldAvailableSeats: gRepo.Expr(model.FieldAvailableSeats + " - 1"),
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  shared.Actor(ctx),
	}, gDto.And(
		gDto.Eq(model.TableName, model.FieldID, roomID),
		gDto.Filter{Table: model.TableName, Field: model.FieldAvailableSeats, Operator: gDto.FilterOperatorGreater, Value: 0},
	))
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to reserve seat: %w", err)
	}

	if affected > 0 {
		return nil
	}

	// nothing matched: either the room is gone or it has no seats left
	room, err := r.GetTx(ctx, sqltx, shared.FilterByID(roomID, model.FieldID, model.TableName), false, model.FieldID)
	if err != nil {
		return fmt.Errorf("failed to read room after reserve: %w", err)
	}

	if room.ID == constant.Empty {
		return model.ErrRoomNotFound // nolint:wrapcheck
	}

	return model.ErrOutOfStock // nolint:wrapcheck
}

func (r *repositoryImpl) ReleaseSeatTx(ctx context.Context, sqltx *sqlx.Tx, roomID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ReleaseSeatTx")
	defer scope.End()

	affected, err := r.UpdateTxAffected(ctx, sqltx, map[string]any{
		model.FieldAvailableSeats: gRepo.Expr(fmt.Sprintf("LEAST(%s + 1, %s)", model.FieldAvailableSeats, model.FieldCapacity)),
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  shared.Actor(ctx),
	}, shared.FilterByID(roomID, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to release seat: %w", err)
	}

	if affected == 0 {
		return model.ErrRoomNotFound // nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) GetRoomTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, forUpdate bool) (model.Room, error) {
	room, err := r.GetTx(ctx, sqltx, shared.FilterByID(roomID, model.FieldID, model.TableName), forUpdate)
	if err != nil {
		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, model.ErrRoomNotFound // nolint:wrapcheck
	}

	return room, nil
}
