package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/booking/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gRepo "hostel/shared/repository"
	"hostel/shared/timezone"
)

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.BookingRequest) error
	GetBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, forUpdate bool) (model.BookingRequest, error)
	// FindPendingTx locks every pending booking matching filter.
	FindPendingTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]model.BookingRequest, error)
	// TransitionTx moves a pending booking to status and stamps who processed it. A
	// booking that already left pending fails with ErrInvalidTransition.
	TransitionTx(ctx context.Context, sqltx *sqlx.Tx, bookingID, status, processedBy, notes string) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingRequest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.BookingRequest]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BookingRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) GetBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, forUpdate bool) (model.BookingRequest, error) {
	booking, err := r.GetTx(ctx, sqltx, shared.FilterByID(bookingID, model.FieldID, model.TableName), forUpdate)
	if err != nil {
		return booking, fmt.Errorf("failed to get booking request: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, model.ErrBookingNotFound // nolint:wrapcheck
	}

	return booking, nil
}

func (r *repositoryImpl) FindPendingTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]model.BookingRequest, error) {
	bookings, err := r.GetAllTx(ctx, sqltx, gDto.And(
		filter,
		gDto.Filter{ArgName: "pending_status", Table: model.TableName, Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusPending},
	), true)
	if err != nil {
		return nil, fmt.Errorf("failed to find pending booking requests: %w", err)
	}

	return bookings, nil
}

func (r *repositoryImpl) TransitionTx(ctx context.Context, sqltx *sqlx.Tx, bookingID, status, processedBy, notes string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TransitionTx")
	defer scope.End()

	now := timezone.Now()

	affected, err := r.UpdateTxAffected(ctx, sqltx, map[string]any{
		model.FieldStatus:        status,
		model.FieldAdminNotes:    notes,
		model.FieldProcessedBy:   processedBy,
		model.FieldProcessedAt:   now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: processedBy,
	}, gDto.And(
		gDto.Eq(model.TableName, model.FieldID, bookingID),
		gDto.Filter{ArgName: "current_status", Table: model.TableName, Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusPending},
	))
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to transition booking request: %w", err)
	}

	if affected > 0 {
		return nil
	}

	if _, err = r.GetBookingTx(ctx, sqltx, bookingID, false); err != nil {
		return err
	}

	return model.ErrInvalidTransition // nolint:wrapcheck
}
