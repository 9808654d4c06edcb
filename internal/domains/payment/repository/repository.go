package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/payment/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	gRepo "hostel/shared/repository"
	"hostel/shared/timezone"
)

// Store records payment state for the booking workflow. Every method runs inside the
// caller's transaction.
type Store interface {
	CreatePendingTx(ctx context.Context, sqltx *sqlx.Tx, studentID, roomID string, amount decimal.Decimal, txnRef string) (model.Payment, error)
	// MarkConfirmedTx and MarkFailedTx are no-ops when the payment is already in the
	// target state.
	MarkConfirmedTx(ctx context.Context, sqltx *sqlx.Tx, paymentID string) error
	MarkFailedTx(ctx context.Context, sqltx *sqlx.Tx, paymentID string) error
	// FindActivePendingTx locks and returns the student's pending payments.
	FindActivePendingTx(ctx context.Context, sqltx *sqlx.Tx, studentID string) ([]model.Payment, error)
	GetPaymentTx(ctx context.Context, sqltx *sqlx.Tx, paymentID string, forUpdate bool) (model.Payment, error)
}

type Payment interface {
	Store
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) CreatePendingTx(
	ctx context.Context,
	sqltx *sqlx.Tx,
	studentID, roomID string,
	amount decimal.Decimal,
	txnRef string,
) (model.Payment, error) {
	now := timezone.Now()

	payment := model.Payment{
		ID:            uuid.NewString(),
		StudentID:     studentID,
		RoomID:        &roomID,
		Amount:        amount,
		TransactionID: txnRef,
		Status:        model.StatusPending,
		PaymentDate:   now,
		Metadata:      gModel.Stamp(shared.Actor(ctx), now),
	}

	if err := r.InsertTx(ctx, sqltx, payment); err != nil {
		return model.Payment{}, fmt.Errorf("failed to create pending payment: %w", err)
	}

	return payment, nil
}

func (r *repositoryImpl) MarkConfirmedTx(ctx context.Context, sqltx *sqlx.Tx, paymentID string) error {
	return r.settleTx(ctx, sqltx, paymentID, model.StatusConfirmed)
}

func (r *repositoryImpl) MarkFailedTx(ctx context.Context, sqltx *sqlx.Tx, paymentID string) error {
	return r.settleTx(ctx, sqltx, paymentID, model.StatusFailed)
}

func (r *repositoryImpl) settleTx(ctx context.Context, sqltx *sqlx.Tx, paymentID, status string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.settleTx")
	defer scope.End()

	now := timezone.Now()

	affected, err := r.UpdateTxAffected(ctx, sqltx, map[string]any{
		model.FieldStatus:           status,
		model.FieldVerified:         true,
		model.FieldVerificationDate: now,
		constant.FieldModifiedAt:    now,
		constant.FieldModifiedBy:    shared.Actor(ctx),
	}, gDto.And(
		gDto.Eq(model.TableName, model.FieldID, paymentID),
		gDto.Filter{
			ArgName:  "current_status",
			Table:    model.TableName,
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorNotEq,
			Value:    status,
		},
	))
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to mark payment %s: %w", status, err)
	}

	if affected > 0 {
		return nil
	}

	// already in the target state, or missing
	_, err = r.GetPaymentTx(ctx, sqltx, paymentID, false)

	return err
}

func (r *repositoryImpl) FindActivePendingTx(ctx context.Context, sqltx *sqlx.Tx, studentID string) ([]model.Payment, error) {
	payments, err := r.GetAllTx(ctx, sqltx, gDto.And(
		gDto.Eq(model.TableName, model.FieldStudentID, studentID),
		gDto.Eq(model.TableName, model.FieldStatus, model.StatusPending),
	), true)
	if err != nil {
		return nil, fmt.Errorf("failed to find pending payments: %w", err)
	}

	return payments, nil
}

func (r *repositoryImpl) GetPaymentTx(ctx context.Context, sqltx *sqlx.Tx, paymentID string, forUpdate bool) (model.Payment, error) {
	payment, err := r.GetTx(ctx, sqltx, shared.FilterByID(paymentID, model.FieldID, model.TableName), forUpdate)
	if err != nil {
		return payment, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return payment, model.ErrPaymentNotFound // nolint:wrapcheck
	}

	return payment, nil
}
