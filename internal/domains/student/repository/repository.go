package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/student/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gRepo "hostel/shared/repository"
	"hostel/shared/timezone"
)

// Tracker moves a student through the booking states inside the caller's transaction.
// A missing student fails every call with ErrStudentNotFound.
type Tracker interface {
	// AssignRoomTx binds the room and confirms the payment status.
	AssignRoomTx(ctx context.Context, sqltx *sqlx.Tx, studentID, roomID string) error
	ClearRoomTx(ctx context.Context, sqltx *sqlx.Tx, studentID string) error
	SetPaymentStatusTx(ctx context.Context, sqltx *sqlx.Tx, studentID, status string) error
	// HoldRoomTx binds the room tentatively while the payment is pending.
	HoldRoomTx(ctx context.Context, sqltx *sqlx.Tx, studentID, roomID string) error
	// ResetToNoRequestTx leaves the room column untouched.
	ResetToNoRequestTx(ctx context.Context, sqltx *sqlx.Tx, studentID string) error
	GetStudentTx(ctx context.Context, sqltx *sqlx.Tx, studentID string, forUpdate bool) (model.Student, error)
}

type Student interface {
	Tracker
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Student) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Student, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Student, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Student]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Student {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Student](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) AssignRoomTx(ctx context.Context, sqltx *sqlx.Tx, studentID, roomID string) error {
	return r.setTx(ctx, sqltx, studentID, map[string]any{
		model.FieldRoomID:        roomID,
		model.FieldPaymentStatus: model.PaymentStatusConfirmed,
	})
}

func (r *repositoryImpl) ClearRoomTx(ctx context.Context, sqltx *sqlx.Tx, studentID string) error {
	return r.setTx(ctx, sqltx, studentID, map[string]any{
		model.FieldRoomID: nil,
	})
}

func (r *repositoryImpl) SetPaymentStatusTx(ctx context.Context, sqltx *sqlx.Tx, studentID, status string) error {
	return r.setTx(ctx, sqltx, studentID, map[string]any{
		model.FieldPaymentStatus: status,
	})
}

func (r *repositoryImpl) HoldRoomTx(ctx context.Context, sqltx *sqlx.Tx, studentID, roomID string) error {
	return r.setTx(ctx, sqltx, studentID, map[string]any{
		model.FieldRoomID:        roomID,
		model.FieldPaymentStatus: model.PaymentStatusPending,
	})
}

func (r *repositoryImpl) ResetToNoRequestTx(ctx context.Context, sqltx *sqlx.Tx, studentID string) error {
	return r.SetPaymentStatusTx(ctx, sqltx, studentID, model.PaymentStatusNoRequest)
}

func (r *repositoryImpl) GetStudentTx(ctx context.Context, sqltx *sqlx.Tx, studentID string, forUpdate bool) (model.Student, error) {
	student, err := r.GetTx(ctx, sqltx, shared.FilterByID(studentID, model.FieldID, model.TableName), forUpdate)
	if err != nil {
		return student, fmt.Errorf("failed to get student: %w", err)
	}

	if student.ID == constant.Empty {
		return student, model.ErrStudentNotFound // nolint:wrapcheck
	}

	return student, nil
}

func (r *repositoryImpl) setTx(ctx context.Context, sqltx *sqlx.Tx, studentID string, fields map[string]any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".student.setTx")
	defer scope.End()

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = shared.Actor(ctx)

	affected, err := r.UpdateTxAffected(ctx, sqltx, fields, shared.FilterByID(studentID, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to update student: %w", err)
	}

	if affected == 0 {
		return model.ErrStudentNotFound // nolint:wrapcheck
	}

	return nil
}
