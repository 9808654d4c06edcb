package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostel/infras/otel"
	"hostel/internal/domains/payment/model"
	"hostel/internal/domains/payment/model/dto"
	"hostel/internal/domains/payment/repository"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
)

// Payment serves payment reads. State changes go through the booking workflow.
type Payment interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.PaymentFilter) (dto.GetPaymentsResponse, error)
	ListByStudent(ctx context.Context, studentID string, req gDto.QueryParams) (dto.GetPaymentsResponse, error)
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
}

type serviceImpl struct {
	repo repository.Payment
	otel otel.Otel
}

func New(repo repository.Payment, otel otel.Otel) Payment {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.PaymentFilter) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, req, filter.ToFilterGroup())
}

func (s *serviceImpl) ListByStudent(ctx context.Context, studentID string, req gDto.QueryParams) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByStudent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, req, dto.PaymentFilter{StudentID: studentID}.ToFilterGroup())
}

func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, model.ErrPaymentNotFound // nolint:wrapcheck
	}

	res.FromModel(payment)

	return res, nil
}
