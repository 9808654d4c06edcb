package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostel/infras/otel"
	bookingService "hostel/internal/domains/booking/service"
	"hostel/internal/domains/payment/model"
	"hostel/internal/domains/payment/model/dto"
	"hostel/internal/domains/payment/service"
	studentModel "hostel/internal/domains/student/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/validator"
	"hostel/transport/http/response"
)

// Handler serves payment reads. Verify and reject change bookings, seats and students
// together, so they go through the booking workflow.
type Handler struct {
	service  service.Payment
	bookings bookingService.Booking
	otel     otel.Otel
}

func New(service service.Payment, bookings bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		bookings: bookings,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Get("/mine", handler.GetMyPayments)
		routerGroup.Get("/{id}", handler.GetPaymentByID)
		routerGroup.Post("/{id}/verify", handler.VerifyPayment)
		routerGroup.Post("/{id}/reject", handler.RejectPayment)
	})
}

// GetPayments lists payments for admins.
// @Summary Get all payments
// @Tags Payment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param student_id query string false "Filter by student"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "List of payments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filter := dto.PaymentFilter{
		Status:    query.Get(model.FieldStatus),
		StudentID: query.Get(model.FieldStudentID),
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	payments, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payments)
}

// GetMyPayments lists the caller's payments.
// @Summary Get my payments
// @Tags Payment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "List of payments"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyPayments")
	defer scope.End()

	studentID, _ := ctx.Value(constant.ContextKeyStudentID).(string)
	if studentID == constant.Empty {
		scope.TraceError(studentModel.ErrNotStudent)
		response.WithError(w, studentModel.ErrNotStudent)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	payments, err := handler.service.ListByStudent(ctx, studentID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get student payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payments)
}

// GetPaymentByID retrieves a payment.
// @Summary Get a payment by ID
// @Tags Payment
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Payment details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	payment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payment)
}

// VerifyPayment confirms a payment.
// @Summary Verify a payment
// @Description Confirm a payment and approve its pending booking. Payments older than the expiry window are failed instead.
// @Tags Payment
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Message "Payment verified"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id}/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	adminID := shared.Actor(ctx)

	if err := handler.bookings.VerifyPayment(ctx, id, adminID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("payment_id", id).Msg("failed to verify payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment verified by admin " + adminID)

	response.WithMessage(w, http.StatusOK, "Payment verified")
}

// RejectPayment fails a payment.
// @Summary Reject a payment
// @Description Fail a payment, rejecting its pending booking and releasing the seat.
// @Tags Payment
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Message "Payment rejected"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	adminID := shared.Actor(ctx)

	if err := handler.bookings.RejectPayment(ctx, id, adminID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("payment_id", id).Msg("failed to reject payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment rejected by admin " + adminID)

	response.WithMessage(w, http.StatusOK, "Payment rejected")
}
