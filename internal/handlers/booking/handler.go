package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostel/infras/otel"
	"hostel/internal/domains/booking/model"
	"hostel/internal/domains/booking/model/dto"
	"hostel/internal/domains/booking/service"
	studentModel "hostel/internal/domains/student/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/validator"
	"hostel/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/mine", handler.GetMyBookings)
		routerGroup.Get("/pending", handler.GetPendingBookings)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/approve", handler.ApproveBooking)
		routerGroup.Post("/{id}/reject", handler.RejectBooking)
	})
}

// SubmitBooking reserves a seat and records a pending payment for the caller.
// @Summary Submit a booking request
// @Description Reserve a seat in a room. Any earlier pending request of the student is superseded.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SubmitBookingRequest true "Submit Booking Request"
// @Success 201 {object} response.Data[dto.SubmitBookingResponse] "Booking submitted"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	studentID, _ := ctx.Value(constant.ContextKeyStudentID).(string)
	if studentID == constant.Empty {
		scope.TraceError(studentModel.ErrNotStudent)
		response.WithError(writer, studentModel.ErrNotStudent)

		return
	}

	req := dto.SubmitBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SubmitBooking(ctx, studentID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("student_id", studentID).Msg("failed to submit booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking submitted by student " + studentID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings lists booking requests for admins.
// @Summary Get all bookings
// @Description Retrieve booking requests with optional filters and pagination.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param student_id query string false "Filter by student"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	query := request.URL.Query()
	filter := dto.BookingFilter{
		Status:    query.Get(model.FieldStatus),
		StudentID: query.Get(model.FieldStudentID),
		RoomID:    query.Get(model.FieldRoomID),
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetMyBookings lists the caller's own booking requests.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	studentID, _ := ctx.Value(constant.ContextKeyStudentID).(string)
	if studentID == constant.Empty {
		scope.TraceError(studentModel.ErrNotStudent)
		response.WithError(writer, studentModel.ErrNotStudent)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	bookings, err := handler.service.ListByStudent(ctx, studentID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get student bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetPendingBookings lists requests awaiting a decision, oldest first.
// @Summary Get pending bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Pending bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/pending [get]
// @Security BearerAuth
func (handler *Handler) GetPendingBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPendingBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, false)

	bookings, err := handler.service.ListPending(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pending bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetStats returns booking counts by status.
// @Summary Booking dashboard counts
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse] "Counts by status"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking stats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, stats)
}

// GetBookingByID retrieves a booking request.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// ApproveBooking confirms a pending request.
// @Summary Approve a booking
// @Description Confirm the payment, assign the room and notify the student.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.DecisionRequest false "Admin notes"
// @Success 200 {object} response.Message "Booking approved"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApproveBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req, err := decision(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	adminID := shared.Actor(ctx)

	if err := handler.service.Approve(ctx, id, adminID, req.Notes); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to approve booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking approved by admin " + adminID)

	response.WithMessage(writer, http.StatusOK, "Booking approved")
}

// RejectBooking rejects a pending request and releases its seat.
// @Summary Reject a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.DecisionRequest false "Admin notes"
// @Success 200 {object} response.Message "Booking rejected"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req, err := decision(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	adminID := shared.Actor(ctx)

	if err := handler.service.Reject(ctx, id, adminID, req.Notes); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to reject booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking rejected by admin " + adminID)

	response.WithMessage(writer, http.StatusOK, "Booking rejected")
}

// decision reads optional notes; an empty body is a decision without notes.
func decision(request *http.Request) (dto.DecisionRequest, error) {
	req := dto.DecisionRequest{}

	if request.ContentLength == 0 {
		return req, nil
	}

	err := validator.Validate(request.Body, &req)

	return req, err
}
