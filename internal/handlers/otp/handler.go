package otp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostel/infras/otel"
	"hostel/internal/domains/otp/model"
	"hostel/internal/domains/otp/service"
	"hostel/shared/constant"
	"hostel/shared/validator"
	"hostel/transport/http/response"
)

type Handler struct {
	service service.OTP
	otel    otel.Otel
}

func New(service service.OTP, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/otp", func(r chi.Router) {
		r.Post("/request", handler.RequestOTP)
		r.Post("/verify", handler.VerifyOTP)
	})
}

// RequestOTP emails a fresh verification code to the caller.
// @Summary Request booking OTP
// @Tags OTP
// @Produce json
// @Success 200 {object} response.Message "OTP sent"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/otp/request [post]
// @Security BearerAuth
func (handler *Handler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestOTP")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Request(ctx, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request otp")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "OTP sent successfully")
}

// VerifyOTP checks the code and marks the caller verified for booking.
// @Summary Verify booking OTP
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body model.VerifyRequest true "OTP code"
// @Success 200 {object} response.Message "OTP verified"
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/otp/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyOTP")
	defer scope.End()

	req := model.VerifyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Verify(ctx, userID, req.Code); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("user_id", userID).Msg("otp verification failed")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "OTP verified successfully")
}
