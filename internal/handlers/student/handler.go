package student

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostel/infras/otel"
	"hostel/internal/domains/student/model"
	"hostel/internal/domains/student/model/dto"
	"hostel/internal/domains/student/service"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/validator"
	"hostel/transport/http/response"
)

type Handler struct {
	service service.Student
	otel    otel.Otel
}

func New(service service.Student, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/students", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RegisterStudent)
		routerGroup.Get("/", handler.GetStudents)
		routerGroup.Get("/me", handler.Me)
		routerGroup.Patch("/me", handler.UpdateProfile)
		routerGroup.Get("/verify", handler.VerifyStudent)
		routerGroup.Get("/{id}", handler.GetStudentByID)
		routerGroup.Post("/{id}/reset-password", handler.ResetPassword)
	})
}

// RegisterStudent creates a student login and profile.
// @Summary Register a student
// @Description Create the student's account. Without a password the configured default is used.
// @Tags Student
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Register Student Request"
// @Success 201 {object} response.Data[dto.RegisterStudentResponse] "Student registered"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students [post]
// @Security BearerAuth
func (handler *Handler) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterStudent")
	defer scope.End()

	req := dto.RegisterStudentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RegisterStudent(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register student")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Student registered " + res.StudentID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetStudents lists students for admins.
// @Summary Get all students
// @Tags Student
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param payment_status query string false "Filter by payment status"
// @Param gender query string false "Filter by gender"
// @Param search query string false "Search name, email or roll number"
// @Success 200 {object} response.Data[dto.GetStudentsResponse] "List of students"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students [get]
// @Security BearerAuth
func (handler *Handler) GetStudents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStudents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filter := dto.StudentFilter{
		PaymentStatus: query.Get(model.FieldPaymentStatus),
		Gender:        query.Get(model.FieldGender),
		Search:        query.Get("search"),
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	students, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get students")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, students)
}

// Me returns the caller's student profile.
// @Summary Get my profile
// @Tags Student
// @Produce json
// @Success 200 {object} response.Data[dto.StudentResponse] "Student profile"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	student, err := handler.service.Me(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get student profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, student)
}

// UpdateProfile edits the caller's names and phone numbers.
// @Summary Update my profile
// @Tags Student
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} response.Data[dto.StudentResponse] "Updated profile"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/me [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	student, err := handler.service.UpdateProfile(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update student profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, student)
}

// VerifyStudent checks the caller has a student profile.
// @Summary Verify student account
// @Tags Student
// @Produce json
// @Success 200 {object} response.Message "Student verified"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/verify [get]
// @Security BearerAuth
func (handler *Handler) VerifyStudent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyStudent")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.VerifyStudent(ctx, userID); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Student verified")
}

// GetStudentByID retrieves a student for admins.
// @Summary Get a student by ID
// @Tags Student
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Data[dto.StudentResponse] "Student details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStudentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStudentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	student, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get student by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, student)
}

// ResetPassword puts a student's login back on the default password.
// @Summary Reset student password
// @Tags Student
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Message "Password reset"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/{id}/reset-password [post]
// @Security BearerAuth
func (handler *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetPassword")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.ResetPassword(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("student_id", id).Msg("failed to reset student password")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Student password reset by admin " + user)

	response.WithMessage(w, http.StatusOK, "Password reset to default")
}
