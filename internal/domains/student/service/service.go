package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"hostel/config"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/student/model"
	"hostel/internal/domains/student/model/dto"
	"hostel/internal/domains/student/repository"
	userModel "hostel/internal/domains/user/model"
	userRepo "hostel/internal/domains/user/repository"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/password"
	gRepo "hostel/shared/repository"
	"hostel/shared/timezone"
)

type Student interface {
	// RegisterStudent creates the login and the profile together; neither exists without the other.
	RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (dto.RegisterStudentResponse, error)
	Me(ctx context.Context, userID string) (dto.StudentResponse, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (dto.StudentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.StudentFilter) (dto.GetStudentsResponse, error)
	Get(ctx context.Context, id string) (dto.StudentResponse, error)
	// ResetPassword puts the student's login back on the default password.
	ResetPassword(ctx context.Context, studentID string) error
	VerifyStudent(ctx context.Context, userID string) error
}

type serviceImpl struct {
	repo       repository.Student
	users      userRepo.User
	transactor postgres.Transactor
	cfg        *config.Config
	otel       otel.Otel
}

func New(repo repository.Student, users userRepo.User, transactor postgres.Transactor, cfg *config.Config, otel otel.Otel) Student {
	return &serviceImpl{
		repo:       repo,
		users:      users,
		transactor: transactor,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (res dto.RegisterStudentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterStudent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.users.Exist(ctx, gDto.And(gDto.Eq(userModel.TableName, userModel.FieldEmail, req.Email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email is registered")

		return res, fmt.Errorf("failed to check if email is registered: %w", err)
	}

	if exists {
		return res, userModel.ErrEmailTaken // nolint:wrapcheck
	}

	plain := req.Password
	if plain == constant.Empty {
		plain = s.cfg.Student.DefaultPassword
	}

	hashed, err := password.Hash(plain)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	actor := shared.Actor(ctx)
	user := userModel.User{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Password: hashed,
		Role:     constant.RoleStudent,
		Active:   true,
		Metadata: gModel.Stamp(actor, timezone.Now()),
	}

	student := req.ToModel(actor, user.ID)
	user.FullName = student.Name

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.users.InsertTx(ctx, tx, user); err != nil {
			return err
		}

		return s.repo.InsertTx(ctx, tx, student)
	})
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, userModel.ErrEmailTaken // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to register student")

		return res, fmt.Errorf("failed to register student: %w", err)
	}

	log.Info().Str("student_id", student.ID).Str("user_id", user.ID).Msg("student registered")

	return dto.RegisterStudentResponse{StudentID: student.ID, UserID: user.ID}, nil
}

func (s *serviceImpl) Me(ctx context.Context, userID string) (res dto.StudentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	student, err := s.byUser(ctx, userID)
	if err != nil {
		return res, err
	}

	res.FromModel(student)

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (res dto.StudentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	student, err := s.byUser(ctx, userID)
	if err != nil {
		return res, err
	}

	actor := shared.Actor(ctx)
	fields := shared.TransformFields(req, actor)
	name, renamed := req.Name()

	if renamed {
		fields[model.FieldName] = name
	}

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(student.ID, model.FieldID, model.TableName)); err != nil {
			return err
		}

		if !renamed {
			return nil
		}

		return s.users.UpdateTx(ctx, tx, map[string]any{
			userModel.FieldFullName:  name,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: actor,
		}, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	})
	if err != nil {
		log.Error().Err(err).Str("student_id", student.ID).Msg("failed to update profile")

		return res, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.Me(ctx, userID)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.StudentFilter) (res dto.GetStudentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	group := filter.ToFilterGroup()

	total, err := s.repo.Count(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to count students")

		return res, fmt.Errorf("failed to count students: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get students")

		return res, fmt.Errorf("failed to get students: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StudentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	student, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get student")

		return res, fmt.Errorf("failed to get student: %w", err)
	}

	if student.ID == constant.Empty {
		return res, model.ErrStudentNotFound // nolint:wrapcheck
	}

	res.FromModel(student)

	return res, nil
}

func (s *serviceImpl) ResetPassword(ctx context.Context, studentID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetPassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	student, err := s.repo.Get(ctx, shared.FilterByID(studentID, model.FieldID, model.TableName), model.FieldID, model.FieldUserID)
	if err != nil {
		log.Error().Err(err).Str("id", studentID).Msg("failed to get student")

		return fmt.Errorf("failed to get student: %w", err)
	}

	if student.ID == constant.Empty {
		return model.ErrStudentNotFound // nolint:wrapcheck
	}

	hashed, err := password.Hash(s.cfg.Student.DefaultPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.users.Update(ctx, map[string]any{
		userModel.FieldPassword:  hashed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.Actor(ctx),
	}, shared.FilterByID(student.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", studentID).Msg("failed to reset password")

		return fmt.Errorf("failed to reset password: %w", err)
	}

	log.Info().Str("student_id", studentID).Msg("student password reset to default")

	return nil
}

func (s *serviceImpl) VerifyStudent(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyStudent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = s.byUser(ctx, userID)

	return err
}

func (s *serviceImpl) byUser(ctx context.Context, userID string) (model.Student, error) {
	student, err := s.repo.Get(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldUserID, userID)))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get student by user")

		return student, fmt.Errorf("failed to get student: %w", err)
	}

	if student.ID == constant.Empty {
		return student, model.ErrNotStudent // nolint:wrapcheck
	}

	return student, nil
}
