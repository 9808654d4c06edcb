package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostel/config"
	"hostel/infras/jwt"
	"hostel/infras/otel"
	"hostel/internal/domains/auth/model"
	"hostel/internal/domains/auth/model/dto"
	studentModel "hostel/internal/domains/student/model"
	studentRepo "hostel/internal/domains/student/repository"
	userModel "hostel/internal/domains/user/model"
	userRepo "hostel/internal/domains/user/repository"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	"hostel/shared/password"
	"hostel/shared/timezone"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	userRepo    userRepo.User
	studentRepo studentRepo.Student
	cfg         *config.Config
	otel        otel.Otel
	jwtService  jwt.JWT
}

func New(userRepo userRepo.User, studentRepo studentRepo.Student, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		cfg:         cfg,
		otel:        otel,
		jwtService:  jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	emailFilter := gDto.And(gDto.Eq(userModel.TableName, userModel.FieldEmail, req.Email))

	user, err := s.userRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, userModel.ErrBadCredentials // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, userModel.ErrBadCredentials // nolint:wrapcheck
	}

	if !user.Active {
		return res, userModel.ErrUserInactive // nolint:wrapcheck
	}

	subject := jwt.Subject{UserID: user.ID, Email: user.Email, Role: user.Role}

	if user.Role == constant.RoleStudent {
		student, err := s.studentRepo.Get(ctx, gDto.And(gDto.Eq(studentModel.TableName, studentModel.FieldUserID, user.ID)), studentModel.FieldID)
		if err != nil {
			log.Error().Err(err).Str("user_id", user.ID).Msg("failed to get student profile")

			return res, fmt.Errorf("failed to get student profile: %w", err)
		}

		subject.StudentID = student.ID
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, subject)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}

	if err := s.userRepo.Update(ctx, shared.TransformFields(lastLogin, user.ID), emailFilter); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair, subject)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, model.ErrInvalidRefreshToken // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return userModel.ErrUserNotFound // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return model.ErrWrongPassword // nolint:wrapcheck
	}

	if err := password.CheckStrength(req.NewPassword); err != nil {
		return failure.BadRequest(err)
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}

	if err = s.userRepo.Update(ctx, shared.TransformFields(updatePassword, shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("password changed")

	return nil
}
