package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/rs/zerolog/log"

	"hostel/config"
	"hostel/infras/otel"
	notifModel "hostel/internal/domains/notification/model"
	notifService "hostel/internal/domains/notification/service"
	"hostel/internal/domains/otp/model"
	studentModel "hostel/internal/domains/student/model"
	studentRepo "hostel/internal/domains/student/repository"
	"hostel/shared/cache"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
)

// OTP issues one-time codes by email and tracks the verified marker a booking consumes.
type OTP interface {
	Request(ctx context.Context, userID string) error
	Verify(ctx context.Context, userID, code string) error
	IsVerified(ctx context.Context, userID string) (bool, error)
	ClearVerified(ctx context.Context, userID string) error
}

type serviceImpl struct {
	cache    cache.RedisCache
	students studentRepo.Student
	sender   notifService.Sender
	cfg      *config.Config
	otel     otel.Otel
}

func New(cache cache.RedisCache, students studentRepo.Student, sender notifService.Sender, cfg *config.Config, otel otel.Otel) OTP {
	return &serviceImpl{
		cache:    cache,
		students: students,
		sender:   sender,
		cfg:      cfg,
		otel:     otel,
	}
}

func key(prefix, userID string) string {
	return prefix + ":" + userID
}

func (s *serviceImpl) Request(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".otp.Request")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	student, err := s.students.Get(ctx, gDto.And(gDto.Eq(studentModel.TableName, studentModel.FieldUserID, userID)))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get student")

		return fmt.Errorf("failed to get student: %w", err)
	}

	if student.ID == constant.Empty {
		return studentModel.ErrNotStudent // nolint:wrapcheck
	}

	if s.locked(ctx, userID) {
		return model.ErrTooManyAttempts // nolint:wrapcheck
	}

	code, err := generate(s.cfg.OTP.Length)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate otp")

		return err
	}

	if err = s.cache.Save(ctx, key(model.CacheCode, userID), code, s.cfg.OTP.TTLSeconds); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to store otp")

		return fmt.Errorf("failed to store otp: %w", err)
	}

	if err = s.cache.Delete(ctx, key(model.CacheAttempts, userID)); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to reset otp attempts")
	}

	// The code stays valid when delivery fails; the student can ask again.
	if err := s.sender.Send(ctx, notifModel.KindOTP, student.Email, map[string]string{
		notifModel.FieldName: student.Name,
		notifModel.FieldCode: code,
		notifModel.FieldTTL:  strconv.Itoa(s.cfg.OTP.TTLSeconds / constant.MinutesToSeconds),
	}); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("otp email not sent")
	}

	return nil
}

func (s *serviceImpl) Verify(ctx context.Context, userID, code string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".otp.Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var stored string

	if err = s.cache.Get(ctx, key(model.CacheCode, userID), &stored); err != nil {
		if errors.Is(err, cache.Nil) {
			return model.ErrOTPNotFound // nolint:wrapcheck
		}

		log.Error().Err(err).Str("user_id", userID).Msg("failed to read otp")

		return fmt.Errorf("failed to read otp: %w", err)
	}

	attempts, err := s.cache.Increment(ctx, key(model.CacheAttempts, userID), s.cfg.OTP.TTLSeconds)
	if err != nil {
		return fmt.Errorf("failed to count otp attempts: %w", err)
	}

	// The code and the counter are kept so the lockout lasts until the counter expires.
	if attempts > model.MaxAttempts {
		return model.ErrTooManyAttempts // nolint:wrapcheck
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return model.ErrInvalidOTP // nolint:wrapcheck
	}

	s.forget(ctx, userID)

	if err = s.cache.Save(ctx, key(model.CacheVerified, userID), model.VerifiedValue, s.cfg.OTP.VerifiedTTLSeconds); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to store otp marker")

		return fmt.Errorf("failed to store otp marker: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("otp verified")

	return nil
}

func (s *serviceImpl) IsVerified(ctx context.Context, userID string) (bool, error) {
	var marker string

	err := s.cache.Get(ctx, key(model.CacheVerified, userID), &marker)
	if errors.Is(err, cache.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to read otp marker: %w", err)
	}

	return marker == model.VerifiedValue, nil
}

func (s *serviceImpl) ClearVerified(ctx context.Context, userID string) error {
	if err := s.cache.Delete(ctx, key(model.CacheVerified, userID)); err != nil {
		return fmt.Errorf("failed to clear otp marker: %w", err)
	}

	return nil
}

// locked reports whether the attempts counter is exhausted. A cache error counts as unlocked.
func (s *serviceImpl) locked(ctx context.Context, userID string) bool {
	var raw string

	if err := s.cache.Get(ctx, key(model.CacheAttempts, userID), &raw); err != nil {
		return false
	}

	attempts, err := strconv.Atoi(raw)

	return err == nil && attempts >= model.MaxAttempts
}

func (s *serviceImpl) forget(ctx context.Context, userID string) {
	for _, prefix := range []string{model.CacheCode, model.CacheAttempts} {
		if err := s.cache.Delete(ctx, key(prefix, userID)); err != nil {
			log.Warn().Err(err).Str("key", key(prefix, userID)).Msg("failed to delete otp key")
		}
	}
}

// generate returns a zero-padded numeric code of the given length.
func generate(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	n, err := rand.Int(rand.Reader, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to generate otp: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n.Int64()), nil
}
