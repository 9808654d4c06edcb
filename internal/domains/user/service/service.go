package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostel/config"
	"hostel/infras/otel"
	"hostel/internal/domains/user/model"
	"hostel/internal/domains/user/model/dto"
	"hostel/internal/domains/user/repository"
	"hostel/shared"
	"hostel/shared/cache"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/password"
	gRepo "hostel/shared/repository"
	"hostel/shared/timezone"
)

const (
	cacheGetUser    = "user:get"
	cacheGetAllUser = "user:gets"
	cacheCountUser  = "user:count"
)

// User manages administrator identities. Student identities are created by the student service.
type User interface {
	CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAdmin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.Actor(ctx)

	exists, err := s.repo.Exist(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldEmail, req.Email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return "", fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return "", model.ErrEmailTaken // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	mod := req.ToModel(user, hashedPassword)
	if err = s.repo.Insert(ctx, mod); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return "", model.ErrEmailTaken // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return "", fmt.Errorf("failed to create user: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser, cacheCountUser)
	}()

	return mod.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	mod, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if mod.ID == constant.Empty {
		return res, model.ErrUserNotFound // nolint:wrapcheck
	}

	res.FromModel(mod)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) SetActive(ctx context.Context, id string, active bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.Actor(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exists {
		return model.ErrUserNotFound // nolint:wrapcheck
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldActive:        active,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser, cacheCountUser, shared.BuildCacheKey(cacheGetUser, id))
	}()

	return nil
}
