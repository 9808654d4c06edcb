package service

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"hostel/config"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/infras/s3"
	"hostel/internal/domains/room/model"
	"hostel/internal/domains/room/model/dto"
	"hostel/internal/domains/room/repository"
	"hostel/shared"
	"hostel/shared/cache"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gRepo "hostel/shared/repository"
	"hostel/shared/timezone"
)

const photoDirectory = "room_photos"

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	// ListAvailable is the student view: active rooms with at least one free seat.
	ListAvailable(ctx context.Context, req gDto.QueryParams, filter dto.AvailableRoomsFilter) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
	AddPhoto(ctx context.Context, roomID string, req dto.AddPhotoRequest) (string, error)
	DeletePhoto(ctx context.Context, roomID, photoID string) error
}

type serviceImpl struct {
	repo       repository.Room
	photos     repository.Photo
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	s3         s3.S3
}

func New(
	repo repository.Room,
	photos repository.Photo,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Room {
	return &serviceImpl{
		repo:       repo,
		photos:     photos,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		s3:         s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room := req.ToModel(shared.Actor(ctx))
	if !room.SeatsValid() {
		return "", model.ErrSeatBounds // nolint:wrapcheck
	}

	exists, err := s.repo.Exist(ctx, gDto.And(
		gDto.Eq(model.TableName, model.FieldCategory, room.Category),
		gDto.Eq(model.TableName, model.FieldLocation, room.Location),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return "", fmt.Errorf("failed to check if room exists: %w", err)
	}

	if exists {
		return "", model.ErrRoomExists // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, room); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return "", model.ErrRoomExists // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create room")

		return "", fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidate(ctx)

	return room.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheGetAllRoom, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ListAvailable(ctx context.Context, req gDto.QueryParams, filter dto.AvailableRoomsFilter) (dto.GetRoomsResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAvailable")
	defer scope.End()

	return s.GetAll(ctx, req, availableFilter(filter))
}

func availableFilter(filter dto.AvailableRoomsFilter) gDto.FilterGroup {
	filters := []any{
		gDto.Eq(model.TableName, model.FieldActive, true),
		gDto.Filter{Table: model.TableName, Field: model.FieldAvailableSeats, Operator: gDto.FilterOperatorGreater, Value: 0},
	}

	if locations := model.LocationsFor(filter.Gender); len(locations) > 0 {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldLocation, Operator: gDto.FilterOperatorIn, Value: locations})
	}

	if filter.Menu != constant.Empty {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldMenu, filter.Menu))
	}

	if filter.Capacity > 0 {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldPaxPerRoom, filter.Capacity))
	}

	return gDto.And(filters...)
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheCountRoom, gDto.QueryParams{}, filter)

	var total int
	if err := s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CacheGetRoom, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, model.ErrRoomNotFound // nolint:wrapcheck
	}

	photos, err := s.photos.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldPhotoIsPrimary,
		SortDir: gDto.SortDirDesc,
	}, gDto.And(gDto.Eq(model.PhotoTableName, model.FieldPhotoRoomID, id)))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get room photos")

		return res, fmt.Errorf("failed to get room photos: %w", err)
	}

	res.FromModel(room)
	res.WithPhotos(photos)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

// Update applies an admin correction. The row is locked first so the seat bounds are
// checked against the same values the update writes over.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		room, err := s.repo.GetRoomTx(ctx, tx, id, true)
		if err != nil {
			return err
		}

		if !req.Apply(room).SeatsValid() {
			return model.ErrSeatBounds // nolint:wrapcheck
		}

		return s.repo.UpdateTx(ctx, tx, shared.TransformFields(req, shared.Actor(ctx)), shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			return model.ErrRoomExists // nolint:wrapcheck
		}

		log.Error().Err(err).Str("id", id).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exists {
		return model.ErrRoomNotFound // nolint:wrapcheck
	}

	photos, err := s.photos.GetAll(ctx, gDto.QueryParams{}, gDto.And(gDto.Eq(model.PhotoTableName, model.FieldPhotoRoomID, id)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room photos")

		return fmt.Errorf("failed to get room photos: %w", err)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		if gRepo.IsForeignKeyViolation(err) {
			return model.ErrRoomInUse // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		for _, photo := range photos {
			s.deleteObject(c, photo.URL)
		}
	}()

	s.invalidate(ctx)

	return nil
}

// AddPhoto uploads the image first and removes it again if the row cannot be written.
// A primary photo demotes the room's previous primary in the same transaction.
func (s *serviceImpl) AddPhoto(ctx context.Context, roomID string, req dto.AddPhotoRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddPhoto")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.repo.Exist(ctx, shared.FilterByID(roomID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return "", fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exists {
		return "", model.ErrRoomNotFound // nolint:wrapcheck
	}

	url, err := s.s3.Upload(ctx, s3.Object{
		Directory:   path.Join(photoDirectory, roomID),
		FileName:    uuid.NewString() + path.Ext(req.Image.Filename),
		ContentType: req.Image.Header.Get(constant.RequestHeaderContentType),
		Size:        req.Image.Size,
		Body:        req.ImageFile,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room photo")

		return "", fmt.Errorf("failed to upload room photo: %w", err)
	}

	photo := req.ToModel(shared.Actor(ctx), roomID, url)

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if photo.IsPrimary {
			err := s.photos.UpdateTx(ctx, tx, map[string]any{
				model.FieldPhotoIsPrimary: false,
				constant.FieldModifiedAt:  timezone.Now(),
				constant.FieldModifiedBy:  photo.CreatedBy,
			}, gDto.And(
				gDto.Eq(model.PhotoTableName, model.FieldPhotoRoomID, roomID),
				gDto.Eq(model.PhotoTableName, model.FieldPhotoIsPrimary, true),
			))
			if err != nil {
				return err
			}
		}

		return s.photos.InsertTx(ctx, tx, photo)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save room photo")
		s.deleteObject(context.WithoutCancel(ctx), url)

		return "", fmt.Errorf("failed to save room photo: %w", err)
	}

	s.invalidate(ctx)

	return photo.ID, nil
}

func (s *serviceImpl) DeletePhoto(ctx context.Context, roomID, photoID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePhoto")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(
		gDto.Eq(model.PhotoTableName, model.FieldPhotoID, photoID),
		gDto.Eq(model.PhotoTableName, model.FieldPhotoRoomID, roomID),
	)

	photo, err := s.photos.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room photo")

		return fmt.Errorf("failed to get room photo: %w", err)
	}

	if photo.ID == constant.Empty {
		return model.ErrPhotoNotFound // nolint:wrapcheck
	}

	if err = s.photos.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room photo")

		return fmt.Errorf("failed to delete room photo: %w", err)
	}

	go s.deleteObject(context.WithoutCancel(ctx), photo.URL)

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) deleteObject(ctx context.Context, url string) {
	if err := s.s3.Delete(ctx, s.s3.ObjectKeyFromURL(url)); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to delete room photo object")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheGetRoom, constant.CacheGetAllRoom, constant.CacheCountRoom)
	}()
}
