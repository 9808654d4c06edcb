package repository

//go:generate go run go.uber.org/mock/mockgen -source=./photo.go -destination=../mocks/photo_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/room/model"
	gDto "hostel/shared/dto"
	gRepo "hostel/shared/repository"
)

type Photo interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.RoomPhoto) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomPhoto, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomPhoto, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type photoRepositoryImpl struct {
	gRepo.Repository[model.RoomPhoto]
}

func NewPhoto(db *postgres.Connection, otel otel.Otel) Photo {
	return &photoRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomPhoto](model.PhotoEntityName, model.PhotoTableName, model.FieldPhotoID, db, otel),
	}
}
