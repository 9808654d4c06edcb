package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostel/config"
	otelMocks "hostel/infras/otel/mocks"
	pgMocks "hostel/infras/postgres/mocks"
	"hostel/infras/s3"
	s3Mocks "hostel/infras/s3/mocks"
	roomMocks "hostel/internal/domains/room/mocks"
	"hostel/internal/domains/room/model"
	"hostel/internal/domains/room/model/dto"
	"hostel/internal/domains/room/service"
	"hostel/shared/cache"
	cacheMocks "hostel/shared/cache/mocks"
	gDto "hostel/shared/dto"
)

type fixture struct {
	svc    service.Room
	repo   *roomMocks.MockRoom
	photos *roomMocks.MockPhoto
	cache  *cacheMocks.MockRedisCache
	s3     *s3Mocks.MockS3
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:   roomMocks.NewMockRoom(ctrl),
		photos: roomMocks.NewMockPhoto(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
		s3:     s3Mocks.NewMockS3(ctrl),
	}

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.repo, f.photos, pgMocks.NewTransactor(), cfg, f.cache, otelMocks.NewOtel(), f.s3)

	return f
}

func intPtr(v int) *int { return &v }

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(f fixture)
		wantErr   error
		anyErr    bool
		check     func(t *testing.T, room model.Room)
	}{
		{
			name: "derives capacity and available seats",
			req: dto.CreateRoomRequest{
				Category:   "4 AC A",
				Location:   "BH2",
				Menu:       model.MenuVeg,
				RoomsCount: 79,
				PaxPerRoom: 4,
				Price:      decimal.RequireFromString("16000.00"),
			},
			check: func(t *testing.T, room model.Room) {
				assert.Equal(t, 316, room.Capacity)
				assert.Equal(t, 316, room.AvailableSeats)
				assert.True(t, room.Active)
				assert.True(t, room.Price.Equal(decimal.NewFromInt(16000)))
			},
		},
		{
			name: "explicit capacity wins",
			req: dto.CreateRoomRequest{
				Category:   "2 AC A",
				Location:   "GH2",
				Menu:       model.MenuVeg,
				RoomsCount: 27,
				PaxPerRoom: 2,
				Capacity:   intPtr(50),
				Price:      decimal.NewFromInt(18000),
			},
			check: func(t *testing.T, room model.Room) {
				assert.Equal(t, 50, room.Capacity)
				assert.Equal(t, 50, room.AvailableSeats)
			},
		},
		{
			name: "available seats above capacity",
			req: dto.CreateRoomRequest{
				Category:       "2 AC A",
				Location:       "GH2",
				Menu:           model.MenuVeg,
				RoomsCount:     1,
				PaxPerRoom:     2,
				AvailableSeats: intPtr(3),
				Price:          decimal.NewFromInt(18000),
			},
			setupMock: func(fixture) {},
			wantErr:   model.ErrSeatBounds,
		},
		{
			name: "duplicate category and location",
			req: dto.CreateRoomRequest{
				Category: "2 AC A", Location: "GH2", Menu: model.MenuVeg, RoomsCount: 1, Price: decimal.NewFromInt(1),
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: model.ErrRoomExists,
		},
		{
			name: "unique violation on insert",
			req: dto.CreateRoomRequest{
				Category: "2 AC A", Location: "GH2", Menu: model.MenuVeg, RoomsCount: 1, Price: decimal.NewFromInt(1),
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantErr: model.ErrRoomExists,
		},
		{
			name: "insert fails",
			req: dto.CreateRoomRequest{
				Category: "2 AC A", Location: "GH2", Menu: model.MenuVeg, RoomsCount: 1, Price: decimal.NewFromInt(1),
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.setupMock != nil {
				tt.setupMock(f)
			} else {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room model.Room) error {
					tt.check(t, room)

					return nil
				})
			}

			id, err := f.svc.Create(context.Background(), tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestRoomService_ListAvailable(t *testing.T) {
	f := newFixture(t)

	var where string

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
		where, _ = filter.GetWhereClause()

		return 1, nil
	})
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{{ID: "r-1", AvailableSeats: 3, Capacity: 4}}, nil)

	res, err := f.svc.ListAvailable(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, dto.AvailableRoomsFilter{
		Gender:   model.GenderFemale,
		Menu:     model.MenuVeg,
		Capacity: 2,
	})

	require.NoError(t, err)
	assert.Len(t, res.Rooms, 1)
	assert.Contains(t, where, "rooms.active = :active")
	assert.Contains(t, where, "rooms.available_seats > :available_seats")
	assert.Contains(t, where, "rooms.location IN (:location_0, :location_1, :location_2)")
	assert.Contains(t, where, "rooms.menu = :menu")
	assert.Contains(t, where, "rooms.pax_per_room = :pax_per_room")
}

func TestRoomService_Update(t *testing.T) {
	locked := model.Room{ID: "r-1", Capacity: 10, AvailableSeats: 4}

	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		setupMock func(f fixture)
		wantErr   error
	}{
		{
			name: "lowering capacity below available seats is rejected",
			req:  dto.UpdateRoomRequest{Capacity: intPtr(3)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetRoomTx(gomock.Any(), gomock.Any(), "r-1", true).Return(locked, nil)
			},
			wantErr: model.ErrSeatBounds,
		},
		{
			name: "seat correction within bounds",
			req:  dto.UpdateRoomRequest{AvailableSeats: intPtr(0)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetRoomTx(gomock.Any(), gomock.Any(), "r-1", true).Return(locked, nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 0, fields[model.FieldAvailableSeats])

						return nil
					})
			},
		},
		{
			name: "missing room",
			req:  dto.UpdateRoomRequest{Menu: model.MenuNonVeg},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetRoomTx(gomock.Any(), gomock.Any(), "r-1", true).Return(model.Room{}, model.ErrRoomNotFound)
			},
			wantErr: model.ErrRoomNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(context.Background(), tt.req, "r-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("room referenced by bookings", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.photos.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23503"})

		assert.ErrorIs(t, f.svc.Delete(context.Background(), "r-1"), model.ErrRoomInUse)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.ErrorIs(t, f.svc.Delete(context.Background(), "r-1"), model.ErrRoomNotFound)
	})
}

func TestRoomService_AddPhoto(t *testing.T) {
	header := &multipart.FileHeader{
		Filename: "front.jpg",
		Size:     4,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}

	t.Run("primary photo demotes previous primary", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.s3.EXPECT().Upload(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, obj s3.Object) (string, error) {
			assert.Equal(t, "room_photos/r-1", obj.Directory)
			assert.True(t, strings.HasSuffix(obj.FileName, ".jpg"))
			assert.Equal(t, "image/jpeg", obj.ContentType)

			return "https://cdn.hostel.test/room_photos/r-1/x.jpg", nil
		})
		f.photos.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, fields[model.FieldPhotoIsPrimary])

				return nil
			})
		f.photos.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, photo model.RoomPhoto) error {
				assert.True(t, photo.IsPrimary)
				assert.Equal(t, "r-1", photo.RoomID)

				return nil
			})

		id, err := f.svc.AddPhoto(context.Background(), "r-1", dto.AddPhotoRequest{Title: "Front", IsPrimary: true, Image: header})

		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("uploaded object removed when insert fails", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.s3.EXPECT().Upload(gomock.Any(), gomock.Any()).Return("https://cdn.hostel.test/room_photos/r-1/x.jpg", nil)
		f.photos.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
		f.s3.EXPECT().ObjectKeyFromURL("https://cdn.hostel.test/room_photos/r-1/x.jpg").Return("room_photos/r-1/x.jpg")
		f.s3.EXPECT().Delete(gomock.Any(), "room_photos/r-1/x.jpg").Return(nil)

		_, err := f.svc.AddPhoto(context.Background(), "r-1", dto.AddPhotoRequest{Title: "Front", Image: header})

		assert.Error(t, err)
	})
}
