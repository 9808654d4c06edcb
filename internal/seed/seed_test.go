package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostel/config"
	otelMocks "hostel/infras/otel/mocks"
	pgMocks "hostel/infras/postgres/mocks"
	roomMocks "hostel/internal/domains/room/mocks"
	userMocks "hostel/internal/domains/user/mocks"
	userModel "hostel/internal/domains/user/model"
	"hostel/internal/seed"
	"hostel/shared/constant"
	"hostel/shared/password"
)

func newSeeder(t *testing.T, email, plain string) (*seed.Seeder, *roomMocks.MockRoom, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	rooms := roomMocks.NewMockRoom(ctrl)
	users := userMocks.NewMockUser(ctrl)

	cfg := &config.Config{}
	cfg.Seed.AdminEmail = email
	cfg.Seed.AdminPassword = plain

	return seed.New(rooms, users, pgMocks.NewTransactor(), cfg, otelMocks.NewOtel()), rooms, users
}

func TestCatalogue(t *testing.T) {
	rooms := seed.Catalogue()

	require.Len(t, rooms, 16)

	for _, room := range rooms {
		assert.Equal(t, room.RoomsCount*room.PaxPerRoom, room.Capacity, room.Category+" "+room.Location)
		assert.Equal(t, room.Capacity, room.AvailableSeats)
		assert.True(t, room.Price.IsPositive())
	}
}

func TestSeeder_Run(t *testing.T) {
	t.Run("fresh database", func(t *testing.T) {
		s, rooms, users := newSeeder(t, "warden@hostel.test", "Warden@123")

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(16)
		rooms.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Len(16)).Return(nil)
		users.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, u userModel.User) error {
				assert.Equal(t, constant.RoleSuperAdmin, u.Role)
				assert.NoError(t, password.Verify("Warden@123", u.Password))

				return nil
			})

		res, err := s.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, seed.Result{RoomsCreated: 16, AdminCreated: true}, res)
	})

	t.Run("rerun inserts nothing", func(t *testing.T) {
		s, rooms, users := newSeeder(t, "warden@hostel.test", "Warden@123")

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(16)

		res, err := s.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 16, res.RoomsSkipped)
		assert.False(t, res.AdminCreated)
	})

	t.Run("missing credentials", func(t *testing.T) {
		s, _, _ := newSeeder(t, "", "")

		_, err := s.Run(context.Background())

		assert.ErrorIs(t, err, seed.ErrNoAdminCredentials)
	})

	t.Run("bulk insert failure is reported", func(t *testing.T) {
		s, rooms, users := newSeeder(t, "warden@hostel.test", "Warden@123")

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(16)
		rooms.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))

		_, err := s.Run(context.Background())

		assert.Error(t, err)
	})
}
