package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostel/config"
	otelMocks "hostel/infras/otel/mocks"
	userMocks "hostel/internal/domains/user/mocks"
	"hostel/internal/domains/user/model"
	"hostel/internal/domains/user/model/dto"
	"hostel/internal/domains/user/service"
	"hostel/shared/cache"
	cacheMocks "hostel/shared/cache/mocks"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/password"
)

func newService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel()), mockRepo, mockCache
}

func TestUserService_CreateAdmin(t *testing.T) {
	req := dto.CreateAdminRequest{
		Email:    "warden@hostel.test",
		Password: "Wardenpass1",
		FullName: "Chief Warden",
	}

	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser)
		wantErr   error
		anyErr    bool
	}{
		{
			name: "creates admin with hashed password",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u model.User) error {
					assert.Equal(t, constant.RoleAdmin, u.Role)
					assert.True(t, u.Active)
					assert.Equal(t, constant.ContextSystem, u.CreatedBy)
					assert.NoError(t, password.Verify(req.Password, u.Password))

					return nil
				})
			},
		},
		{
			name: "email already registered",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: model.ErrEmailTaken,
		},
		{
			name: "exist check fails",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection reset"))
			},
			anyErr: true,
		},
		{
			name: "insert fails",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			id, err := svc.CreateAdmin(context.Background(), req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, id)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestUserService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser, c *cacheMocks.MockRedisCache)
		wantErr   error
		wantEmail string
	}{
		{
			name: "cache miss reads repository",
			setupMock: func(repo *userMocks.MockUser, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "user:get:u-1", gomock.Any()).Return(cache.Nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u-1", Email: "a@hostel.test", Role: constant.RoleAdmin}, nil)
			},
			wantEmail: "a@hostel.test",
		},
		{
			name: "missing user",
			setupMock: func(repo *userMocks.MockUser, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantErr: model.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, c := newService(t)
			tt.setupMock(repo, c)

			res, err := svc.Get(context.Background(), "u-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, res.Email)
		})
	}
}

func TestUserService_GetAll(t *testing.T) {
	svc, repo, c := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.User{{ID: "u-1"}, {ID: "u-2"}}, nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Users, 2)
}

func TestUserService_SetActive(t *testing.T) {
	t.Run("deactivates user", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, fields[model.FieldActive])

				return nil
			})

		assert.NoError(t, svc.SetActive(context.Background(), "u-1", false))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.ErrorIs(t, svc.SetActive(context.Background(), "u-1", true), model.ErrUserNotFound)
	})
}
