package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostel/config"
	"hostel/infras/jwt"
	jwtMocks "hostel/infras/jwt/mocks"
	otelMocks "hostel/infras/otel/mocks"
	"hostel/internal/domains/auth/model"
	"hostel/internal/domains/auth/model/dto"
	"hostel/internal/domains/auth/service"
	studentMocks "hostel/internal/domains/student/mocks"
	studentModel "hostel/internal/domains/student/model"
	userMocks "hostel/internal/domains/user/mocks"
	userModel "hostel/internal/domains/user/model"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/password"
)

type mocks struct {
	users    *userMocks.MockUser
	students *studentMocks.MockStudent
	jwt      *jwtMocks.MockJWT
}

func newService(t *testing.T) (service.Auth, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		users:    userMocks.NewMockUser(ctrl),
		students: studentMocks.NewMockStudent(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
	}

	return service.New(m.users, m.students, &config.Config{}, otelMocks.NewOtel(), m.jwt), m
}

func hashed(t *testing.T, plain string) string {
	t.Helper()

	h, err := password.Hash(plain)
	require.NoError(t, err)

	return h
}

func TestAuthService_Login(t *testing.T) {
	pair := &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}
	secret := hashed(t, "Secret@123")

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(m mocks)
		wantErr   error
		anyErr    bool
		check     func(t *testing.T, res dto.LoginResponse)
	}{
		{
			name: "student login resolves profile id",
			req:  dto.LoginRequest{Email: "asha@hostel.test", Password: "Secret@123"},
			setupMock: func(m mocks) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{
					ID: "u-1", Email: "asha@hostel.test", Password: secret, Role: constant.RoleStudent, Active: true,
				}, nil)
				m.students.EXPECT().Get(gomock.Any(), gomock.Any(), studentModel.FieldID).Return(studentModel.Student{ID: "s-1"}, nil)
				m.jwt.EXPECT().GenerateTokenPair(gomock.Any(), jwt.Subject{
					UserID: "u-1", Email: "asha@hostel.test", Role: constant.RoleStudent, StudentID: "s-1",
				}).Return(pair, nil)
				m.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, userModel.FieldLastLogin)

						return nil
					})
			},
			check: func(t *testing.T, res dto.LoginResponse) {
				t.Helper()
				assert.Equal(t, "access", res.AccessToken)
				assert.Equal(t, constant.RoleStudent, res.Role)
				assert.Equal(t, "s-1", res.StudentID)
			},
		},
		{
			name: "admin login skips profile and survives last login failure",
			req:  dto.LoginRequest{Email: "warden@hostel.test", Password: "Secret@123"},
			setupMock: func(m mocks) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{
					ID: "u-2", Email: "warden@hostel.test", Password: secret, Role: constant.RoleAdmin, Active: true,
				}, nil)
				m.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(pair, nil)
				m.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
			},
			check: func(t *testing.T, res dto.LoginResponse) {
				t.Helper()
				assert.Equal(t, constant.RoleAdmin, res.Role)
				assert.Empty(t, res.StudentID)
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "ghost@hostel.test", Password: "Secret@123"},
			setupMock: func(m mocks) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr: userModel.ErrBadCredentials,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "asha@hostel.test", Password: "Wrong@123"},
			setupMock: func(m mocks) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "u-1", Password: secret, Active: true}, nil)
			},
			wantErr: userModel.ErrBadCredentials,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "asha@hostel.test", Password: "Secret@123"},
			setupMock: func(m mocks) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "u-1", Password: secret}, nil)
			},
			wantErr: userModel.ErrUserInactive,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Email: "asha@hostel.test", Password: "Secret@123"},
			setupMock: func(m mocks) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("connection refused"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.Login(context.Background(), tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				tt.check(t, res)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("rotates pair", func(t *testing.T) {
		svc, m := newService(t)

		m.jwt.EXPECT().RefreshTokens(gomock.Any(), "refresh").Return(&jwt.TokenPair{AccessToken: "next", RefreshToken: "next-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "next", res.AccessToken)
		assert.Equal(t, "next-refresh", res.RefreshToken)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		svc, m := newService(t)

		m.jwt.EXPECT().RefreshTokens(gomock.Any(), "stale").Return(nil, errors.New("token is expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "stale"})

		assert.ErrorIs(t, err, model.ErrInvalidRefreshToken)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	current := hashed(t, "Secret@123")

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(m mocks)
		wantErr   error
		anyErr    bool
	}{
		{
			name: "updates hash",
			req:  dto.ChangePasswordRequest{CurrentPassword: "Secret@123", NewPassword: "Better@456"},
			setupMock: func(m mocks) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "u-1", Password: current}, nil)
				m.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						h, _ := fields[userModel.FieldPassword].(string)
						assert.NoError(t, password.Verify("Better@456", h))

						return nil
					})
			},
		},
		{
			name: "unknown user",
			req:  dto.ChangePasswordRequest{CurrentPassword: "Secret@123", NewPassword: "Better@456"},
			setupMock: func(m mocks) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr: userModel.ErrUserNotFound,
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "Nope@123", NewPassword: "Better@456"},
			setupMock: func(m mocks) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "u-1", Password: current}, nil)
			},
			wantErr: model.ErrWrongPassword,
		},
		{
			name: "weak new password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "Secret@123", NewPassword: "short"},
			setupMock: func(m mocks) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "u-1", Password: current}, nil)
			},
			anyErr: true,
		},
		{
			name: "update fails",
			req:  dto.ChangePasswordRequest{CurrentPassword: "Secret@123", NewPassword: "Better@456"},
			setupMock: func(m mocks) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "u-1", Password: current}, nil)
				m.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			err := svc.ChangePassword(context.Background(), tt.req, "u-1")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
