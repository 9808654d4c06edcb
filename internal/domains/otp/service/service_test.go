package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostel/config"
	otelMocks "hostel/infras/otel/mocks"
	notifMocks "hostel/internal/domains/notification/mocks"
	notifModel "hostel/internal/domains/notification/model"
	"hostel/internal/domains/otp/model"
	"hostel/internal/domains/otp/service"
	studentMocks "hostel/internal/domains/student/mocks"
	studentModel "hostel/internal/domains/student/model"
	"hostel/shared/cache"
	cacheMocks "hostel/shared/cache/mocks"
)

type deps struct {
	cache    *cacheMocks.MockRedisCache
	students *studentMocks.MockStudent
	sender   *notifMocks.MockSender
}

func newService(t *testing.T) (service.OTP, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		students: studentMocks.NewMockStudent(ctrl),
		sender:   notifMocks.NewMockSender(ctrl),
	}

	cfg := &config.Config{}
	cfg.OTP.Length = 6
	cfg.OTP.TTLSeconds = 600
	cfg.OTP.VerifiedTTLSeconds = 900

	return service.New(d.cache, d.students, d.sender, cfg, otelMocks.NewOtel()), d
}

func stored(code string) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, value any) error {
		*value.(*string) = code

		return nil
	}
}

func TestOTPService_Request(t *testing.T) {
	student := studentModel.Student{ID: "s-1", UserID: "u-1", Email: "asha@hostel.test", Name: "Asha Rao"}

	tests := []struct {
		name      string
		setupMock func(d deps)
		wantErr   error
		anyErr    bool
	}{
		{
			name: "stores a six digit code and emails it",
			setupMock: func(d deps) {
				var code string

				d.students.EXPECT().Get(gomock.Any(), gomock.Any()).Return(student, nil)
				d.cache.EXPECT().Get(gomock.Any(), "otp:attempts:u-1", gomock.Any()).Return(cache.Nil)
				d.cache.EXPECT().Save(gomock.Any(), "otp:code:u-1", gomock.Any(), 600).DoAndReturn(
					func(_ context.Context, _ string, value any, _ int) error {
						code, _ = value.(string)
						assert.Regexp(t, `^\d{6}$`, code)

						return nil
					})
				d.cache.EXPECT().Delete(gomock.Any(), "otp:attempts:u-1").Return(nil)
				d.sender.EXPECT().Send(gomock.Any(), notifModel.KindOTP, "asha@hostel.test", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ notifModel.Kind, _ string, fields map[string]string) error {
						assert.Equal(t, code, fields[notifModel.FieldCode])
						assert.Equal(t, "10", fields[notifModel.FieldTTL])

						return nil
					})
			},
		},
		{
			name: "delivery failure still succeeds",
			setupMock: func(d deps) {
				d.students.EXPECT().Get(gomock.Any(), gomock.Any()).Return(student, nil)
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(stored("2"))
				d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				d.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
		},
		{
			name: "admin without student profile",
			setupMock: func(d deps) {
				d.students.EXPECT().Get(gomock.Any(), gomock.Any()).Return(studentModel.Student{}, nil)
			},
			wantErr: studentModel.ErrNotStudent,
		},
		{
			name: "locked out until the attempts counter expires",
			setupMock: func(d deps) {
				d.students.EXPECT().Get(gomock.Any(), gomock.Any()).Return(student, nil)
				d.cache.EXPECT().Get(gomock.Any(), "otp:attempts:u-1", gomock.Any()).DoAndReturn(stored("5"))
			},
			wantErr: model.ErrTooManyAttempts,
		},
		{
			name: "redis down",
			setupMock: func(d deps) {
				d.students.EXPECT().Get(gomock.Any(), gomock.Any()).Return(student, nil)
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("dial tcp"))
				d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("dial tcp"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			err := svc.Request(context.Background(), "u-1")

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

func TestOTPService_Verify(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		setupMock func(d deps)
		wantErr   error
	}{
		{
			name: "matching code sets the marker",
			code: "042917",
			setupMock: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), "otp:code:u-1", gomock.Any()).DoAndReturn(stored("042917"))
				d.cache.EXPECT().Increment(gomock.Any(), "otp:attempts:u-1", 600).Return(int64(1), nil)
				d.cache.EXPECT().Delete(gomock.Any(), "otp:code:u-1").Return(nil)
				d.cache.EXPECT().Delete(gomock.Any(), "otp:attempts:u-1").Return(nil)
				d.cache.EXPECT().Save(gomock.Any(), "otp:verified:u-1", model.VerifiedValue, 900).Return(nil)
			},
		},
		{
			name: "no active code",
			code: "042917",
			setupMock: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
			},
			wantErr: model.ErrOTPNotFound,
		},
		{
			name: "wrong code keeps the stored one",
			code: "111111",
			setupMock: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(stored("042917"))
				d.cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(2), nil)
			},
			wantErr: model.ErrInvalidOTP,
		},
		{
			name: "too many attempts keeps the code and counter",
			code: "042917",
			setupMock: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(stored("042917"))
				d.cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(model.MaxAttempts+1), nil)
				d.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: model.ErrTooManyAttempts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			err := svc.Verify(context.Background(), "u-1", tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestOTPService_IsVerified(t *testing.T) {
	t.Run("marker present", func(t *testing.T) {
		svc, d := newService(t)
		d.cache.EXPECT().Get(gomock.Any(), "otp:verified:u-1", gomock.Any()).DoAndReturn(stored(model.VerifiedValue))

		ok, err := svc.IsVerified(context.Background(), "u-1")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("marker missing", func(t *testing.T) {
		svc, d := newService(t)
		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)

		ok, err := svc.IsVerified(context.Background(), "u-1")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("clear deletes the marker", func(t *testing.T) {
		svc, d := newService(t)
		d.cache.EXPECT().Delete(gomock.Any(), "otp:verified:u-1").Return(nil)

		assert.NoError(t, svc.ClearVerified(context.Background(), "u-1"))
	})
}
