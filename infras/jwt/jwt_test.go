package jwt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel/config"
	"hostel/infras/jwt"
	"hostel/infras/otel/mocks"
)

func newService(accessMin, refreshMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "hostel"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = accessMin
	cfg.JWT.RefreshExpireMin = refreshMin

	return jwt.New(cfg, mocks.NewOtel())
}

func TestGenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	svc := newService(15, 60)

	subject := jwt.Subject{UserID: "u1", Email: "asha@example.com", Role: "student", StudentID: "s1"}

	pair, err := svc.GenerateTokenPair(ctx, subject)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Identity())

	_, err = svc.ValidateToken(ctx, pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken(ctx, pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	ctx := context.Background()
	svc := newService(-1, -1)

	pair, err := svc.GenerateTokenPair(ctx, jwt.Subject{UserID: "u1", Email: "a@b.c", Role: "admin"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newService(15, 60).ValidateToken(context.Background(), "not.a.token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestRefreshTokens(t *testing.T) {
	ctx := context.Background()
	svc := newService(15, 60)

	subject := jwt.Subject{UserID: "u1", Email: "warden@example.com", Role: "admin"}

	pair, err := svc.GenerateTokenPair(ctx, subject)
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(ctx, pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Identity())

	_, err = svc.RefreshTokens(ctx, pair.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		token   string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def", token: "abc.def"},
		{name: "empty", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "bearer without token", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.token, token)
		})
	}
}
