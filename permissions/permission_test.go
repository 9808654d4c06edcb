package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
		wantEmpty bool
	}{
		{
			name:     "login is public",
			path:     "/v1/auth/login",
			method:   "POST",
			wantSkip: true,
		},
		{
			name:      "mounted index route with trailing slash",
			path:      "/v1/rooms/",
			method:    "POST",
			wantRoles: []string{"superadmin", "admin"},
		},
		{
			name:      "mounted index route without trailing slash",
			path:      "/v1/rooms",
			method:    "POST",
			wantRoles: []string{"superadmin", "admin"},
		},
		{
			name:      "students can browse available rooms",
			path:      "/v1/rooms/available",
			method:    "GET",
			wantRoles: []string{"superadmin", "admin", "student"},
		},
		{
			name:      "method mismatch",
			path:      "/v1/auth/login",
			method:    "DELETE",
			wantEmpty: true,
		},
		{
			name:      "unknown route",
			path:      "/v1/unknown",
			method:    "GET",
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := data.FindPermissions(tt.path, tt.method)

			if tt.wantEmpty {
				assert.Equal(t, permissions.Permission{}, got)

				return
			}

			assert.Equal(t, tt.wantSkip, got.Skip)

			if tt.wantRoles != nil {
				assert.ElementsMatch(t, tt.wantRoles, got.Permissions)
			}
		})
	}
}
