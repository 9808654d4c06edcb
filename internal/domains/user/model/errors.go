package model

import (
	"net/http"

	"hostel/shared/failure"
)

var (
	ErrUserNotFound   = failure.New(http.StatusNotFound, "user not found")
	ErrEmailTaken     = failure.New(http.StatusConflict, "email already registered")
	ErrUserInactive   = failure.New(http.StatusForbidden, "user account is deactivated")
	ErrBadCredentials = failure.New(http.StatusUnauthorized, "invalid email or password")
)
