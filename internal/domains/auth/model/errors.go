package model

import (
	"net/http"

	"hostel/shared/failure"
)

var (
	ErrInvalidRefreshToken = failure.New(http.StatusUnauthorized, "invalid refresh token")
	ErrWrongPassword       = failure.New(http.StatusBadRequest, "current password is incorrect")
)
