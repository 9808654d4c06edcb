package model

import (
	"net/http"

	"hostel/shared/failure"
)

var (
	ErrStudentNotFound = failure.New(http.StatusNotFound, "student not found")
	ErrNotStudent      = failure.New(http.StatusForbidden, "no student profile for this account")
)
