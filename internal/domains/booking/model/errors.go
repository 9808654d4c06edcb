package model

import (
	"net/http"

	"hostel/shared/failure"
)

var (
	ErrBookingNotFound   = failure.New(http.StatusNotFound, "booking request not found")
	ErrRoomUnavailable   = failure.New(http.StatusConflict, "room has no available seats")
	ErrAlreadyConfirmed  = failure.New(http.StatusConflict, "student already has a confirmed room")
	ErrInvalidTransition = failure.New(http.StatusConflict, "booking request is no longer pending")
	ErrOTPRequired       = failure.New(http.StatusForbidden, "verify the one-time code before booking")
)
