package model

import (
	"net/http"

	"hostel/shared/failure"
)

var (
	ErrPaymentNotFound = failure.New(http.StatusNotFound, "payment not found")
	ErrPaymentExpired  = failure.New(http.StatusBadRequest, "payment verification window has expired")
	ErrPaymentNoRoom   = failure.New(http.StatusBadRequest, "payment is not linked to a room")
	ErrPaymentSettled  = failure.New(http.StatusConflict, "payment is already settled")
)
