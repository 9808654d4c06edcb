package model

import (
	"net/http"

	"hostel/shared/failure"
)

var (
	ErrOTPNotFound     = failure.New(http.StatusBadRequest, "No active OTP found. Please request a new one.")
	ErrInvalidOTP      = failure.New(http.StatusBadRequest, "Invalid OTP")
	ErrTooManyAttempts = failure.New(http.StatusTooManyRequests, "too many OTP attempts, try again later")
)
