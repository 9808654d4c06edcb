package model

const (
	CacheCode     = "otp:code"
	CacheAttempts = "otp:attempts"
	CacheVerified = "otp:verified"

	MaxAttempts   = 5
	VerifiedValue = "1"
)

type VerifyRequest struct {
	Code string `json:"code" validate:"required,numeric,min=4,max=10"`
}
