package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidPageParam        = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
	InvalidLimitParam       = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
)

// New returns a Failure with the given code and message. Domain packages use it to declare
// sentinel errors that carry their HTTP mapping.
func New(code int, msg string) *Failure {
	return &Failure{Code: code, Message: msg}
}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Is reports whether target is a Failure with the same code and message, so two failures built
// from the same constructor arguments compare equal under errors.Is.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Code == other.Code && e.Message == other.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return New(http.StatusNotImplemented, methodName)
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return New(http.StatusNotFound, entityName)
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return New(http.StatusConflict, message)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

// TooManyRequests is returned when a caller exceeds a per-key attempt budget.
func TooManyRequests(msg string) error {
	return New(http.StatusTooManyRequests, msg)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
