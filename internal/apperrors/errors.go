package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrForbidden indicates that the caller lacks permission for the resource.
var ErrForbidden = errors.New("access denied")

// ErrUnauthorized indicates that no valid identity was presented.
var ErrUnauthorized = errors.New("unauthorized")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRefreshTokenExpired indicates that the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError carries an HTTP status code and a caller-safe message alongside
// the underlying cause. The cause is for logs only and must never be
// serialized into a response body.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match AppErrors against the package sentinels by status code.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(statusCode int, message string, err error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError.
func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewForbiddenError creates a 403 AppError.
func NewForbiddenError(message string) *AppError {
	return &AppError{StatusCode: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

// NewConflictError creates a 409 AppError.
func NewConflictError(message string) *AppError {
	return &AppError{StatusCode: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError creates a 400 AppError.
func NewValidationFailedError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewInternalError wraps an infrastructure failure. The cause stays internal;
// callers only ever see the generic message.
func NewInternalError(err error) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: "Internal server error", Err: err}
}

// NewIntegrityError reports a mutation that affected an unexpected number of
// rows. The detailed message is kept for logs; the response side shows the
// generic internal error message.
func NewIntegrityError(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: "Internal server error", Err: errors.New(message)}
}
