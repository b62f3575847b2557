package errors

import (
	"errors"
	"fmt"
)

// Domain errors - Sentinel errors for use with errors.Is()
var (
	ErrNotFound           = errors.New("resource not found")
	ErrBadRequest         = errors.New("bad request")
	ErrConflict           = errors.New("resource already exists")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation error")

	// Auth taxonomy. Every authentication failure maps onto exactly one of
	// these before it leaves the resolver.
	ErrMissingToken      = errors.New("authorization token required")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrInactiveOrUnknown = errors.New("invalid or inactive user")
	ErrTenantMismatch    = errors.New("user does not belong to this golf course")
	ErrInsufficientRole  = errors.New("insufficient permissions")
)

// AppError carries a stable code and a caller-visible message around a
// sentinel error.
type AppError struct {
	Code    string
	Message string
	Err     error
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

// Constructors
func NotFound(msg string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: msg, Err: ErrNotFound}
}

func BadRequest(msg string) *AppError {
	return &AppError{Code: "BAD_REQUEST", Message: msg, Err: ErrBadRequest}
}

func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, Err: ErrConflict}
}

func InternalServer(msg string, err error) *AppError {
	return &AppError{Code: "INTERNAL_SERVER_ERROR", Message: msg, Err: err}
}

func InvalidCredentials() *AppError {
	return &AppError{Code: "INVALID_CREDENTIALS", Message: "invalid credentials", Err: ErrInvalidCredentials}
}

func MissingToken(msg string) *AppError {
	return &AppError{Code: "MISSING_TOKEN", Message: msg, Err: ErrMissingToken}
}

func InvalidToken(msg string, err error) *AppError {
	return &AppError{Code: "INVALID_TOKEN", Message: msg, Err: fmt.Errorf("%w: %w", ErrInvalidToken, err)}
}

func InactiveOrUnknown(msg string) *AppError {
	return &AppError{Code: "INACTIVE_OR_UNKNOWN", Message: msg, Err: ErrInactiveOrUnknown}
}

func TenantMismatch(msg string) *AppError {
	return &AppError{Code: "TENANT_MISMATCH", Message: msg, Err: ErrTenantMismatch}
}

func InsufficientRole(msg string) *AppError {
	return &AppError{Code: "INSUFFICIENT_ROLE", Message: msg, Err: ErrInsufficientRole}
}
