package handler

import (
	"errors"
	"net/http"

	apperrors "teesheet-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain sentinels to HTTP status codes. Anything not in
// the taxonomy is a 500; handlers supply the public message themselves.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrMissingToken),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrInactiveOrUnknown):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrTenantMismatch), errors.Is(err, apperrors.ErrInsufficientRole):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondRepoError renders a repository failure. Not-found and conflict
// keep their specific messages; everything else collapses to fallback
// with the detail logged server-side.
func respondRepoError(c echo.Context, err error, notFoundMsg, fallbackMsg string) error {
	status := statusFor(err)
	switch status {
	case http.StatusNotFound:
		return respondError(c, status, notFoundMsg)
	case http.StatusConflict:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return respondError(c, status, appErr.Message)
		}
		return respondError(c, status, fallbackMsg)
	default:
		c.Logger().Errorf("%s: %v", fallbackMsg, err)
		return respondError(c, http.StatusInternalServerError, fallbackMsg)
	}
}
