package http

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "teesheet-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

// CustomHTTPErrorHandler handles all errors returned by handlers and
// middleware. It maps sentinel errors to HTTP status codes, sanitizes
// internal errors, and logs with request context.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	} else {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			code = http.StatusNotFound
			message = "Resource not found"
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			code = http.StatusUnauthorized
			message = "Invalid credentials"
		case errors.Is(err, apperrors.ErrMissingToken):
			code = http.StatusUnauthorized
			message = "Authorization token required"
		case errors.Is(err, apperrors.ErrInvalidToken):
			code = http.StatusUnauthorized
			message = "Invalid or expired token"
		case errors.Is(err, apperrors.ErrInactiveOrUnknown):
			code = http.StatusUnauthorized
			message = "Invalid or inactive user"
		case errors.Is(err, apperrors.ErrTenantMismatch):
			code = http.StatusForbidden
			message = "User does not belong to this golf course"
		case errors.Is(err, apperrors.ErrInsufficientRole):
			code = http.StatusForbidden
			message = "Insufficient permissions"
		case errors.Is(err, apperrors.ErrBadRequest):
			code = http.StatusBadRequest
			message = "Bad request"
		case errors.Is(err, apperrors.ErrValidation):
			code = http.StatusBadRequest
			message = "Validation error"
		case errors.Is(err, apperrors.ErrConflict):
			code = http.StatusConflict
			message = "Resource already exists"
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			// Client errors may carry their own message; 5xx never leaks
			if code < 500 {
				message = appErr.Message
			}
		}
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = "unknown"
	}

	if code >= 500 {
		c.Logger().Errorf("internal_server_error request_id=%s status=%d error=%v", requestID, code, err)
		message = "Internal server error"
	} else {
		c.Logger().Warnf("client_error request_id=%s status=%d error=%v", requestID, code, err)
	}

	if err := c.JSON(code, map[string]interface{}{
		"error":      message,
		"request_id": requestID,
	}); err != nil {
		c.Logger().Error(err)
	}
}
