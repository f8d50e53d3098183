package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quickbasket/commerce-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": …, "success": false}.
//
// Handlers map flow-specific statuses inline (e.g. biometric login's 403 for
// an unknown user); this handler is the fallback for everything they return.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg, Success: false})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "Missing required fields"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User already exists, you can login"
	case errors.Is(err, domain.ErrAuthFailed):
		return http.StatusForbidden, "Auth failed: email or password is wrong"
	case errors.Is(err, domain.ErrBiometricNotEnabled):
		return http.StatusForbidden, "Biometric authentication not enabled for this user"
	case errors.Is(err, domain.ErrBiometricFailed):
		return http.StatusForbidden, "Biometric authentication failed"
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		return http.StatusForbidden, "Invalid refresh token"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, domain.ErrCartItemNotFound):
		return http.StatusNotFound, "Cart item not found"
	case errors.Is(err, domain.ErrCartEmpty):
		return http.StatusNotFound, "Cart is empty"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
