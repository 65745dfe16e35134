package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"lms-hub/internal/domain"
	"lms-hub/utils/validator"
)

// mapDomainError converts a domain error into an appropriate echo.HTTPError.
func mapDomainError(err error) *echo.HTTPError {
	var verr *validator.ValidationError

	switch {
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, verr.Errors)

	case errors.Is(err, domain.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")

	case errors.Is(err, domain.ErrNotAuthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")

	case errors.Is(err, domain.ErrInvalidRequest):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")

	case errors.Is(err, domain.ErrStorageUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "session storage unavailable")

	case errors.Is(err, domain.ErrRateLimited):
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
