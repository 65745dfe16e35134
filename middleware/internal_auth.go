package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const internalAuthHeader = "X-Internal-Auth"

// InternalAuth guards operator endpoints such as /metrics with a shared
// secret sent either in X-Internal-Auth or as a bearer token.
func InternalAuth(sharedSecret string) echo.MiddlewareFunc {
	secret := []byte(sharedSecret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := []byte(presentedSecret(c.Request()))
			if len(provided) == 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing internal auth")
			}
			if subtle.ConstantTimeCompare(provided, secret) != 1 {
				return echo.NewHTTPError(http.StatusForbidden, "invalid internal auth")
			}
			return next(c)
		}
	}
}

func presentedSecret(r *http.Request) string {
	if v := r.Header.Get(internalAuthHeader); v != "" {
		return v
	}
	if token, ok := strings.CutPrefix(r.Header.Get(echo.HeaderAuthorization), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
