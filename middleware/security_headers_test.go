package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveWithHeaders(hsts bool, method string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(SecurityHeaders(hsts))
	e.Add(method, "/api/session", func(c echo.Context) error {
		return c.String(http.StatusCreated, "created")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, "/api/session", nil))
	return rec
}

func TestSecurityHeaders_SetsHeaders(t *testing.T) {
	rec := serveWithHeaders(false, http.MethodGet)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", rec.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "same-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestSecurityHeaders_HSTSWhenSecure(t *testing.T) {
	rec := serveWithHeaders(true, http.MethodGet)
	assert.Equal(t, "max-age=63072000; includeSubDomains", rec.Header().Get("Strict-Transport-Security"))
}

func TestSecurityHeaders_DoesNotBlockRequest(t *testing.T) {
	rec := serveWithHeaders(false, http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "created", rec.Body.String())
}
