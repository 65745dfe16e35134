package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newLimitedEcho(rl *RateLimiter) *echo.Echo {
	e := echo.New()
	e.POST("/api/login", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, rl.Middleware())
	return e
}

func postLogin(e *echo.Echo, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	if remote != "" {
		req.RemoteAddr = remote
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	e := newLimitedEcho(NewRateLimiter(rate.Limit(10), 10))
	assert.Equal(t, http.StatusOK, postLogin(e, "").Code)
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	e := newLimitedEcho(NewRateLimiter(rate.Limit(1), 1))

	assert.Equal(t, http.StatusOK, postLogin(e, "").Code)

	rec := postLogin(e, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_DifferentIPsGetSeparateLimits(t *testing.T) {
	e := newLimitedEcho(NewRateLimiter(rate.Limit(1), 1))

	assert.Equal(t, http.StatusOK, postLogin(e, "1.2.3.4:1234").Code)
	assert.Equal(t, http.StatusOK, postLogin(e, "5.6.7.8:5678").Code)
	assert.Equal(t, http.StatusTooManyRequests, postLogin(e, "1.2.3.4:1234").Code)
}

func TestRateLimiter_WithKey(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1).WithKey(func(echo.Context) string { return "shared" })
	e := newLimitedEcho(rl)

	assert.Equal(t, http.StatusOK, postLogin(e, "1.2.3.4:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, postLogin(e, "5.6.7.8:5678").Code)
}

func TestNewLoginRateLimiter(t *testing.T) {
	t.Run("burst capped", func(t *testing.T) {
		e := newLimitedEcho(NewLoginRateLimiter(10))
		for range loginRateBurst {
			assert.Equal(t, http.StatusOK, postLogin(e, "").Code)
		}
		assert.Equal(t, http.StatusTooManyRequests, postLogin(e, "").Code)
	})

	t.Run("disabled", func(t *testing.T) {
		e := newLimitedEcho(NewLoginRateLimiter(0))
		for range 20 {
			assert.Equal(t, http.StatusOK, postLogin(e, "").Code)
		}
	})
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	now := time.Now()
	rl.limiter("old", now.Add(-2*limiterIdle))
	rl.limiter("fresh", now)

	assert.Equal(t, 1, rl.sweep(now))
}

func TestRateLimiter_RunStopsOnCancel(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
