package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	limiterIdle    = 5 * time.Minute
	limiterSweep   = 3 * time.Minute
	loginRateBurst = 3
)

// KeyFunc picks the bucket a request is counted against.
type KeyFunc func(c echo.Context) string

// RealIPKey buckets requests by client address.
func RealIPKey(c echo.Context) string { return c.RealIP() }

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per key.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    rate.Limit
	burst   int
	key     KeyFunc
}

func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    r,
		burst:   burst,
		key:     RealIPKey,
	}
}

// NewLoginRateLimiter allows perMinute login attempts per client.
// A non-positive perMinute disables limiting.
func NewLoginRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		return NewRateLimiter(rate.Inf, 0)
	}
	return NewRateLimiter(rate.Limit(float64(perMinute)/60.0), min(perMinute, loginRateBurst))
}

// WithKey replaces the bucket key function.
func (rl *RateLimiter) WithKey(fn KeyFunc) *RateLimiter {
	rl.key = fn
	return rl
}

func (rl *RateLimiter) limiter(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if b, ok := rl.buckets[key]; ok {
		b.lastSeen = now
		return b.limiter
	}
	b := &bucket{limiter: rate.NewLimiter(rl.rate, rl.burst), lastSeen: now}
	rl.buckets[key] = b
	return b.limiter
}

func (rl *RateLimiter) sweep(now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > limiterIdle {
			delete(rl.buckets, key)
		}
	}
	return len(rl.buckets)
}

// Run drops idle buckets until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(limiterSweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.sweep(now)
		}
	}
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rl.rate == rate.Inf {
				return next(c)
			}
			if !rl.limiter(rl.key(c), time.Now()).Allow() {
				retryAfter := max(int(1.0/float64(rl.rate)), 1)
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts, try again later")
			}
			return next(c)
		}
	}
}
