package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lms-hub/internal/usecase"
	"lms-hub/utils/logger"
)

// SessionCookie names the cookie that binds a browser to its shell.
const SessionCookie = "lms_sid"

const (
	shellContextKey = "lms.shell"
	sidContextKey   = "lms.sid"
)

// ShellCache is the slice of the shell cache the handlers need.
type ShellCache interface {
	GetOrCreate(sid string, create func() *usecase.AppShell) (*usecase.AppShell, bool)
	Delete(sid string)
}

// ShellFactory builds a fresh shell whose storage is scoped to sid.
type ShellFactory func(sid string) *usecase.AppShell

// Shells maps browser cookies to AppShells.
type Shells struct {
	cache  ShellCache
	build  ShellFactory
	secure bool
	maxAge time.Duration
}

func NewShells(c ShellCache, build ShellFactory, secureCookie bool, maxAge time.Duration) *Shells {
	return &Shells{cache: c, build: build, secure: secureCookie, maxAge: maxAge}
}

// Middleware attaches the caller's shell to the echo context, issuing a new
// sid cookie when none or a malformed one was sent. A shell seen for the
// first time restores the cached identity.
func (s *Shells) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := s.sid(c)
			req := c.Request()
			ctx := req.Context()

			shell, created := s.cache.GetOrCreate(sid, func() *usecase.AppShell {
				return s.build(sid)
			})
			session := shell.Session()
			if created {
				session = shell.Boot(ctx)
			}

			if session.Authenticated {
				ctx = logger.WithUserID(ctx, session.Identity.ID)
				ctx = logger.WithRole(ctx, string(session.Identity.Role))
				c.SetRequest(req.WithContext(ctx))
			}

			c.Set(shellContextKey, shell)
			c.Set(sidContextKey, sid)
			return next(c)
		}
	}
}

func (s *Shells) sid(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}

	sid := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.maxAge.Seconds()),
	})
	return sid
}

// Release drops the caller's shell from memory. The next request with the
// same cookie boots a fresh shell from storage.
func (s *Shells) Release(c echo.Context) {
	if sid, ok := c.Get(sidContextKey).(string); ok {
		s.cache.Delete(sid)
	}
}

func shellFrom(c echo.Context) *usecase.AppShell {
	shell, _ := c.Get(shellContextKey).(*usecase.AppShell)
	return shell
}
