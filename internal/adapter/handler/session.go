package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lms-hub/internal/domain"
)

// SessionHandler reports the authentication state of the caller.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

type sessionUser struct {
	*domain.Identity
	Initials string `json:"initials"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *sessionUser `json:"user,omitempty"`
}

// Handle processes GET /api/session.
func (h *SessionHandler) Handle(c echo.Context) error {
	session := shellFrom(c).Session()
	if !session.Authenticated {
		return c.JSON(http.StatusOK, sessionResponse{})
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		User:          &sessionUser{Identity: session.Identity, Initials: session.Identity.Initials()},
	})
}
