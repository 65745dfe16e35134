package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lms-hub/internal/fixture"
)

type demoRosterResponse struct {
	Accounts []fixture.DemoAccount `json:"accounts"`
	Password string                `json:"password"`
}

// RosterHandler exposes the quick-login accounts of the login screen.
type RosterHandler struct {
	accounts []fixture.DemoAccount
	password string
}

func NewRosterHandler(accounts []fixture.DemoAccount, password string) *RosterHandler {
	return &RosterHandler{accounts: accounts, password: password}
}

// Demo processes GET /api/roster/demo.
func (h *RosterHandler) Demo(c echo.Context) error {
	return c.JSON(http.StatusOK, demoRosterResponse{Accounts: h.accounts, Password: h.password})
}
