package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lms-hub/internal/domain"
	"lms-hub/utils/logger"
)

// LoginRequest is the body of POST /api/login. Empty fields are not a
// request error: they simply do not match any account.
type LoginRequest struct {
	Email    string `json:"email" validate:"max=254"`
	Password string `json:"password" validate:"max=128"`
}

type loginResponse struct {
	OK   bool              `json:"ok"`
	User *domain.Identity  `json:"user"`
	Menu []domain.MenuItem `json:"menu"`
}

// AuthHandler handles sign-in and sign-out.
type AuthHandler struct {
	shells *Shells
}

func NewAuthHandler(shells *Shells) *AuthHandler {
	return &AuthHandler{shells: shells}
}

// Login processes POST /api/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return mapDomainError(domain.ErrInvalidRequest)
	}
	if err := c.Validate(&req); err != nil {
		return mapDomainError(err)
	}

	shell := shellFrom(c)
	ctx := c.Request().Context()

	identity, err := shell.Login(ctx, req.Email, req.Password)
	if err != nil {
		logger.GlobalContext.LogError(ctx, "login", err)
		return mapDomainError(err)
	}
	if identity == nil {
		return mapDomainError(domain.ErrInvalidCredentials)
	}

	ctx = logger.WithUserID(ctx, identity.ID)
	ctx = logger.WithRole(ctx, string(identity.Role))
	logger.GlobalContext.WithContext(ctx).Info("user signed in")

	return c.JSON(http.StatusOK, loginResponse{OK: true, User: identity, Menu: shell.MenuFor(identity.Role)})
}

// Logout processes POST /api/logout. It always succeeds and frees the
// browser's shell.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	shellFrom(c).Logout(ctx)
	h.shells.Release(c)
	logger.GlobalContext.WithContext(ctx).Info("user signed out")
	return c.NoContent(http.StatusNoContent)
}
