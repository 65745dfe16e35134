package handler

import "github.com/labstack/echo/v4"

// API groups the dashboard handlers for route registration.
type API struct {
	Shells  *Shells
	Auth    *AuthHandler
	Session *SessionHandler
	Page    *PageHandler
	Roster  *RosterHandler
	Health  *HealthHandler
}

// Register mounts /health and the /api group. loginMiddleware only wraps
// POST /api/login.
func (a API) Register(e *echo.Echo, loginMiddleware ...echo.MiddlewareFunc) {
	e.GET("/health", a.Health.Handle)

	api := e.Group("/api")
	api.GET("/roster/demo", a.Roster.Demo)

	shelled := api.Group("", a.Shells.Middleware())
	shelled.POST("/login", a.Auth.Login, loginMiddleware...)
	shelled.POST("/logout", a.Auth.Logout)
	shelled.GET("/session", a.Session.Handle)
	shelled.GET("/menu", a.Page.Menu)
	shelled.POST("/navigate", a.Page.Navigate)
	shelled.GET("/page", a.Page.Current)
	shelled.GET("/views/:key", a.Page.View)
}
