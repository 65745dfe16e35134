package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lms-hub/internal/domain"
	"lms-hub/internal/usecase"
	appmiddleware "lms-hub/middleware"
	"lms-hub/utils/logger"
)

type navigateRequest struct {
	View string `json:"view" validate:"required,view_key"`
}

type menuResponse struct {
	Role  domain.Role       `json:"role"`
	Items []domain.MenuItem `json:"items"`
}

// PageHandler serves navigation and screen rendering.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Menu processes GET /api/menu.
func (h *PageHandler) Menu(c echo.Context) error {
	role, items, err := shellFrom(c).Menu()
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, menuResponse{Role: role, Items: items})
}

// Navigate processes POST /api/navigate and returns the resulting page.
func (h *PageHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return mapDomainError(domain.ErrInvalidRequest)
	}
	if err := c.Validate(&req); err != nil {
		return mapDomainError(err)
	}
	return h.open(c, domain.ViewKey(req.View))
}

// Current processes GET /api/page. Signed-out callers get the login screen.
func (h *PageHandler) Current(c echo.Context) error {
	q, err := bindQuery(c)
	if err != nil {
		return err
	}
	page := shellFrom(c).Render(c.Request().Context(), q)
	return h.write(c, page)
}

// View processes GET /api/views/:key.
func (h *PageHandler) View(c echo.Context) error {
	return h.open(c, domain.ViewKey(c.Param("key")))
}

func (h *PageHandler) open(c echo.Context, key domain.ViewKey) error {
	q, err := bindQuery(c)
	if err != nil {
		return err
	}
	page, err := shellFrom(c).Open(c.Request().Context(), key, q)
	if err != nil {
		return mapDomainError(err)
	}
	return h.write(c, page)
}

func (h *PageHandler) write(c echo.Context, page usecase.Page) error {
	ctx := c.Request().Context()
	if role, ok := ctx.Value(logger.RoleKey).(string); ok {
		c.Set(appmiddleware.SpanRoleKey, role)
	}
	c.Set(appmiddleware.SpanScreenKey, string(page.Screen))

	ctx = logger.WithView(ctx, string(page.View))
	ctx = logger.WithScreen(ctx, string(page.Screen))
	logger.GlobalContext.WithContext(ctx).Debug("page served", "fallback", page.Fallback)

	return c.JSON(http.StatusOK, page)
}

func bindQuery(c echo.Context) (domain.ScreenQuery, error) {
	var q domain.ScreenQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return q, mapDomainError(domain.ErrInvalidRequest)
	}
	return q, nil
}
