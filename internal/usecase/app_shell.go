package usecase

import (
	"context"
	"log/slog"
	"sync"

	"lms-hub/internal/domain"
	"lms-hub/metrics"
)

// Page is a rendered screen together with the navigation state.
type Page struct {
	Authenticated bool              `json:"authenticated"`
	View          domain.ViewKey    `json:"view"`
	Screen        domain.ScreenID   `json:"screen"`
	Fallback      bool              `json:"fallback"`
	Menu          []domain.MenuItem `json:"menu"`
	Content       any               `json:"content"`
}

// AppShell owns one SessionStore and one view selection. All mutations go
// through it and are serialized by its mutex.
type AppShell struct {
	store    *SessionStore
	router   *ViewRouter
	composer domain.ScreenComposer
	logger   *slog.Logger

	mu     sync.Mutex
	booted bool
	view   domain.ViewKey
}

// NewAppShell creates a shell with the view selection on the dashboard.
func NewAppShell(s *SessionStore, r *ViewRouter, c domain.ScreenComposer, l *slog.Logger) *AppShell {
	return &AppShell{store: s, router: r, composer: c, logger: l, view: domain.DefaultView}
}

// Boot restores the cached session. Only the first call reads the cache.
func (a *AppShell) Boot(ctx context.Context) domain.Session {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.booted {
		return a.store.Session()
	}
	a.booted = true
	return a.store.Restore(ctx)
}

// Login signs in and resets the view selection to the dashboard. It returns
// the signed-in identity, or nil with a nil error for bad credentials.
func (a *AppShell) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ok, err := a.store.Login(ctx, email, password)
	if err != nil || !ok {
		return nil, err
	}
	a.booted = true
	a.view = domain.DefaultView
	return a.store.Identity()
}

// Logout signs out and resets the view selection to the dashboard.
func (a *AppShell) Logout(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.store.Logout(ctx)
	a.view = domain.DefaultView
}

// Session returns a snapshot of the authentication state.
func (a *AppShell) Session() domain.Session {
	return a.store.Session()
}

// Menu returns the signed-in role together with its navigation entries.
func (a *AppShell) Menu() (domain.Role, []domain.MenuItem, error) {
	identity, err := a.store.Identity()
	if err != nil {
		return "", nil, err
	}
	return identity.Role, a.router.Menu(identity.Role), nil
}

// MenuFor returns the navigation entries of role.
func (a *AppShell) MenuFor(role domain.Role) []domain.MenuItem {
	return a.router.Menu(role)
}

// Navigate changes the view selection. The stored selection is the resolved
// view, so an out-of-menu key leaves the shell on the dashboard.
func (a *AppShell) Navigate(ctx context.Context, key domain.ViewKey) (domain.Route, error) {
	route, _, err := a.navigate(ctx, key)
	return route, err
}

func (a *AppShell) navigate(ctx context.Context, key domain.ViewKey) (domain.Route, *domain.Identity, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	identity, err := a.store.Identity()
	if err != nil {
		return domain.Route{}, nil, err
	}

	route := a.router.Resolve(identity.Role, key)
	if route.Fallback {
		a.logger.DebugContext(ctx, "view fell back to dashboard",
			"requested", string(key), "lms.role", string(identity.Role))
	}
	a.view = route.View
	return route, identity, nil
}

// View returns the current view selection.
func (a *AppShell) View() domain.ViewKey {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// Render composes the screen of the current selection, or the login screen
// when nobody is signed in.
func (a *AppShell) Render(ctx context.Context, q domain.ScreenQuery) Page {
	a.mu.Lock()
	view := a.view
	a.mu.Unlock()

	identity, err := a.store.Identity()
	if err != nil {
		route := domain.Route{View: view, Requested: view, Screen: domain.ScreenLogin}
		metrics.RecordRender(string(route.Screen), false)
		return Page{
			View:    route.View,
			Screen:  route.Screen,
			Menu:    []domain.MenuItem{},
			Content: a.composer.Compose(nil, route, q),
		}
	}

	return a.render(ctx, identity, a.router.Resolve(identity.Role, view), q)
}

// Open navigates to key and renders the result in one step.
func (a *AppShell) Open(ctx context.Context, key domain.ViewKey, q domain.ScreenQuery) (Page, error) {
	route, identity, err := a.navigate(ctx, key)
	if err != nil {
		return Page{}, err
	}
	return a.render(ctx, identity, route, q), nil
}

func (a *AppShell) render(ctx context.Context, identity *domain.Identity, route domain.Route, q domain.ScreenQuery) Page {
	metrics.RecordRender(string(route.Screen), route.Fallback)
	a.logger.DebugContext(ctx, "rendering screen",
		"user_id", identity.ID, "lms.view", string(route.View), "lms.screen", string(route.Screen))

	return Page{
		Authenticated: true,
		View:          route.View,
		Screen:        route.Screen,
		Fallback:      route.Fallback,
		Menu:          a.router.Menu(identity.Role),
		Content:       a.composer.Compose(identity, route, q),
	}
}
