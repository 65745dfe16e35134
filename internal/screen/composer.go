// Package screen builds the view model of every dashboard screen from the
// static dataset. All builders are pure functions of their inputs plus the
// injected clock and random source.
package screen

import (
	"math/rand/v2"
	"time"

	"lms-hub/internal/domain"
	"lms-hub/internal/fixture"
)

// Composer implements domain.ScreenComposer over a fixture dataset.
type Composer struct {
	data *fixture.Dataset
	now  func() time.Time
	rand func() float64
}

// Option configures a Composer.
type Option func(*Composer)

// WithClock overrides the time source used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) { c.now = now }
}

// WithRandom overrides the [0,1) source used by the analytics perturbation.
func WithRandom(r func() float64) Option {
	return func(c *Composer) { c.rand = r }
}

// NewComposer creates a Composer over data.
func NewComposer(data *fixture.Dataset, opts ...Option) *Composer {
	c := &Composer{data: data, now: time.Now, rand: rand.Float64}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose returns the view model for route. A nil identity always yields the
// login screen.
func (c *Composer) Compose(identity *domain.Identity, route domain.Route, q domain.ScreenQuery) any {
	if identity == nil {
		return c.Login()
	}

	switch route.Screen {
	case domain.ScreenEmployeeDashboard:
		return c.EmployeeDashboard(identity)
	case domain.ScreenHRDashboard:
		return c.HRDashboard()
	case domain.ScreenAdminDashboard:
		return c.AdminDashboard()
	case domain.ScreenCourseLibrary:
		return c.CourseLibrary(q)
	case domain.ScreenSkillsTracker:
		return c.SkillsTracker(identity, q)
	case domain.ScreenIDPManager:
		return c.IDPManager(identity)
	case domain.ScreenAnalytics:
		return c.Analytics(identity)
	case domain.ScreenMentorshipHub:
		return c.MentorshipHub(q)
	case domain.ScreenComingSoon:
		return ComingSoonScreen(route.Feature)
	case domain.ScreenLogin:
		return c.Login()
	default:
		return c.EmployeeDashboard(identity)
	}
}
