package usecase

import "lms-hub/internal/domain"

var commonMenu = []domain.MenuItem{
	{Key: domain.ViewDashboard, Label: "Dashboard", Icon: "home"},
	{Key: domain.ViewCourses, Label: "Courses", Icon: "book-open"},
	{Key: domain.ViewSkills, Label: "Skills", Icon: "target"},
}

var roleMenus = map[domain.Role][]domain.MenuItem{
	domain.RoleEmployee: {
		{Key: domain.ViewIDP, Label: "My IDP", Icon: "award"},
		{Key: domain.ViewMentorship, Label: "Mentorship", Icon: "users"},
		{Key: domain.ViewCalendar, Label: "Calendar", Icon: "calendar"},
	},
	domain.RoleHR: {
		{Key: domain.ViewTeamAnalytics, Label: "Team Analytics", Icon: "bar-chart"},
		{Key: domain.ViewSuccession, Label: "Succession Planning", Icon: "trending-up"},
		{Key: domain.ViewIDPManagement, Label: "IDP Management", Icon: "award"},
		{Key: domain.ViewReports, Label: "Reports", Icon: "bar-chart"},
	},
	domain.RoleAdmin: {
		{Key: domain.ViewUserManagement, Label: "User Management", Icon: "users"},
		{Key: domain.ViewSystemAnalytics, Label: "System Analytics", Icon: "bar-chart"},
		{Key: domain.ViewIntegrations, Label: "Integrations", Icon: "settings"},
		{Key: domain.ViewAudit, Label: "Audit Logs", Icon: "shield"},
	},
}

// ViewRouter maps a role and a view key to the screen to render.
// It is stateless and safe for concurrent use.
type ViewRouter struct{}

// NewViewRouter creates a ViewRouter.
func NewViewRouter() *ViewRouter {
	return &ViewRouter{}
}

// Menu returns the ordered navigation entries of role. Unknown roles get the
// common entries only.
func (r *ViewRouter) Menu(role domain.Role) []domain.MenuItem {
	extra := roleMenus[role]
	out := make([]domain.MenuItem, 0, len(commonMenu)+len(extra))
	out = append(out, commonMenu...)
	return append(out, extra...)
}

// Allowed reports whether role may open key: a menu entry or the profile page.
func (r *ViewRouter) Allowed(role domain.Role, key domain.ViewKey) bool {
	if key == domain.ViewProfile {
		return true
	}
	for _, item := range r.Menu(role) {
		if item.Key == key {
			return true
		}
	}
	return false
}

// DashboardScreen selects the dashboard layout of role.
func (r *ViewRouter) DashboardScreen(role domain.Role) domain.ScreenID {
	switch role {
	case domain.RoleHR:
		return domain.ScreenHRDashboard
	case domain.RoleAdmin:
		return domain.ScreenAdminDashboard
	default:
		return domain.ScreenEmployeeDashboard
	}
}

// Resolve picks the screen for key. Keys that are unknown or outside the
// role's menu fall back to the dashboard with Fallback set.
func (r *ViewRouter) Resolve(role domain.Role, key domain.ViewKey) domain.Route {
	route := domain.Route{View: key, Requested: key}
	if !r.Allowed(role, key) {
		route.View = domain.DefaultView
		route.Fallback = true
	}

	switch route.View {
	case domain.ViewDashboard:
		route.Screen = r.DashboardScreen(role)
	case domain.ViewCourses:
		route.Screen = domain.ScreenCourseLibrary
	case domain.ViewSkills:
		route.Screen = domain.ScreenSkillsTracker
	case domain.ViewIDP, domain.ViewIDPManagement:
		route.Screen = domain.ScreenIDPManager
	case domain.ViewMentorship:
		route.Screen = domain.ScreenMentorshipHub
	case domain.ViewTeamAnalytics, domain.ViewReports, domain.ViewSystemAnalytics:
		route.Screen = domain.ScreenAnalytics
	case domain.ViewCalendar:
		route.Screen, route.Feature = domain.ScreenComingSoon, "Learning calendar"
	case domain.ViewSuccession:
		route.Screen, route.Feature = domain.ScreenComingSoon, "Succession planning"
	case domain.ViewUserManagement:
		route.Screen, route.Feature = domain.ScreenComingSoon, "User management"
	case domain.ViewIntegrations:
		route.Screen, route.Feature = domain.ScreenComingSoon, "API integrations"
	case domain.ViewAudit:
		route.Screen, route.Feature = domain.ScreenComingSoon, "Audit logs"
	case domain.ViewProfile:
		route.Screen, route.Feature = domain.ScreenComingSoon, "User profile settings"
	default:
		route.View = domain.DefaultView
		route.Screen = r.DashboardScreen(role)
		route.Fallback = true
	}
	return route
}
