package domain

// ViewKey names a top-level screen the user can navigate to.
type ViewKey string

// View keys shared by every role.
const (
	ViewDashboard ViewKey = "dashboard"
	ViewCourses   ViewKey = "courses"
	ViewSkills    ViewKey = "skills"
)

// Employee view keys.
const (
	ViewIDP        ViewKey = "idp"
	ViewMentorship ViewKey = "mentorship"
	ViewCalendar   ViewKey = "calendar"
)

// HR view keys.
const (
	ViewTeamAnalytics ViewKey = "team-analytics"
	ViewSuccession    ViewKey = "succession"
	ViewIDPManagement ViewKey = "idp-management"
	ViewReports       ViewKey = "reports"
)

// Admin view keys.
const (
	ViewUserManagement  ViewKey = "user-management"
	ViewSystemAnalytics ViewKey = "system-analytics"
	ViewIntegrations    ViewKey = "integrations"
	ViewAudit           ViewKey = "audit"
)

// ViewProfile is reachable from the account menu by every role.
const ViewProfile ViewKey = "profile"

// DefaultView is the initial view selection and the fallback target.
const DefaultView = ViewDashboard

// ScreenID identifies the screen a view key resolves to.
type ScreenID string

// Screens.
const (
	ScreenLogin             ScreenID = "login"
	ScreenEmployeeDashboard ScreenID = "employee-dashboard"
	ScreenHRDashboard       ScreenID = "hr-dashboard"
	ScreenAdminDashboard    ScreenID = "admin-dashboard"
	ScreenCourseLibrary     ScreenID = "course-library"
	ScreenSkillsTracker     ScreenID = "skills-tracker"
	ScreenIDPManager        ScreenID = "idp-manager"
	ScreenMentorshipHub     ScreenID = "mentorship-hub"
	ScreenAnalytics         ScreenID = "analytics"
	ScreenComingSoon        ScreenID = "coming-soon"
)

// MenuItem is one navigation entry.
type MenuItem struct {
	Key   ViewKey `json:"key"`
	Label string  `json:"label"`
	Icon  string  `json:"icon"`
}

// Route is the outcome of resolving a view key for a role.
type Route struct {
	// View is the key actually rendered (DefaultView after a fallback).
	View ViewKey
	// Requested is the key the caller asked for.
	Requested ViewKey
	Screen    ScreenID
	// Feature names the placeholder feature for ScreenComingSoon.
	Feature  string
	Fallback bool
}

// ScreenQuery carries the per-screen filters. Empty or "all" disables a filter.
type ScreenQuery struct {
	Search     string `json:"q,omitempty" query:"q"`
	Category   string `json:"category,omitempty" query:"category"`
	Difficulty string `json:"difficulty,omitempty" query:"difficulty"`
	Skill      string `json:"skill,omitempty" query:"skill"`
}
