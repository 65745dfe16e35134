package fixture

import "lms-hub/internal/domain"

// Dataset bundles every read-only table the screens render from.
// Screens must treat all slices as immutable and copy before sorting.
type Dataset struct {
	Roster            *Roster
	Courses           []domain.Course
	Notifications     []domain.Notification
	Analytics         domain.Analytics
	IDPs              []domain.IDP
	DepartmentBudgets []domain.DepartmentBudget
	Mentors           []domain.Mentor
	MentorshipNetwork []domain.Mentorship

	EmployeeMonthly         []PlannedProgress
	EmployeeSkillGaps       []SkillTarget
	EmployeeRecommendations []Recommendation
	EmployeeIntegrations    []Integration

	LeadershipLearners []LeadershipLearner
	CriticalSkillGaps  []SkillGap
	TrainingROI        []ProgramROI

	ManagedAccounts   []ManagedAccount
	SystemHealth      SystemHealth
	UserActivity      []HourlyActivity
	AdminIntegrations []Integration
	AuditLog          []AuditEntry

	CurrentMentorships []ActiveMentorship
	UpcomingSessions   []MentoringSession
}

// Default returns the built-in dataset.
func Default() *Dataset {
	return &Dataset{
		Roster:                  DefaultRoster(),
		Courses:                 Courses,
		Notifications:           Notifications,
		Analytics:               Analytics,
		IDPs:                    IDPs,
		DepartmentBudgets:       DepartmentBudgets,
		Mentors:                 Mentors,
		MentorshipNetwork:       MentorshipNetwork,
		EmployeeMonthly:         employeeMonthly,
		EmployeeSkillGaps:       employeeSkillGaps,
		EmployeeRecommendations: employeeRecommendations,
		EmployeeIntegrations:    employeeIntegrations,
		LeadershipLearners:      leadershipLearners,
		CriticalSkillGaps:       criticalSkillGaps,
		TrainingROI:             trainingROI,
		ManagedAccounts:         managedAccounts,
		SystemHealth:            systemHealth,
		UserActivity:            userActivity,
		AdminIntegrations:       adminIntegrations,
		AuditLog:                auditLog,
		CurrentMentorships:      currentMentorships,
		UpcomingSessions:        upcomingSessions,
	}
}

// IDPFor returns the development plan of an employee.
func (d *Dataset) IDPFor(employeeID string) (domain.IDP, bool) {
	for _, idp := range d.IDPs {
		if idp.EmployeeID == employeeID {
			return idp, true
		}
	}
	return domain.IDP{}, false
}
