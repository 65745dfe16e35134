package screen

import (
	"time"

	"lms-hub/internal/domain"
	"lms-hub/internal/fixture"
)

// Profile is the identity card shown in the sidebar and dashboard header.
type Profile struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Initials   string      `json:"initials"`
	Position   string      `json:"position"`
	Department string      `json:"department"`
	Role       domain.Role `json:"role"`
	Avatar     string      `json:"avatar,omitempty"`
}

func profileOf(i *domain.Identity) Profile {
	return Profile{
		ID:         i.ID,
		Name:       i.Name,
		Initials:   i.Initials(),
		Position:   i.Position,
		Department: i.Department,
		Role:       i.Role,
		Avatar:     i.Avatar,
	}
}

// EmployeeStats are the headline numbers of the employee dashboard.
type EmployeeStats struct {
	CompletedCourses  int `json:"completedCourses"`
	InProgressCourses int `json:"inProgressCourses"`
	Skills            int `json:"skills"`
	AverageSkillLevel int `json:"averageSkillLevel"`
}

// SkillProgress is one skill bar.
type SkillProgress struct {
	Skill string `json:"skill"`
	Level int    `json:"level"`
	Band  string `json:"band"`
}

// IDPSummary is the dashboard card of the learner's plan.
type IDPSummary struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Progress int           `json:"progress"`
	EndDate  string        `json:"endDate"`
	Goals    []domain.Goal `json:"goals"`
}

// EmployeeDashboard is the landing screen of the employee role.
type EmployeeDashboard struct {
	Profile            Profile                   `json:"profile"`
	Stats              EmployeeStats             `json:"stats"`
	SkillProgress      []SkillProgress           `json:"skillProgress"`
	CurrentIDP         *IDPSummary               `json:"currentIdp,omitempty"`
	Notifications      []domain.Notification     `json:"notifications"`
	RecommendedCourses []domain.Course           `json:"recommendedCourses"`
	MonthlyProgress    []fixture.PlannedProgress `json:"monthlyProgress"`
	SkillGaps          []fixture.SkillTarget     `json:"skillGaps"`
	Recommendations    []fixture.Recommendation  `json:"recommendations"`
	Integrations       []fixture.Integration     `json:"integrations"`
}

// EmployeeDashboard builds the employee landing screen for identity.
func (c *Composer) EmployeeDashboard(identity *domain.Identity) EmployeeDashboard {
	levels := make([]int, 0, len(identity.Skills))
	progress := make([]SkillProgress, 0, len(identity.Skills))
	for _, skill := range identity.Skills {
		lvl := identity.SkillLevel(skill)
		levels = append(levels, lvl)
		progress = append(progress, SkillProgress{Skill: skill, Level: lvl, Band: Band(lvl)})
	}

	var summary *IDPSummary
	if idp, ok := c.data.IDPFor(identity.ID); ok {
		summary = &IDPSummary{
			ID:       idp.ID,
			Title:    idp.Title,
			Progress: idp.Progress,
			EndDate:  idp.EndDate,
			Goals:    firstN(idp.Goals, 3),
		}
	}

	unread := make([]domain.Notification, 0, 3)
	for _, n := range c.data.Notifications {
		if !n.Read {
			unread = append(unread, n)
		}
		if len(unread) == 3 {
			break
		}
	}

	return EmployeeDashboard{
		Profile: profileOf(identity),
		Stats: EmployeeStats{
			CompletedCourses:  identity.CompletedCourses,
			InProgressCourses: identity.InProgressCourses,
			Skills:            len(identity.Skills),
			AverageSkillLevel: roundedMean(levels),
		},
		SkillProgress:      progress,
		CurrentIDP:         summary,
		Notifications:      unread,
		RecommendedCourses: firstN(c.data.Courses, 3),
		MonthlyProgress:    c.data.EmployeeMonthly,
		SkillGaps:          c.data.EmployeeSkillGaps,
		Recommendations:    c.data.EmployeeRecommendations,
		Integrations:       c.data.EmployeeIntegrations,
	}
}

// EmployeeProgress is a roster row of the HR dashboard.
type EmployeeProgress struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Position         string `json:"position"`
	Department       string `json:"department"`
	CompletedCourses int    `json:"completedCourses"`
	HasIDP           bool   `json:"hasIdp"`
	IDPProgress      int    `json:"idpProgress"`
	Band             string `json:"band"`
}

// DepartmentRow is department completion joined with its training budget.
type DepartmentRow struct {
	Department  string `json:"department"`
	Completion  int    `json:"completion"`
	Employees   int    `json:"employees"`
	Budget      string `json:"budget"`
	Used        string `json:"used,omitempty"`
	UsedPercent int    `json:"usedPercent"`
}

// ProgramRow is a training program with formatted amounts.
type ProgramRow struct {
	Program string `json:"program"`
	Cost    string `json:"cost"`
	Savings string `json:"savings"`
	ROI     int    `json:"roi"`
}

// HRDashboard is the landing screen of the hr role.
type HRDashboard struct {
	TotalEmployees     int                         `json:"totalEmployees"`
	ActiveUsers        int                         `json:"activeUsers"`
	CoursesCompleted   int                         `json:"coursesCompleted"`
	AvgCompletionRate  int                         `json:"avgCompletionRate"`
	TrainingROI        int                         `json:"trainingROI"`
	Employees          []EmployeeProgress          `json:"employees"`
	Departments        []DepartmentRow             `json:"departments"`
	LeadershipLearners []fixture.LeadershipLearner `json:"leadershipLearners"`
	CriticalSkillGaps  []fixture.SkillGap          `json:"criticalSkillGaps"`
	Programs           []ProgramRow                `json:"programs"`
}

// HRDashboard builds the hr landing screen.
func (c *Composer) HRDashboard() HRDashboard {
	a := c.data.Analytics

	employees := firstN(c.data.Roster.ByRole(domain.RoleEmployee), 5)
	rows := make([]EmployeeProgress, 0, len(employees))
	for _, e := range employees {
		row := EmployeeProgress{
			ID:               e.ID,
			Name:             e.Name,
			Position:         e.Position,
			Department:       e.Department,
			CompletedCourses: e.CompletedCourses,
		}
		if idp, ok := c.data.IDPFor(e.ID); ok {
			row.HasIDP = true
			row.IDPProgress = idp.Progress
		}
		row.Band = Band(row.IDPProgress)
		rows = append(rows, row)
	}

	programs := make([]ProgramRow, 0, len(c.data.TrainingROI))
	for _, p := range c.data.TrainingROI {
		programs = append(programs, ProgramRow{
			Program: p.Program,
			Cost:    FormatINR(p.Cost),
			Savings: FormatINR(p.Savings),
			ROI:     p.ROI,
		})
	}

	return HRDashboard{
		TotalEmployees:     a.TotalEmployees,
		ActiveUsers:        a.ActiveUsers,
		CoursesCompleted:   a.CoursesCompleted,
		AvgCompletionRate:  a.AvgCompletionRate,
		TrainingROI:        a.TrainingROI,
		Employees:          rows,
		Departments:        c.departmentRows(),
		LeadershipLearners: c.data.LeadershipLearners,
		CriticalSkillGaps:  c.data.CriticalSkillGaps,
		Programs:           programs,
	}
}

func (c *Composer) departmentRows() []DepartmentRow {
	budgets := make(map[string]domain.DepartmentBudget, len(c.data.DepartmentBudgets))
	for _, b := range c.data.DepartmentBudgets {
		budgets[b.Department] = b
	}

	rows := make([]DepartmentRow, 0, len(c.data.Analytics.DepartmentProgress))
	for _, d := range c.data.Analytics.DepartmentProgress {
		row := DepartmentRow{
			Department: d.Department,
			Completion: d.Completion,
			Employees:  d.Employees,
			Budget:     d.Budget,
		}
		if b, ok := budgets[d.Department]; ok {
			row.Budget = FormatINR(b.Allocated)
			row.Used = FormatINR(b.Used)
			row.UsedPercent = percent(b.Used, b.Allocated)
		}
		rows = append(rows, row)
	}
	return rows
}

// AccountRow is a managed account with its last sign-in resolved against now.
type AccountRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Status     string `json:"status"`
	LastLogin  string `json:"lastLogin"`
	DaysAgo    int    `json:"daysAgo"`
}

// AdminDashboard is the landing screen of the admin role.
type AdminDashboard struct {
	Accounts     []AccountRow                `json:"accounts"`
	RoleCounts   map[string]int              `json:"roleCounts"`
	SystemHealth fixture.SystemHealth        `json:"systemHealth"`
	UserActivity []fixture.HourlyActivity    `json:"userActivity"`
	Integrations []fixture.Integration       `json:"integrations"`
	AuditLog     []fixture.AuditEntry        `json:"auditLog"`
	Departments  []domain.DepartmentProgress `json:"departments"`
}

// AdminDashboard builds the admin landing screen. Only privileged accounts
// are listed, never individual employees.
func (c *Composer) AdminDashboard() AdminDashboard {
	now := c.now()
	accounts := make([]AccountRow, 0, len(c.data.ManagedAccounts))
	counts := make(map[string]int)
	for _, m := range c.data.ManagedAccounts {
		accounts = append(accounts, AccountRow{
			ID:         m.ID,
			Name:       m.Name,
			Email:      m.Email,
			Role:       m.Role,
			Department: m.Department,
			Status:     m.Status,
			LastLogin:  now.Add(-m.LastSeen).Format(time.DateOnly),
			DaysAgo:    int(m.LastSeen / (24 * time.Hour)),
		})
		counts[m.Role]++
	}

	return AdminDashboard{
		Accounts:     accounts,
		RoleCounts:   counts,
		SystemHealth: c.data.SystemHealth,
		UserActivity: c.data.UserActivity,
		Integrations: c.data.AdminIntegrations,
		AuditLog:     c.data.AuditLog,
		Departments:  c.data.Analytics.DepartmentProgress,
	}
}

func firstN[T any](s []T, n int) []T {
	if len(s) < n {
		n = len(s)
	}
	return s[:n:n]
}
