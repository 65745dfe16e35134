package screen

import (
	"math"
	"time"

	"lms-hub/internal/domain"
)

// Goal urgency levels by days until due.
const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// GoalRow is an IDP goal with its deadline resolved against now.
type GoalRow struct {
	domain.Goal
	DaysUntilDue int    `json:"daysUntilDue"`
	Urgency      string `json:"urgency"`
}

// GoalCounts tallies goals by status.
type GoalCounts struct {
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	NotStarted int `json:"notStarted"`
}

// PlanView is one development plan with derived figures.
type PlanView struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Status              string     `json:"status"`
	Progress            int        `json:"progress"`
	StartDate           string     `json:"startDate"`
	EndDate             string     `json:"endDate"`
	DaysRemaining       int        `json:"daysRemaining"`
	AverageGoalProgress int        `json:"averageGoalProgress"`
	Counts              GoalCounts `json:"counts"`
	Goals               []GoalRow  `json:"goals"`
	SkillGaps           []string   `json:"skillGaps"`
	Recommendations     []string   `json:"recommendations"`
}

// PlanOwner is an employee row of the reviewer view.
type PlanOwner struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	HasIDP     bool   `json:"hasIdp"`
	Progress   int    `json:"progress"`
}

// IDPManager shows the user's plan and, for reviewers, every employee's.
type IDPManager struct {
	Plan      *PlanView   `json:"plan,omitempty"`
	Reviewer  bool        `json:"reviewer"`
	Employees []PlanOwner `json:"employees,omitempty"`
}

// Urgency classifies a goal by days until it is due.
func Urgency(daysUntilDue int) string {
	switch {
	case daysUntilDue < 30:
		return UrgencyHigh
	case daysUntilDue < 60:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// IDPManager builds the development plan screen for identity.
func (c *Composer) IDPManager(identity *domain.Identity) IDPManager {
	now := c.now()
	out := IDPManager{Reviewer: identity.Role == domain.RoleHR || identity.Role == domain.RoleAdmin}

	if idp, ok := c.data.IDPFor(identity.ID); ok {
		out.Plan = planView(idp, now)
	}

	if out.Reviewer {
		for _, e := range c.data.Roster.ByRole(domain.RoleEmployee) {
			owner := PlanOwner{ID: e.ID, Name: e.Name, Department: e.Department}
			if idp, ok := c.data.IDPFor(e.ID); ok {
				owner.HasIDP = true
				owner.Progress = idp.Progress
			}
			out.Employees = append(out.Employees, owner)
		}
	}
	return out
}

func planView(idp domain.IDP, now time.Time) *PlanView {
	v := &PlanView{
		ID:              idp.ID,
		Title:           idp.Title,
		Status:          idp.Status,
		Progress:        idp.Progress,
		StartDate:       idp.StartDate,
		EndDate:         idp.EndDate,
		DaysRemaining:   daysUntil(idp.EndDate, now),
		SkillGaps:       idp.SkillGaps,
		Recommendations: idp.Recommendations,
	}

	progress := make([]int, 0, len(idp.Goals))
	for _, g := range idp.Goals {
		switch g.Status {
		case domain.GoalCompleted:
			v.Counts.Completed++
		case domain.GoalInProgress:
			v.Counts.InProgress++
		case domain.GoalNotStarted:
			v.Counts.NotStarted++
		}
		progress = append(progress, g.Progress)

		days := daysUntil(g.DueDate, now)
		v.Goals = append(v.Goals, GoalRow{Goal: g, DaysUntilDue: days, Urgency: Urgency(days)})
	}
	v.AverageGoalProgress = roundedMean(progress)
	return v
}

// daysUntil returns the whole days from now to date, rounded up.
// Unparseable dates count as due today.
func daysUntil(date string, now time.Time) int {
	due, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return 0
	}
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
