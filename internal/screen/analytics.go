package screen

import (
	"math"
	"strconv"

	"lms-hub/internal/domain"
)

// KeyMetric is a headline figure of the analytics screen.
type KeyMetric struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Change      string `json:"change"`
	Description string `json:"description"`
}

// DepartmentPerformance extends department progress with derived scores.
type DepartmentPerformance struct {
	domain.DepartmentProgress
	Efficiency int `json:"efficiency"`
	Engagement int `json:"engagement"`
}

// BudgetRow is a department training budget with formatted amounts.
type BudgetRow struct {
	Department  string `json:"department"`
	Manager     string `json:"manager"`
	Allocated   string `json:"allocated"`
	Used        string `json:"used"`
	UsedPercent int    `json:"usedPercent"`
}

// Analytics is the organisation learning analytics screen.
type Analytics struct {
	KeyMetrics        []KeyMetric              `json:"keyMetrics"`
	MonthlyProgress   []domain.MonthlyProgress `json:"monthlyProgress"`
	SkillDistribution []domain.SkillCount      `json:"skillDistribution"`
	Departments       []DepartmentPerformance  `json:"departments"`
	Budgets           []BudgetRow              `json:"budgets,omitempty"`
}

// Analytics builds the analytics screen. Budgets are included for hr and
// admin only.
func (c *Composer) Analytics(identity *domain.Identity) Analytics {
	a := c.data.Analytics

	departments := make([]DepartmentPerformance, 0, len(a.DepartmentProgress))
	for _, d := range a.DepartmentProgress {
		departments = append(departments, DepartmentPerformance{
			DepartmentProgress: d,
			Efficiency:         int(math.Round(float64(d.Completion)*0.8 + c.rand()*20)),
			Engagement:         int(math.Round(float64(d.Completion)*0.9 + c.rand()*10)),
		})
	}

	out := Analytics{
		KeyMetrics: []KeyMetric{
			{Title: "Active Learners", Value: strconv.Itoa(a.ActiveUsers), Change: "+12%", Description: "Employees actively engaged in learning"},
			{Title: "Course Completions", Value: strconv.Itoa(a.CoursesCompleted), Change: "+8%", Description: "Total courses completed this month"},
			{Title: "Skill Gaps Closed", Value: strconv.Itoa(a.SkillGapsClosed), Change: "+15%", Description: "Skills gaps addressed through learning"},
			{Title: "Training ROI", Value: strconv.Itoa(a.TrainingROI) + "%", Change: "+5%", Description: "Return on training investment (INR)"},
		},
		MonthlyProgress:   a.MonthlyProgress,
		SkillDistribution: a.SkillDistribution,
		Departments:       departments,
	}

	if identity.Role == domain.RoleHR || identity.Role == domain.RoleAdmin {
		for _, b := range c.data.DepartmentBudgets {
			out.Budgets = append(out.Budgets, BudgetRow{
				Department:  b.Department,
				Manager:     b.Manager,
				Allocated:   FormatINR(b.Allocated),
				Used:        FormatINR(b.Used),
				UsedPercent: percent(b.Used, b.Allocated),
			})
		}
	}
	return out
}
