package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lms-hub/internal/domain"
	"lms-hub/internal/screen"
	"lms-hub/internal/usecase"
)

// renderPage prints a page as headed tables. Unknown content falls back to
// indented JSON.
func renderPage(p *Printer, page usecase.Page) error {
	switch c := page.Content.(type) {
	case screen.LoginScreen:
		p.Header(c.Title)
		p.Print("%s", c.Subtitle)
		p.Info("Sign in with lmsctl login --email <email> --password <password>")
		printDemoAccounts(p, c.DemoAccounts, c.DemoPassword)
		return nil
	case screen.ComingSoon:
		p.Header(c.Feature)
		p.Info("%s", c.Message)
		return nil
	case screen.EmployeeDashboard:
		return renderEmployeeDashboard(p, c)
	case screen.HRDashboard:
		return renderHRDashboard(p, c)
	case screen.AdminDashboard:
		return renderAdminDashboard(p, c)
	case screen.CourseLibrary:
		return renderCourseLibrary(p, c)
	case screen.SkillsTracker:
		return renderSkillsTracker(p, c)
	case screen.IDPManager:
		return renderIDPManager(p, c)
	case screen.Analytics:
		return renderAnalytics(p, c)
	case screen.MentorshipHub:
		return renderMentorshipHub(p, c)
	default:
		enc := json.NewEncoder(p.Out())
		enc.SetIndent("", "  ")
		return enc.Encode(page.Content)
	}
}

// section prints a header and the table, skipping both when empty.
func section(p *Printer, title string, t *Table) error {
	if len(t.rows) == 0 {
		return nil
	}
	p.Header(title)
	return t.Render()
}

func itoa(n int) string { return strconv.Itoa(n) }

func pct(n int) string { return strconv.Itoa(n) + "%" }

func renderEmployeeDashboard(p *Printer, d screen.EmployeeDashboard) error {
	p.Header(fmt.Sprintf("Welcome back, %s", d.Profile.Name))
	p.Print("%s · %s", d.Profile.Position, d.Profile.Department)

	stats := NewTable(p.Out(), "Completed", "In progress", "Skills", "Avg skill level")
	stats.AddRow(itoa(d.Stats.CompletedCourses), itoa(d.Stats.InProgressCourses),
		itoa(d.Stats.Skills), pct(d.Stats.AverageSkillLevel))
	if err := section(p, "Overview", stats); err != nil {
		return err
	}

	skills := NewTable(p.Out(), "Skill", "Level")
	for _, s := range d.SkillProgress {
		skills.AddRow(s.Skill, p.Level(s.Level, s.Band))
	}
	if err := section(p, "Skill progress", skills); err != nil {
		return err
	}

	if d.CurrentIDP != nil {
		goals := NewTable(p.Out(), "Goal", "Status", "Progress", "Due")
		for _, g := range d.CurrentIDP.Goals {
			goals.AddRow(g.Title, g.Status, pct(g.Progress), g.DueDate)
		}
		p.Header(fmt.Sprintf("Current IDP: %s (%d%%)", d.CurrentIDP.Title, d.CurrentIDP.Progress))
		if err := goals.Render(); err != nil {
			return err
		}
	}

	notes := NewTable(p.Out(), "Priority", "Title", "Date")
	for _, n := range d.Notifications {
		notes.AddRow(n.Priority, n.Title, n.Date)
	}
	if err := section(p, "Notifications", notes); err != nil {
		return err
	}

	return section(p, "Recommended courses", courseTable(p, d.RecommendedCourses))
}

func renderHRDashboard(p *Printer, d screen.HRDashboard) error {
	head := NewTable(p.Out(), "Employees", "Active", "Courses completed", "Avg completion", "Training ROI")
	head.AddRow(itoa(d.TotalEmployees), itoa(d.ActiveUsers), itoa(d.CoursesCompleted),
		pct(d.AvgCompletionRate), pct(d.TrainingROI))
	if err := section(p, "HR overview", head); err != nil {
		return err
	}

	emp := NewTable(p.Out(), "Name", "Position", "Department", "Courses", "IDP")
	for _, e := range d.Employees {
		idp := "none"
		if e.HasIDP {
			idp = p.Level(e.IDPProgress, e.Band)
		}
		emp.AddRow(e.Name, e.Position, e.Department, itoa(e.CompletedCourses), idp)
	}
	if err := section(p, "Employees", emp); err != nil {
		return err
	}

	depts := NewTable(p.Out(), "Department", "Completion", "Employees", "Budget", "Used")
	for _, dept := range d.Departments {
		depts.AddRow(dept.Department, pct(dept.Completion), itoa(dept.Employees), dept.Budget, dept.Used)
	}
	if err := section(p, "Departments", depts); err != nil {
		return err
	}

	gaps := NewTable(p.Out(), "Skill", "Employees", "Gap", "Priority")
	for _, g := range d.CriticalSkillGaps {
		gaps.AddRow(g.Skill, itoa(g.Employees), g.Gap, g.Priority)
	}
	if err := section(p, "Critical skill gaps", gaps); err != nil {
		return err
	}

	programs := NewTable(p.Out(), "Program", "Cost", "Savings", "ROI")
	for _, pr := range d.Programs {
		programs.AddRow(pr.Program, pr.Cost, pr.Savings, pct(pr.ROI))
	}
	return section(p, "Training ROI", programs)
}

func renderAdminDashboard(p *Printer, d screen.AdminDashboard) error {
	accounts := NewTable(p.Out(), "Name", "Email", "Role", "Status", "Last login")
	for _, a := range d.Accounts {
		accounts.AddRow(a.Name, a.Email, a.Role, a.Status, fmt.Sprintf("%s (%dd ago)", a.LastLogin, a.DaysAgo))
	}
	if err := section(p, "Managed accounts", accounts); err != nil {
		return err
	}

	roles := make([]string, 0, len(d.RoleCounts))
	for role := range d.RoleCounts {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	counts := NewTable(p.Out(), "Role", "Accounts")
	for _, role := range roles {
		counts.AddRow(role, itoa(d.RoleCounts[role]))
	}
	if err := section(p, "Accounts per role", counts); err != nil {
		return err
	}

	health := NewTable(p.Out(), "CPU", "Memory", "Storage", "Network")
	h := d.SystemHealth
	health.AddRow(pct(h.CPU), pct(h.Memory), pct(h.Storage), pct(h.Network))
	if err := section(p, "System health", health); err != nil {
		return err
	}

	audit := NewTable(p.Out(), "Time", "User", "Action", "Severity")
	for _, e := range d.AuditLog {
		audit.AddRow(e.Timestamp, e.User, e.Action, e.Severity)
	}
	return section(p, "Audit log", audit)
}

func courseTable(p *Printer, courses []domain.Course) *Table {
	t := NewTable(p.Out(), "ID", "Title", "Category", "Difficulty", "Rating", "Enrolled")
	for _, c := range courses {
		t.AddRow(c.ID, c.Title, c.Category, c.Difficulty,
			strconv.FormatFloat(c.Rating, 'f', 1, 64), itoa(c.EnrolledCount))
	}
	return t
}

func renderCourseLibrary(p *Printer, lib screen.CourseLibrary) error {
	p.Header(fmt.Sprintf("Course library (%d courses)", lib.Total))
	if len(lib.Courses) == 0 {
		p.Print("No courses match the filters.")
	} else if err := courseTable(p, lib.Courses).Render(); err != nil {
		return err
	}
	if err := section(p, "Popular", courseTable(p, lib.Popular)); err != nil {
		return err
	}
	p.Print("\nCategories: %s", strings.Join(lib.Categories, ", "))
	return nil
}

func renderSkillsTracker(p *Printer, s screen.SkillsTracker) error {
	skills := NewTable(p.Out(), "Skill", "Category", "Current", "Target", "Level")
	for _, r := range s.Skills {
		skills.AddRow(r.Skill, r.Category, pct(r.Current), pct(r.Target), r.LevelText)
	}
	p.Header(fmt.Sprintf("Skills (average %d%%)", s.Average))
	if len(s.Skills) == 0 {
		p.Print("No skills in this category.")
	} else if err := skills.Render(); err != nil {
		return err
	}

	gaps := NewTable(p.Out(), "Skill", "Gap")
	for _, g := range s.Gaps {
		gaps.AddRow(g.Skill, itoa(g.Gap))
	}
	if err := section(p, "Skill gaps", gaps); err != nil {
		return err
	}
	return section(p, "Recommended courses", courseTable(p, s.Recommended))
}

func renderIDPManager(p *Printer, m screen.IDPManager) error {
	if m.Plan == nil {
		p.Header("Individual development plan")
		p.Print("No development plan yet.")
	} else {
		plan := m.Plan
		p.Header(fmt.Sprintf("%s (%s, %d%%)", plan.Title, plan.Status, plan.Progress))
		p.Print("%d days remaining · %d completed, %d in progress, %d not started",
			plan.DaysRemaining, plan.Counts.Completed, plan.Counts.InProgress, plan.Counts.NotStarted)

		goals := NewTable(p.Out(), "Goal", "Status", "Progress", "Due", "Urgency")
		for _, g := range plan.Goals {
			goals.AddRow(g.Title, g.Status, pct(g.Progress), fmt.Sprintf("%s (%dd)", g.DueDate, g.DaysUntilDue), g.Urgency)
		}
		if err := goals.Render(); err != nil {
			return err
		}
	}

	if !m.Reviewer {
		return nil
	}
	owners := NewTable(p.Out(), "Employee", "Department", "IDP")
	for _, o := range m.Employees {
		status := "none"
		if o.HasIDP {
			status = pct(o.Progress)
		}
		owners.AddRow(o.Name, o.Department, status)
	}
	return section(p, "Employee plans", owners)
}

func renderAnalytics(p *Printer, a screen.Analytics) error {
	metrics := NewTable(p.Out(), "Metric", "Value", "Change")
	for _, m := range a.KeyMetrics {
		metrics.AddRow(m.Title, m.Value, m.Change)
	}
	if err := section(p, "Key metrics", metrics); err != nil {
		return err
	}

	depts := NewTable(p.Out(), "Department", "Completion", "Efficiency", "Engagement")
	for _, dept := range a.Departments {
		depts.AddRow(dept.Department, pct(dept.Completion), pct(dept.Efficiency), pct(dept.Engagement))
	}
	if err := section(p, "Department performance", depts); err != nil {
		return err
	}

	budgets := NewTable(p.Out(), "Department", "Manager", "Allocated", "Used")
	for _, b := range a.Budgets {
		budgets.AddRow(b.Department, b.Manager, b.Allocated, fmt.Sprintf("%s (%d%%)", b.Used, b.UsedPercent))
	}
	return section(p, "Budgets", budgets)
}

func renderMentorshipHub(p *Printer, h screen.MentorshipHub) error {
	mentors := NewTable(p.Out(), "Mentor", "Position", "Rating", "Skills", "Availability")
	for _, m := range h.Mentors {
		mentors.AddRow(m.Name, m.Position, strconv.FormatFloat(m.Rating, 'f', 1, 64),
			strings.Join(m.Skills, ", "), m.Availability)
	}
	p.Header(fmt.Sprintf("Mentors (%d)", len(h.Mentors)))
	if len(h.Mentors) == 0 {
		p.Print("No mentors match the filters.")
	} else if err := mentors.Render(); err != nil {
		return err
	}

	current := NewTable(p.Out(), "Mentor", "Focus", "Progress", "Next session")
	for _, m := range h.Current {
		current.AddRow(m.MentorName, m.Focus, pct(m.Progress), m.NextSession)
	}
	if err := section(p, fmt.Sprintf("Your mentorships (avg %d%%)", h.AverageProgress), current); err != nil {
		return err
	}

	upcoming := NewTable(p.Out(), "Date", "Mentor", "Topic", "Type")
	for _, s := range h.Upcoming {
		upcoming.AddRow(s.Date, s.MentorName, s.Topic, s.Type)
	}
	return section(p, "Upcoming sessions", upcoming)
}
