package screen

import (
	"testing"

	"lms-hub/internal/domain"
	"lms-hub/internal/fixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseIDs(cs []domain.Course) []string {
	ids := make([]string, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}
	return ids
}

func TestCourseLibrary(t *testing.T) {
	c := newTestComposer()

	tests := []struct {
		name string
		q    domain.ScreenQuery
		want []string
	}{
		{name: "no filters", q: domain.ScreenQuery{}, want: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "all disables filters", q: domain.ScreenQuery{Category: "all", Difficulty: "All"}, want: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "search title", q: domain.ScreenQuery{Search: "SCADA"}, want: []string{"6"}},
		{name: "search description", q: domain.ScreenQuery{Search: "smart grid"}, want: []string{"3"}},
		{name: "category case-insensitive", q: domain.ScreenQuery{Category: "technical skills"}, want: []string{"1", "6"}},
		{name: "difficulty", q: domain.ScreenQuery{Difficulty: "intermediate"}, want: []string{"2", "4", "6"}},
		{name: "combined", q: domain.ScreenQuery{Search: "grid", Difficulty: "Advanced"}, want: []string{"1", "3"}},
		{name: "no match", q: domain.ScreenQuery{Search: "underwater basket weaving"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.CourseLibrary(tt.q)
			assert.Equal(t, tt.want, courseIDs(got.Courses))
			assert.Equal(t, len(tt.want), got.Total)
		})
	}
}

func TestCourseLibrary_FeaturedAndPopular(t *testing.T) {
	c := newTestComposer()

	got := c.CourseLibrary(domain.ScreenQuery{})

	assert.Equal(t, []string{"1", "2", "3"}, courseIDs(got.Featured))
	assert.Equal(t, []string{"2", "4", "5", "1"}, courseIDs(got.Popular))
	assert.Equal(t, []string{"Technical Skills", "Safety & Compliance", "Digital Transformation", "Leadership & Management"}, got.Categories)

	// popularity sort must not reorder the catalog
	assert.Equal(t, "1", fixture.Courses[0].ID)
	assert.Equal(t, []string{"1", "2", "3"}, courseIDs(c.CourseLibrary(domain.ScreenQuery{}).Featured))
}

func TestSkillsTracker(t *testing.T) {
	c := newTestComposer()
	u := mustUser(t, "soham.patil@powergridindia.com")

	got := c.SkillsTracker(u, domain.ScreenQuery{})

	require.Len(t, got.Skills, 4)
	assert.Equal(t, SkillRow{Skill: "Power System Planning", Current: 92, Target: 100, Gap: 8, Category: "analytical", LevelText: "Expert"}, got.Skills[0])
	assert.Equal(t, "all", got.Category)

	require.Len(t, got.Radar, 4)
	assert.Equal(t, "Power Syst", got.Radar[0].Skill)

	// 88 -> gap 12, 85 -> gap 15; 92 and 95 are within the threshold
	require.Len(t, got.Gaps, 2)
	assert.Equal(t, "Transmission Lines", got.Gaps[0].Skill)
	assert.Equal(t, "Grid Management", got.Gaps[1].Skill)

	require.Len(t, got.TopSkills, 4)
	assert.Equal(t, "Electrical Safety", got.TopSkills[0].Skill)
	assert.Equal(t, 90, got.Average)

	assert.Equal(t, []string{"1"}, courseIDs(got.Recommended))
}

func TestSkillsTracker_RecommendationsCapped(t *testing.T) {
	c := newTestComposer()
	u := &domain.Identity{
		ID:   "x",
		Name: "Test Learner",
		Role: domain.RoleEmployee,
		Skills: []string{
			"Grid Management and Power Systems",
			"Electrical Safety",
			"Smart Grid",
			"Leadership",
		},
		SkillLevels: map[string]int{},
	}

	got := c.SkillsTracker(u, domain.ScreenQuery{})

	assert.Len(t, got.Gaps, 4)
	assert.Equal(t, []string{"1", "2", "3"}, courseIDs(got.Recommended))
}

func TestSkillsTracker_CategoryFilter(t *testing.T) {
	c := newTestComposer()
	u := mustUser(t, "priya.deshmukh@powergridindia.com")

	got := c.SkillsTracker(u, domain.ScreenQuery{Category: "leadership"})

	require.Len(t, got.Skills, 1)
	assert.Equal(t, "Technical Leadership", got.Skills[0].Skill)
	assert.Len(t, got.Radar, 4)
}

func TestSkillCategory(t *testing.T) {
	assert.Equal(t, "technical", SkillCategory("AWS Architecture"))
	assert.Equal(t, "leadership", SkillCategory("Team Leadership"))
	assert.Equal(t, "communication", SkillCategory("Social Media"))
	assert.Equal(t, "creative", SkillCategory("UX Research"))
	assert.Equal(t, "analytical", SkillCategory("Grid Operations"))
}

func TestIDPManager_Employee(t *testing.T) {
	c := newTestComposer()

	got := c.IDPManager(mustUser(t, "atharva.vaidya@powergridindia.com"))

	assert.False(t, got.Reviewer)
	assert.Empty(t, got.Employees)
	require.NotNil(t, got.Plan)
	assert.Equal(t, GoalCounts{Completed: 1, InProgress: 1, NotStarted: 1}, got.Plan.Counts)
	// (70+0+100)/3 = 56.67
	assert.Equal(t, 57, got.Plan.AverageGoalProgress)
	// 2025-01-15T12:00 to 2025-08-31 is 227.5 days
	assert.Equal(t, 228, got.Plan.DaysRemaining)

	require.Len(t, got.Plan.Goals, 3)
	assert.Equal(t, 45, got.Plan.Goals[0].DaysUntilDue)
	assert.Equal(t, UrgencyMedium, got.Plan.Goals[0].Urgency)
	assert.Equal(t, UrgencyLow, got.Plan.Goals[1].Urgency)
	assert.Equal(t, UrgencyHigh, got.Plan.Goals[2].Urgency)
}

func TestIDPManager_Reviewer(t *testing.T) {
	c := newTestComposer()

	got := c.IDPManager(mustUser(t, "shashank.ponna@powergridindia.com"))

	assert.True(t, got.Reviewer)
	assert.Nil(t, got.Plan)
	require.Len(t, got.Employees, 7)
	assert.True(t, got.Employees[0].HasIDP)
	assert.True(t, got.Employees[1].HasIDP)
	assert.False(t, got.Employees[2].HasIDP)
}

func TestUrgency(t *testing.T) {
	assert.Equal(t, UrgencyHigh, Urgency(-5))
	assert.Equal(t, UrgencyHigh, Urgency(29))
	assert.Equal(t, UrgencyMedium, Urgency(30))
	assert.Equal(t, UrgencyMedium, Urgency(59))
	assert.Equal(t, UrgencyLow, Urgency(60))
}

func TestAnalytics(t *testing.T) {
	c := newTestComposer()

	emp := c.Analytics(mustUser(t, "atharva.vaidya@powergridindia.com"))
	require.Len(t, emp.Departments, 6)
	// 88*0.8 + 0.5*20 = 80.4; 88*0.9 + 0.5*10 = 84.2
	assert.Equal(t, 80, emp.Departments[0].Efficiency)
	assert.Equal(t, 84, emp.Departments[0].Engagement)
	assert.Empty(t, emp.Budgets)
	assert.Equal(t, "285%", emp.KeyMetrics[3].Value)

	hr := c.Analytics(mustUser(t, "shashank.ponna@powergridindia.com"))
	require.Len(t, hr.Budgets, 5)
	assert.Equal(t, "₹542.0 Cr", hr.Budgets[0].Allocated)

	admin := c.Analytics(mustUser(t, "vivek.dalimbkar@powergridindia.com"))
	assert.Len(t, admin.Budgets, 5)
}

func TestAnalytics_RandomBounds(t *testing.T) {
	low := NewComposer(fixture.Default(), WithRandom(func() float64 { return 0 }))
	high := NewComposer(fixture.Default(), WithRandom(func() float64 { return 0.999 }))
	u := mustUser(t, "atharva.vaidya@powergridindia.com")

	for i, d := range low.Analytics(u).Departments {
		hd := high.Analytics(u).Departments[i]
		assert.LessOrEqual(t, d.Efficiency, hd.Efficiency)
		assert.LessOrEqual(t, hd.Efficiency-d.Efficiency, 20)
		assert.LessOrEqual(t, hd.Engagement-d.Engagement, 10)
	}
}

func TestMentorshipHub(t *testing.T) {
	c := newTestComposer()

	tests := []struct {
		name string
		q    domain.ScreenQuery
		want []string
	}{
		{name: "all", q: domain.ScreenQuery{}, want: []string{"2", "3", "4", "7", "5"}},
		{name: "search name", q: domain.ScreenQuery{Search: "neha"}, want: []string{"4"}},
		{name: "search skill", q: domain.ScreenQuery{Search: "leadership"}, want: []string{"3", "7"}},
		{name: "exact skill", q: domain.ScreenQuery{Skill: "Grid Management"}, want: []string{"2"}},
		{name: "skill all", q: domain.ScreenQuery{Skill: "all"}, want: []string{"2", "3", "4", "7", "5"}},
		{name: "skill is exact", q: domain.ScreenQuery{Skill: "grid management"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.MentorshipHub(tt.q)
			ids := make([]string, len(got.Mentors))
			for i, m := range got.Mentors {
				ids[i] = m.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	got := c.MentorshipHub(domain.ScreenQuery{})
	assert.Len(t, got.Skills, 20)
	assert.Equal(t, 65, got.AverageProgress)
	assert.Equal(t, 5, got.CompletedSessions)
	assert.Len(t, got.Upcoming, 2)
	assert.Len(t, got.Network, 3)
}
