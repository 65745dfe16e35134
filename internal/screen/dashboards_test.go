package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeDashboard(t *testing.T) {
	c := newTestComposer()
	u := mustUser(t, "atharva.vaidya@powergridindia.com")

	got := c.EmployeeDashboard(u)

	assert.Equal(t, "AV", got.Profile.Initials)
	assert.Equal(t, 12, got.Stats.CompletedCourses)
	assert.Equal(t, 3, got.Stats.InProgressCourses)
	assert.Equal(t, 4, got.Stats.Skills)
	// (85+78+82+75)/4 = 80
	assert.Equal(t, 80, got.Stats.AverageSkillLevel)

	require.Len(t, got.SkillProgress, 4)
	assert.Equal(t, SkillProgress{Skill: "Grid Operations", Level: 85, Band: "high"}, got.SkillProgress[0])
	assert.Equal(t, "medium", got.SkillProgress[3].Band)

	require.NotNil(t, got.CurrentIDP)
	assert.Equal(t, "1", got.CurrentIDP.ID)
	assert.Len(t, got.CurrentIDP.Goals, 3)

	require.Len(t, got.Notifications, 3)
	for _, n := range got.Notifications {
		assert.False(t, n.Read)
	}
	assert.Equal(t, []string{"1", "2", "5"}, []string{got.Notifications[0].ID, got.Notifications[1].ID, got.Notifications[2].ID})

	assert.Len(t, got.RecommendedCourses, 3)
	assert.Len(t, got.MonthlyProgress, 6)
	assert.Len(t, got.SkillGaps, 6)
}

func TestEmployeeDashboard_WithoutIDP(t *testing.T) {
	c := newTestComposer()

	got := c.EmployeeDashboard(mustUser(t, "ravi.kumar@powergridindia.com"))

	assert.Nil(t, got.CurrentIDP)
}

func TestHRDashboard(t *testing.T) {
	c := newTestComposer()

	got := c.HRDashboard()

	assert.Equal(t, 500, got.TotalEmployees)
	assert.Equal(t, 78, got.AvgCompletionRate)

	require.Len(t, got.Employees, 5)
	assert.Equal(t, "Atharva Vaidya", got.Employees[0].Name)
	assert.True(t, got.Employees[0].HasIDP)
	assert.Equal(t, 65, got.Employees[0].IDPProgress)
	assert.False(t, got.Employees[2].HasIDP)

	require.Len(t, got.Departments, 6)
	assert.Equal(t, "₹542.0 Cr", got.Departments[0].Budget)
	assert.Equal(t, 53, got.Departments[0].UsedPercent)
	// no budget entry: keeps the summary figure
	assert.Equal(t, "Grid Operations", got.Departments[1].Department)
	assert.Equal(t, "₹32.5 Cr", got.Departments[1].Budget)
	assert.Empty(t, got.Departments[1].Used)

	require.Len(t, got.Programs, 3)
	assert.Equal(t, ProgramRow{Program: "Leadership Development", Cost: "₹42.0 L", Savings: "₹1.6 Cr", ROI: 270}, got.Programs[0])
	assert.Len(t, got.LeadershipLearners, 3)
	assert.Len(t, got.CriticalSkillGaps, 4)
}

func TestAdminDashboard(t *testing.T) {
	c := newTestComposer()

	got := c.AdminDashboard()

	require.Len(t, got.Accounts, 5)
	assert.Equal(t, "2025-01-14", got.Accounts[0].LastLogin)
	assert.Equal(t, 1, got.Accounts[0].DaysAgo)
	assert.Equal(t, "2025-01-10", got.Accounts[4].LastLogin)
	assert.Equal(t, map[string]int{"hr": 2, "manager": 2, "admin": 1}, got.RoleCounts)
	for _, a := range got.Accounts {
		assert.NotEqual(t, "employee", a.Role)
	}
	assert.Equal(t, 45, got.SystemHealth.CPU)
	assert.Len(t, got.AuditLog, 4)
	assert.Len(t, got.Integrations, 4)
}
