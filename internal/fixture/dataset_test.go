package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	d := Default()

	assert.Len(t, d.Courses, 6)
	assert.Len(t, d.Notifications, 6)
	assert.Len(t, d.IDPs, 2)
	assert.Len(t, d.Mentors, 5)
	assert.Len(t, d.DepartmentBudgets, 5)
	assert.Len(t, d.Analytics.DepartmentProgress, 6)
	assert.Equal(t, 500, d.Analytics.TotalEmployees)
	assert.NotNil(t, d.Roster)
}

func TestDataset_IDPFor(t *testing.T) {
	d := Default()

	idp, ok := d.IDPFor("1")
	assert.True(t, ok)
	assert.Equal(t, "Grid Operations Specialist to Senior Engineer Transition", idp.Title)
	assert.Len(t, idp.Goals, 3)

	_, ok = d.IDPFor("9")
	assert.False(t, ok)
}
