// Package fixture holds the static, read-only dataset the dashboard renders.
package fixture

import "lms-hub/internal/domain"

// Roster is the static list of known identities. Implements domain.Roster.
type Roster struct {
	users []domain.Identity
}

// NewRoster creates a roster over users. The slice is not copied.
func NewRoster(users []domain.Identity) *Roster {
	return &Roster{users: users}
}

// DefaultRoster returns the built-in roster.
func DefaultRoster() *Roster {
	return NewRoster(Users)
}

// FindByEmail returns a copy of the identity whose email matches exactly.
func (r *Roster) FindByEmail(email string) (*domain.Identity, bool) {
	for i := range r.users {
		if r.users[i].Email == email {
			return r.users[i].Clone(), true
		}
	}
	return nil, false
}

// All returns copies of every identity in roster order.
func (r *Roster) All() []domain.Identity {
	out := make([]domain.Identity, len(r.users))
	for i := range r.users {
		out[i] = *r.users[i].Clone()
	}
	return out
}

// ByRole returns the identities holding role, in roster order.
func (r *Roster) ByRole(role domain.Role) []domain.Identity {
	var out []domain.Identity
	for i := range r.users {
		if r.users[i].Role == role {
			out = append(out, *r.users[i].Clone())
		}
	}
	return out
}

// Quick-login tabs of the login screen.
const (
	TabEmployee = "employee"
	TabHR       = "hr"
	TabAdmin    = "admin"
)

// DemoAccount is a quick-login entry shown on the login screen.
// Tab is the group it is listed under, which need not match Role.
type DemoAccount struct {
	Tab   string      `json:"tab"`
	Label string      `json:"label"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// DemoPassword is the placeholder password the quick-login buttons submit.
const DemoPassword = "password123"

// DemoAccounts lists the quick-login accounts of the login screen.
var DemoAccounts = []DemoAccount{
	{Tab: TabEmployee, Label: "Atharva Vaidya - Grid Operations Engineer", Email: "atharva.vaidya@powergridindia.com", Role: domain.RoleEmployee},
	{Tab: TabEmployee, Label: "Soham Patil - Senior Electrical Engineer", Email: "soham.patil@powergridindia.com", Role: domain.RoleEmployee},
	{Tab: TabEmployee, Label: "Neha Kedar - IT & Digital Manager", Email: "neha.kedar@powergridindia.com", Role: domain.RoleEmployee},
	{Tab: TabHR, Label: "Shashank Ponna - HR Manager", Email: "shashank.ponna@powergridindia.com", Role: domain.RoleHR},
	{Tab: TabHR, Label: "Priya Deshmukh - Transmission Engineering Manager", Email: "priya.deshmukh@powergridindia.com", Role: domain.RoleEmployee},
	{Tab: TabAdmin, Label: "Vivek Dalimbkar - Corporate Administrator", Email: "vivek.dalimbkar@powergridindia.com", Role: domain.RoleAdmin},
}

// DemoTabs lists the quick-login tabs in display order.
var DemoTabs = []string{TabEmployee, TabHR, TabAdmin}

// Users is the built-in roster content.
var Users = []domain.Identity{
	{
		ID:                "1",
		Name:              "Atharva Vaidya",
		Email:             "atharva.vaidya@powergridindia.com",
		Role:              domain.RoleEmployee,
		Department:        "Grid Operations",
		Position:          "Grid Operations Engineer",
		Avatar:            "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		Skills:            []string{"Grid Operations", "Power System Analysis", "SCADA Systems", "Load Dispatch"},
		SkillLevels:       map[string]int{"Grid Operations": 85, "Power System Analysis": 78, "SCADA Systems": 82, "Load Dispatch": 75},
		CompletedCourses:  12,
		InProgressCourses: 3,
		JoinDate:          "2022-03-15",
		LastLogin:         "2025-01-15T10:30:00Z",
	},
	{
		ID:                "2",
		Name:              "Soham Patil",
		Email:             "soham.patil@powergridindia.com",
		Role:              domain.RoleEmployee,
		Department:        "Transmission Engineering",
		Position:          "Senior Electrical Engineer",
		Avatar:            "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		Skills:            []string{"Power System Planning", "Grid Management", "Electrical Safety", "Transmission Lines"},
		SkillLevels:       map[string]int{"Power System Planning": 92, "Grid Management": 88, "Electrical Safety": 95, "Transmission Lines": 85},
		CompletedCourses:  18,
		InProgressCourses: 2,
		JoinDate:          "2021-08-10",
		LastLogin:         "2025-01-15T11:45:00Z",
	},
	{
		ID:                "3",
		Name:              "Aditya Pharande",
		Email:             "aditya.pharande@powergridindia.com",
		Role:              domain.RoleEmployee,
		Department:        "Operations Management",
		Position:          "Operations Manager - Transmission Projects",
		Avatar:            "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=150&h=150&fit=crop&crop=face",
		Skills:            []string{"Transmission Projects", "Operations Excellence", "Project Management", "Electrical Safety"},
		SkillLevels:       map[string]int{"Transmission Projects": 90, "Operations Excellence": 87, "Project Management": 84, "Electrical Safety": 92},
		CompletedCourses:  15,
		InProgressCourses: 1,
		JoinDate:          "2020-05-12",
		LastLogin:         "2025-01-15T09:15:00Z",
	},
	{
		ID:                "4",
		Name:              "Neha Kedar",
		Email:             "neha.kedar@powergridindia.com",
		Role:              domain.RoleEmployee,
		Department:        "IT & Digital",
		Position:          "IT & Digital Manager / Renewable Integration Specialist",
		Avatar:            "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		Skills:            []string{"Renewable Integration", "Digital Transformation", "Smart Grid Tech", "Data Analytics"},
		SkillLevels:       map[string]int{"Renewable Integration": 89, "Digital Transformation": 85, "Smart Grid Tech": 82, "Data Analytics": 78},
		CompletedCourses:  16,
		InProgressCourses: 2,
		JoinDate:          "2021-11-20",
		LastLogin:         "2025-01-15T08:45:00Z",
	},
	{
		ID:                "5",
		Name:              "Shashank Ponna",
		Email:             "shashank.ponna@powergridindia.com",
		Role:              domain.RoleHR,
		Department:        "Human Resources",
		Position:          "HR Manager",
		Avatar:            "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		Skills:            []string{"Talent Management", "Performance Review", "Learning Strategy", "Team Development"},
		SkillLevels:       map[string]int{"Talent Management": 90, "Performance Review": 85, "Learning Strategy": 88, "Team Development": 82},
		CompletedCourses:  22,
		InProgressCourses: 2,
		JoinDate:          "2019-07-15",
		LastLogin:         "2025-01-15T08:30:00Z",
	},
	{
		ID:                "6",
		Name:              "Vivek Dalimbkar",
		Email:             "vivek.dalimbkar@powergridindia.com",
		Role:              domain.RoleAdmin,
		Department:        "Corporate Administration",
		Position:          "Corporate Administrator",
		Avatar:            "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		Skills:            []string{"System Administration", "Security Management", "Corporate Governance", "Strategic Planning"},
		SkillLevels:       map[string]int{"System Administration": 95, "Security Management": 88, "Corporate Governance": 92, "Strategic Planning": 85},
		CompletedCourses:  28,
		InProgressCourses: 2,
		JoinDate:          "2018-02-15",
		LastLogin:         "2025-01-15T06:00:00Z",
	},
	{
		ID:                "7",
		Name:              "Priya Deshmukh",
		Email:             "priya.deshmukh@powergridindia.com",
		Role:              domain.RoleEmployee,
		Department:        "Transmission Engineering",
		Position:          "Transmission Engineering Manager",
		Avatar:            "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
		Skills:            []string{"Transmission Engineering", "Project Planning", "Technical Leadership", "Grid Design"},
		SkillLevels:       map[string]int{"Transmission Engineering": 93, "Project Planning": 87, "Technical Leadership": 85, "Grid Design": 90},
		CompletedCourses:  20,
		InProgressCourses: 1,
		JoinDate:          "2019-03-10",
		LastLogin:         "2025-01-15T07:20:00Z",
	},
	{
		ID:                "8",
		Name:              "Arjun Nair",
		Email:             "arjun.nair@powergridindia.com",
		Role:              domain.RoleEmployee,
		Department:        "Renewables Integration",
		Position:          "Renewables Integration Manager",
		Avatar:            "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=150&h=150&fit=crop&crop=face",
		Skills:            []string{"Renewable Energy", "Grid Integration", "Clean Energy Tech", "Sustainability"},
		SkillLevels:       map[string]int{"Renewable Energy": 91, "Grid Integration": 86, "Clean Energy Tech": 83, "Sustainability": 88},
		CompletedCourses:  17,
		InProgressCourses: 3,
		JoinDate:          "2020-09-05",
		LastLogin:         "2025-01-15T07:45:00Z",
	},
	{
		ID:                "9",
		Name:              "Ravi Kumar",
		Email:             "ravi.kumar@powergridindia.com",
		Role:              domain.RoleEmployee,
		Department:        "Finance & Audit",
		Position:          "Finance & Audit Manager",
		Avatar:            "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		Skills:            []string{"Financial Analysis", "Audit Management", "Budget Planning", "Risk Assessment"},
		SkillLevels:       map[string]int{"Financial Analysis": 89, "Audit Management": 92, "Budget Planning": 86, "Risk Assessment": 84},
		CompletedCourses:  14,
		InProgressCourses: 2,
		JoinDate:          "2020-01-20",
		LastLogin:         "2025-01-15T08:15:00Z",
	},
}
