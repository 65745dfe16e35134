package domain

// Role identifies which dashboard family a user sees.
type Role string

// Known roles.
const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleHR, RoleAdmin:
		return true
	default:
		return false
	}
}

// Identity is the authenticated user record held by the session store.
// Its JSON form is the persisted cache layout.
type Identity struct {
	ID                string         `json:"id" validate:"required"`
	Name              string         `json:"name" validate:"required"`
	Email             string         `json:"email" validate:"required,email"`
	Role              Role           `json:"role" validate:"required,lms_role"`
	Department        string         `json:"department"`
	Position          string         `json:"position"`
	Avatar            string         `json:"avatar,omitempty"`
	Skills            []string       `json:"skills"`
	SkillLevels       map[string]int `json:"skillLevels" validate:"dive,min=0,max=100"`
	CompletedCourses  int            `json:"completedCourses" validate:"min=0"`
	InProgressCourses int            `json:"inProgressCourses" validate:"min=0"`
	JoinDate          string         `json:"joinDate"`
	LastLogin         string         `json:"lastLogin"`
}

// SkillLevel returns the recorded level for skill, zero when unknown.
func (i *Identity) SkillLevel(skill string) int {
	if i == nil || i.SkillLevels == nil {
		return 0
	}
	return i.SkillLevels[skill]
}

// Initials returns the first letter of every word of the name.
func (i *Identity) Initials() string {
	var out []rune
	start := true
	for _, r := range i.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}

// Clone returns a deep copy so callers cannot mutate the session's identity.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	c.Skills = append([]string(nil), i.Skills...)
	if i.SkillLevels != nil {
		c.SkillLevels = make(map[string]int, len(i.SkillLevels))
		for k, v := range i.SkillLevels {
			c.SkillLevels[k] = v
		}
	}
	return &c
}
