package domain

// Course is a catalog entry of the course library.
type Course struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Duration       string   `json:"duration"`
	Difficulty     string   `json:"difficulty"`
	Instructor     string   `json:"instructor"`
	Rating         float64  `json:"rating"`
	EnrolledCount  int      `json:"enrolledCount"`
	Image          string   `json:"image"`
	Tags           []string `json:"tags"`
	CompletionRate int      `json:"completionRate"`
}

// Goal statuses.
const (
	GoalNotStarted = "not-started"
	GoalInProgress = "in-progress"
	GoalCompleted  = "completed"
)

// Goal is one milestone of an IDP.
type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	DueDate     string `json:"dueDate"`
}

// IDP is an individual development plan.
type IDP struct {
	ID              string   `json:"id"`
	EmployeeID      string   `json:"employeeId"`
	Title           string   `json:"title"`
	Status          string   `json:"status"`
	Progress        int      `json:"progress"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Goals           []Goal   `json:"goals"`
	SkillGaps       []string `json:"skillGaps"`
	Recommendations []string `json:"recommendations"`
}

// Notification is an inbox entry.
type Notification struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Date     string `json:"date"`
	Read     bool   `json:"read"`
	Priority string `json:"priority"`
}

// DepartmentProgress is the completion rate of one department.
type DepartmentProgress struct {
	Department string `json:"department"`
	Completion int    `json:"completion"`
	Employees  int    `json:"employees"`
	Budget     string `json:"budget,omitempty"`
}

// SkillCount is how many employees hold a skill at a level.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
	Level string `json:"level"`
}

// MonthlyProgress is one point of the enrolment/completion series.
type MonthlyProgress struct {
	Month     string `json:"month"`
	Completed int    `json:"completed"`
	Enrolled  int    `json:"enrolled"`
}

// Analytics is the organisation-wide learning summary.
type Analytics struct {
	TotalEmployees     int                  `json:"totalEmployees"`
	ActiveUsers        int                  `json:"activeUsers"`
	CoursesCompleted   int                  `json:"coursesCompleted"`
	SkillGapsClosed    int                  `json:"skillGapsClosed"`
	AvgCompletionRate  int                  `json:"avgCompletionRate"`
	TrainingROI        int                  `json:"trainingROI"`
	DepartmentProgress []DepartmentProgress `json:"departmentProgress"`
	SkillDistribution  []SkillCount         `json:"skillDistribution"`
	MonthlyProgress    []MonthlyProgress    `json:"monthlyProgress"`
}

// DepartmentBudget is the training budget of a department in rupees.
type DepartmentBudget struct {
	Department string `json:"department"`
	Allocated  int64  `json:"allocated"`
	Used       int64  `json:"used"`
	Manager    string `json:"manager"`
}

// Mentor is a colleague offering mentoring.
type Mentor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Position        string   `json:"position"`
	Department      string   `json:"department"`
	Avatar          string   `json:"avatar,omitempty"`
	Rating          float64  `json:"rating"`
	Sessions        int      `json:"sessions"`
	Skills          []string `json:"skills"`
	Availability    string   `json:"availability"`
	Bio             string   `json:"bio"`
	YearsExperience int      `json:"yearsExperience"`
}

// Mentorship links a mentor and a mentee on a focus area.
type Mentorship struct {
	MentorID   string `json:"mentorId"`
	MentorName string `json:"mentorName"`
	MenteeID   string `json:"menteeId"`
	MenteeName string `json:"menteeName"`
	Focus      string `json:"focus"`
}
