package fixture

import "time"

// PlannedProgress is one month of a learner's completed vs planned courses.
type PlannedProgress struct {
	Month     string `json:"month"`
	Completed int    `json:"completed"`
	Planned   int    `json:"planned"`
}

// SkillTarget is a radar point with current and target levels.
type SkillTarget struct {
	Skill   string `json:"skill"`
	Subject string `json:"subject"`
	Current int    `json:"current"`
	Target  int    `json:"target"`
}

// Recommendation is a suggested next learning step.
type Recommendation struct {
	ID            int    `json:"id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Reason        string `json:"reason"`
	Priority      string `json:"priority"`
	EstimatedTime string `json:"estimatedTime"`
	Confidence    int    `json:"confidence"`
}

// Integration is the sync status of an external system.
type Integration struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	LastSync string `json:"lastSync"`
	Health   int    `json:"health"`
}

// LeadershipLearner is an employee on a leadership learning path.
type LeadershipLearner struct {
	Name         string `json:"name"`
	CurrentRole  string `json:"currentRole"`
	LearningPath string `json:"learningPath"`
	Progress     int    `json:"progress"`
	Department   string `json:"department"`
}

// SkillGap is an organisation-wide skill shortage.
type SkillGap struct {
	Skill     string `json:"skill"`
	Employees int    `json:"employees"`
	Gap       string `json:"gap"`
	Priority  string `json:"priority"`
}

// ProgramROI is the return of a training program, amounts in rupees.
type ProgramROI struct {
	Program string `json:"program"`
	Cost    int64  `json:"cost"`
	Savings int64  `json:"savings"`
	ROI     int    `json:"roi"`
}

// ManagedAccount is a privileged account administered from the admin board.
// LastSeen is how long ago the account last signed in.
type ManagedAccount struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Role       string        `json:"role"`
	Department string        `json:"department"`
	LastSeen   time.Duration `json:"-"`
	Status     string        `json:"status"`
}

// SystemHealth is host utilisation in percent.
type SystemHealth struct {
	CPU     int `json:"cpu"`
	Memory  int `json:"memory"`
	Storage int `json:"storage"`
	Network int `json:"network"`
}

// HourlyActivity is the number of active users at an hour of day.
type HourlyActivity struct {
	Hour   string `json:"hour"`
	Active int    `json:"active"`
}

// AuditEntry is one line of the admin audit log.
type AuditEntry struct {
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Severity  string `json:"severity"`
}

// ActiveMentorship is the signed-in learner's running mentorship.
type ActiveMentorship struct {
	ID                string `json:"id"`
	MentorName        string `json:"mentorName"`
	Focus             string `json:"focus"`
	StartDate         string `json:"startDate"`
	Progress          int    `json:"progress"`
	NextSession       string `json:"nextSession"`
	TotalSessions     int    `json:"totalSessions"`
	CompletedSessions int    `json:"completedSessions"`
}

// MentoringSession is a scheduled mentoring call.
type MentoringSession struct {
	ID         string `json:"id"`
	MentorName string `json:"mentorName"`
	Topic      string `json:"topic"`
	Date       string `json:"date"`
	Duration   string `json:"duration"`
	Type       string `json:"type"`
}

var employeeMonthly = []PlannedProgress{
	{Month: "Aug", Completed: 2, Planned: 3},
	{Month: "Sep", Completed: 3, Planned: 4},
	{Month: "Oct", Completed: 1, Planned: 2},
	{Month: "Nov", Completed: 4, Planned: 4},
	{Month: "Dec", Completed: 2, Planned: 3},
	{Month: "Jan", Completed: 3, Planned: 5},
}

var employeeSkillGaps = []SkillTarget{
	{Skill: "Grid Ops", Subject: "Grid Operations", Current: 75, Target: 90},
	{Skill: "SCADA", Subject: "SCADA Systems", Current: 85, Target: 95},
	{Skill: "Protection", Subject: "Protection Systems", Current: 60, Target: 85},
	{Skill: "Safety", Subject: "Safety Protocols", Current: 90, Target: 95},
	{Skill: "Analysis", Subject: "Data Analysis", Current: 70, Target: 80},
	{Skill: "Leadership", Subject: "Team Leadership", Current: 45, Target: 75},
}

var employeeRecommendations = []Recommendation{
	{ID: 1, Type: "course", Title: "Advanced Protection Systems", Reason: "Based on your Protection Systems skill gap", Priority: "high", EstimatedTime: "4 weeks", Confidence: 95},
	{ID: 2, Type: "mentor", Title: "Connect with Rajesh Kumar", Reason: "Transmission expert with 15+ years experience", Priority: "medium", EstimatedTime: "1 hour/week", Confidence: 88},
	{ID: 3, Type: "rotation", Title: "Control Room Assignment", Reason: "Enhance SCADA operations skills", Priority: "medium", EstimatedTime: "3 months", Confidence: 82},
}

var employeeIntegrations = []Integration{
	{Name: "HRMS", Status: "connected", LastSync: "2 min ago", Health: 98},
	{Name: "LMS", Status: "connected", LastSync: "1 min ago", Health: 100},
	{Name: "Performance", Status: "warning", LastSync: "1 hour ago", Health: 75},
}

var leadershipLearners = []LeadershipLearner{
	{Name: "Soham Patil", CurrentRole: "Senior Electrical Engineer", LearningPath: "Leadership in Engineering", Progress: 85, Department: "Transmission Engineering"},
	{Name: "Aditya Pharande", CurrentRole: "Operations Manager", LearningPath: "Advanced Operations Leadership", Progress: 78, Department: "Operations Management"},
	{Name: "Neha Kedar", CurrentRole: "IT & Digital Manager", LearningPath: "Digital Leadership Program", Progress: 82, Department: "IT & Digital"},
}

var criticalSkillGaps = []SkillGap{
	{Skill: "Advanced Grid Management", Employees: 18, Gap: "High", Priority: "Critical"},
	{Skill: "Renewable Integration", Employees: 25, Gap: "Medium", Priority: "High"},
	{Skill: "Digital Transformation", Employees: 32, Gap: "Medium", Priority: "Medium"},
	{Skill: "AI/ML", Employees: 12, Gap: "High", Priority: "Critical"},
}

var trainingROI = []ProgramROI{
	{Program: "Leadership Development", Cost: 4200000, Savings: 15500000, ROI: 270},
	{Program: "Technical Skills", Cost: 6300000, Savings: 18400000, ROI: 193},
	{Program: "Soft Skills", Cost: 2500000, Savings: 7900000, ROI: 217},
}

const day = 24 * time.Hour

var managedAccounts = []ManagedAccount{
	{ID: "2", Name: "Shashank Ponna", Email: "shashank.ponna@powergrid.in", Role: "hr", Department: "Learning & Development", LastSeen: day, Status: "active"},
	{ID: "hr2", Name: "Priya Sharma", Email: "priya.sharma@powergrid.in", Role: "hr", Department: "Learning & Development", LastSeen: day, Status: "active"},
	{ID: "mgr1", Name: "Rajesh Kumar", Email: "rajesh.kumar@powergrid.in", Role: "manager", Department: "Transmission", LastSeen: 2 * day, Status: "active"},
	{ID: "mgr2", Name: "Anita Desai", Email: "anita.desai@powergrid.in", Role: "manager", Department: "Distribution", LastSeen: 3 * day, Status: "active"},
	{ID: "admin2", Name: "Karthik Nair", Email: "karthik.nair@powergrid.in", Role: "admin", Department: "IT Administration", LastSeen: 5 * day, Status: "active"},
}

var systemHealth = SystemHealth{CPU: 45, Memory: 68, Storage: 32, Network: 12}

var userActivity = []HourlyActivity{
	{Hour: "00", Active: 45},
	{Hour: "04", Active: 12},
	{Hour: "08", Active: 234},
	{Hour: "12", Active: 567},
	{Hour: "16", Active: 489},
	{Hour: "20", Active: 234},
	{Hour: "24", Active: 98},
}

var adminIntegrations = []Integration{
	{Name: "HRMS System", Status: "connected", LastSync: "2 minutes ago", Health: 95},
	{Name: "LMS Platform", Status: "connected", LastSync: "5 minutes ago", Health: 98},
	{Name: "Performance System", Status: "warning", LastSync: "2 hours ago", Health: 78},
	{Name: "Payroll System", Status: "disconnected", LastSync: "1 day ago", Health: 0},
}

var auditLog = []AuditEntry{
	{Timestamp: "2025-01-15 10:30:00", User: "admin", Action: "User role updated", Details: "Changed Soham Patil role to Senior Engineer", Severity: "medium"},
	{Timestamp: "2025-01-15 09:15:00", User: "system", Action: "Data sync completed", Details: "PowerGrid HRMS sync completed successfully", Severity: "low"},
	{Timestamp: "2025-01-15 08:45:00", User: "hr_manager", Action: "IDP approved", Details: "Approved IDP for Atharva Vaidya", Severity: "low"},
	{Timestamp: "2025-01-15 08:30:00", User: "admin", Action: "Security alert", Details: "Multiple failed login attempts detected", Severity: "high"},
}

var currentMentorships = []ActiveMentorship{
	{ID: "1", MentorName: "Neha Kedar", Focus: "Grid Operations Optimization", StartDate: "2024-12-01", Progress: 65, NextSession: "2025-01-20T14:00:00Z", TotalSessions: 8, CompletedSessions: 5},
}

var upcomingSessions = []MentoringSession{
	{ID: "1", MentorName: "Neha Kedar", Topic: "Grid Operations Optimization Techniques", Date: "2025-01-20T14:00:00Z", Duration: "60 min", Type: "video"},
	{ID: "2", MentorName: "Soham Patil", Topic: "Advanced Grid Management Best Practices", Date: "2025-01-25T10:00:00Z", Duration: "45 min", Type: "phone"},
}
