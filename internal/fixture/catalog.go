package fixture

import "lms-hub/internal/domain"

// Courses is the course library.
var Courses = []domain.Course{
	{
		ID:             "1",
		Title:          "Advanced Grid Management Certification",
		Description:    "Master advanced power grid management, control systems, and stability analysis",
		Category:       "Technical Skills",
		Duration:       "8 weeks",
		Difficulty:     "Advanced",
		Instructor:     "Dr. Rajesh Sharma",
		Rating:         4.8,
		EnrolledCount:  124,
		Image:          "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=300&h=200&fit=crop",
		Tags:           []string{"Grid Management", "Power Systems", "Control Systems"},
		CompletionRate: 87,
	},
	{
		ID:             "2",
		Title:          "Electrical Safety Workshop",
		Description:    "Comprehensive electrical safety protocols and emergency procedures for transmission systems",
		Category:       "Safety & Compliance",
		Duration:       "4 weeks",
		Difficulty:     "Intermediate",
		Instructor:     "Priya Deshmukh",
		Rating:         4.9,
		EnrolledCount:  189,
		Image:          "https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?w=300&h=200&fit=crop",
		Tags:           []string{"Safety", "Electrical", "Protocols"},
		CompletionRate: 95,
	},
	{
		ID:             "3",
		Title:          "Renewable Integration Bootcamp",
		Description:    "Learn renewable energy integration techniques and smart grid technologies",
		Category:       "Digital Transformation",
		Duration:       "6 weeks",
		Difficulty:     "Advanced",
		Instructor:     "Arjun Nair",
		Rating:         4.7,
		EnrolledCount:  97,
		Image:          "https://images.unsplash.com/photo-1466611653911-95081537e5b7?w=300&h=200&fit=crop",
		Tags:           []string{"Renewable Energy", "Smart Grid", "Integration"},
		CompletionRate: 82,
	},
	{
		ID:             "4",
		Title:          "Leadership in Power Sector",
		Description:    "Develop leadership skills specific to power transmission and infrastructure management",
		Category:       "Leadership & Management",
		Duration:       "8 weeks",
		Difficulty:     "Intermediate",
		Instructor:     "Vivek Dalimbkar",
		Rating:         4.8,
		EnrolledCount:  156,
		Image:          "https://images.unsplash.com/photo-1552664730-d307ca884978?w=300&h=200&fit=crop",
		Tags:           []string{"Leadership", "Management", "Power Sector"},
		CompletionRate: 78,
	},
	{
		ID:             "5",
		Title:          "Power System Data Analytics",
		Description:    "Learn data analysis techniques for power system optimization and predictive maintenance",
		Category:       "Digital Transformation",
		Duration:       "10 weeks",
		Difficulty:     "Advanced",
		Instructor:     "Neha Kedar",
		Rating:         4.6,
		EnrolledCount:  143,
		Image:          "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=300&h=200&fit=crop",
		Tags:           []string{"Data Analytics", "Power Systems", "AI/ML"},
		CompletionRate: 73,
	},
	{
		ID:             "6",
		Title:          "SCADA Systems Operations",
		Description:    "Master SCADA system operations for grid monitoring and control",
		Category:       "Technical Skills",
		Duration:       "5 weeks",
		Difficulty:     "Intermediate",
		Instructor:     "Soham Patil",
		Rating:         4.7,
		EnrolledCount:  112,
		Image:          "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
		Tags:           []string{"SCADA", "Grid Operations", "Monitoring"},
		CompletionRate: 89,
	},
}

// Notifications is the shared inbox, newest first.
var Notifications = []domain.Notification{
	{ID: "1", Type: "deadline", Title: "Grid Operations IDP Review Due Soon", Message: "Your Individual Development Plan review is due in 3 days - contact Shashank Ponna", Date: "2025-01-15T10:00:00Z", Read: false, Priority: "high"},
	{ID: "2", Type: "training", Title: "New Power System Course Available", Message: "Advanced Grid Management Certification course is now available for enrollment", Date: "2025-01-14T15:30:00Z", Read: false, Priority: "medium"},
	{ID: "3", Type: "achievement", Title: "Power Systems Badge Earned", Message: "Congratulations! You earned the Grid Operations Specialist badge", Date: "2025-01-13T09:20:00Z", Read: true, Priority: "low"},
	{ID: "4", Type: "feedback", Title: "Mentor Feedback from Neha Kedar", Message: "Your mentor has provided feedback on your SCADA systems practical assignment", Date: "2025-01-12T14:45:00Z", Read: true, Priority: "medium"},
	{ID: "5", Type: "training", Title: "Safety Protocol Update", Message: "New electrical safety protocols have been released - mandatory training required", Date: "2025-01-11T08:00:00Z", Read: false, Priority: "high"},
	{ID: "6", Type: "system", Title: "PowerGrid LMS System Maintenance", Message: "Scheduled maintenance on Jan 18, 2025 from 2-4 AM IST", Date: "2025-01-10T16:00:00Z", Read: true, Priority: "medium"},
}

// Analytics is the organisation-wide learning summary.
var Analytics = domain.Analytics{
	TotalEmployees:    500,
	ActiveUsers:       380,
	CoursesCompleted:  2845,
	SkillGapsClosed:   456,
	AvgCompletionRate: 78,
	TrainingROI:       285,
	DepartmentProgress: []domain.DepartmentProgress{
		{Department: "Transmission Engineering", Completion: 88, Employees: 150, Budget: "₹54.2 Cr"},
		{Department: "Grid Operations", Completion: 79, Employees: 100, Budget: "₹32.5 Cr"},
		{Department: "Renewables Integration", Completion: 82, Employees: 85, Budget: "₹42.8 Cr"},
		{Department: "IT & Digital", Completion: 85, Employees: 70, Budget: "₹38.6 Cr"},
		{Department: "Finance & Audit", Completion: 87, Employees: 55, Budget: "₹19.4 Cr"},
		{Department: "Human Resources", Completion: 95, Employees: 40, Budget: "₹22.4 Cr"},
	},
	SkillDistribution: []domain.SkillCount{
		{Skill: "Power System Planning", Count: 234, Level: "Advanced"},
		{Skill: "Grid Management", Count: 456, Level: "Intermediate"},
		{Skill: "Electrical Safety", Count: 398, Level: "Advanced"},
		{Skill: "Renewable Integration", Count: 167, Level: "Intermediate"},
		{Skill: "Digital Transformation", Count: 123, Level: "Beginner"},
		{Skill: "SCADA Systems", Count: 189, Level: "Intermediate"},
	},
	MonthlyProgress: []domain.MonthlyProgress{
		{Month: "Jul", Completed: 52, Enrolled: 89},
		{Month: "Aug", Completed: 68, Enrolled: 95},
		{Month: "Sep", Completed: 61, Enrolled: 102},
		{Month: "Oct", Completed: 74, Enrolled: 108},
		{Month: "Nov", Completed: 71, Enrolled: 94},
		{Month: "Dec", Completed: 89, Enrolled: 101},
		{Month: "Jan", Completed: 73, Enrolled: 112},
	},
}

// IDPs holds the development plans, at most one per employee.
var IDPs = []domain.IDP{
	{
		ID:         "1",
		EmployeeID: "1",
		Title:      "Grid Operations Specialist to Senior Engineer Transition",
		Status:     "active",
		Progress:   65,
		StartDate:  "2024-09-01",
		EndDate:    "2025-08-31",
		Goals: []domain.Goal{
			{ID: "1", Title: "Complete Advanced Grid Management Certification", Description: "Obtain Advanced Grid Management certification for senior role progression", Status: domain.GoalInProgress, Progress: 70, DueDate: "2025-03-01"},
			{ID: "2", Title: "Lead Grid Optimization Project", Description: "Successfully lead a grid optimization project involving multiple substations", Status: domain.GoalNotStarted, Progress: 0, DueDate: "2025-06-01"},
			{ID: "3", Title: "Mentor Junior Grid Operators", Description: "Mentor at least 2 junior grid operations engineers", Status: domain.GoalCompleted, Progress: 100, DueDate: "2024-12-01"},
		},
		SkillGaps: []string{"Advanced Grid Management", "Team Leadership", "Power System Planning"},
		Recommendations: []string{
			"Enroll in Advanced Grid Management Certification course",
			"Schedule mentoring sessions with Soham Patil",
			"Join the Grid Operations Review Committee",
		},
	},
	{
		ID:         "2",
		EmployeeID: "2",
		Title:      "Senior Engineer to Engineering Manager Path",
		Status:     "active",
		Progress:   78,
		StartDate:  "2024-06-01",
		EndDate:    "2025-05-31",
		Goals: []domain.Goal{
			{ID: "1", Title: "Leadership in Power Sector Certification", Description: "Complete leadership development program for power sector management", Status: domain.GoalCompleted, Progress: 100, DueDate: "2024-12-01"},
			{ID: "2", Title: "Strategic Planning Workshop", Description: "Attend strategic planning workshop for transmission engineering", Status: domain.GoalInProgress, Progress: 60, DueDate: "2025-02-15"},
		},
		SkillGaps: []string{"Strategic Planning", "Budget Management"},
		Recommendations: []string{
			"Complete Strategic Planning Workshop",
			"Shadow current engineering managers",
			"Participate in budget planning exercises",
		},
	},
}

// DepartmentBudgets are the yearly training budgets in rupees.
var DepartmentBudgets = []domain.DepartmentBudget{
	{Department: "Transmission Engineering", Allocated: 5420000000, Used: 2850000000, Manager: "Priya Deshmukh"},
	{Department: "Renewables Integration", Allocated: 4280000000, Used: 2456000000, Manager: "Arjun Nair"},
	{Department: "IT & Digital", Allocated: 3860000000, Used: 2234000000, Manager: "Neha Kedar"},
	{Department: "Human Resources", Allocated: 2240000000, Used: 1890000000, Manager: "Shashank Ponna"},
	{Department: "Finance & Audit", Allocated: 1940000000, Used: 1456000000, Manager: "Ravi Kumar"},
}

// MentorshipNetwork lists the active mentor/mentee pairs.
var MentorshipNetwork = []domain.Mentorship{
	{MentorID: "3", MentorName: "Aditya Pharande", MenteeID: "2", MenteeName: "Soham Patil", Focus: "Electrical Systems & Safety"},
	{MentorID: "4", MentorName: "Neha Kedar", MenteeID: "1", MenteeName: "Atharva Vaidya", Focus: "Grid Operations Optimization"},
	{MentorID: "2", MentorName: "Soham Patil", MenteeID: "4", MenteeName: "Neha Kedar", Focus: "Renewable Energy Integration"},
}

// Mentors are the colleagues offering mentoring sessions.
var Mentors = []domain.Mentor{
	{
		ID: "2", Name: "Soham Patil", Position: "Senior Electrical Engineer", Department: "Transmission Engineering",
		Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		Rating: 4.9, Sessions: 52,
		Skills:          []string{"Power System Planning", "Grid Management", "Electrical Safety", "Transmission Lines"},
		Availability:    "Weekdays 2-4 PM",
		Bio:             "Senior electrical engineer with extensive experience in power system planning and grid management. Specializes in mentoring junior engineers in electrical safety and transmission systems.",
		YearsExperience: 15,
	},
	{
		ID: "3", Name: "Aditya Pharande", Position: "Operations Manager - Transmission Projects", Department: "Operations Management",
		Avatar: "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=150&h=150&fit=crop&crop=face",
		Rating: 4.8, Sessions: 45,
		Skills:          []string{"Transmission Projects", "Operations Excellence", "Project Management", "Team Leadership"},
		Availability:    "Weekdays 10-12 AM",
		Bio:             "Operations manager with proven expertise in transmission projects and operations excellence. Passionate about developing future leaders in power sector operations.",
		YearsExperience: 12,
	},
	{
		ID: "4", Name: "Neha Kedar", Position: "IT & Digital Manager / Renewable Integration Specialist", Department: "IT & Digital",
		Avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		Rating: 4.7, Sessions: 38,
		Skills:          []string{"Renewable Integration", "Digital Transformation", "Smart Grid Tech", "Data Analytics"},
		Availability:    "Flexible",
		Bio:             "Digital transformation leader specializing in renewable energy integration and smart grid technologies. Expert mentor for grid operations optimization and modern power systems.",
		YearsExperience: 10,
	},
	{
		ID: "7", Name: "Priya Deshmukh", Position: "Transmission Engineering Manager", Department: "Transmission Engineering",
		Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
		Rating: 4.9, Sessions: 67,
		Skills:          []string{"Transmission Engineering", "Project Planning", "Technical Leadership", "Grid Design"},
		Availability:    "Weekdays 3-5 PM",
		Bio:             "Transmission engineering manager with extensive experience in grid design and project planning. Committed to developing technical excellence in power transmission systems.",
		YearsExperience: 18,
	},
	{
		ID: "5", Name: "Shashank Ponna", Position: "HR Manager", Department: "Human Resources",
		Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		Rating: 4.8, Sessions: 43,
		Skills:          []string{"Talent Management", "Performance Review", "Learning Strategy", "Career Development"},
		Availability:    "Weekdays 1-3 PM",
		Bio:             "HR manager specializing in talent development and performance management within the power sector. Expert in designing career development pathways for technical professionals.",
		YearsExperience: 14,
	},
}
