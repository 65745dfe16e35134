package screen

import "lms-hub/internal/fixture"

// LoginScreen is shown while nobody is signed in.
type LoginScreen struct {
	Title        string                `json:"title"`
	Subtitle     string                `json:"subtitle"`
	DemoAccounts []fixture.DemoAccount `json:"demoAccounts"`
	DemoPassword string                `json:"demoPassword"`
}

// Login builds the login screen.
func (c *Composer) Login() LoginScreen {
	return LoginScreen{
		Title:        "Powergrid LMS",
		Subtitle:     "Power Grid Corporation of India Limited - Learning Management System",
		DemoAccounts: fixture.DemoAccounts,
		DemoPassword: fixture.DemoPassword,
	}
}

// ComingSoon is the placeholder for features without a screen yet.
type ComingSoon struct {
	Feature string `json:"feature"`
	Message string `json:"message"`
}

// ComingSoonScreen builds the placeholder for feature.
func ComingSoonScreen(feature string) ComingSoon {
	return ComingSoon{Feature: feature, Message: feature + " coming soon..."}
}
