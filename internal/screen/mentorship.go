package screen

import (
	"slices"
	"strings"

	"lms-hub/internal/domain"
	"lms-hub/internal/fixture"
)

// MentorshipHub lists mentors and the learner's mentoring activity.
type MentorshipHub struct {
	Query             domain.ScreenQuery         `json:"query"`
	Mentors           []domain.Mentor            `json:"mentors"`
	Skills            []string                   `json:"skills"`
	Current           []fixture.ActiveMentorship `json:"current"`
	AverageProgress   int                        `json:"averageProgress"`
	CompletedSessions int                        `json:"completedSessions"`
	Upcoming          []fixture.MentoringSession `json:"upcoming"`
	Network           []domain.Mentorship        `json:"network"`
}

// MentorshipHub filters mentors by q.Search over name and skills and by the
// exact skill q.Skill.
func (c *Composer) MentorshipHub(q domain.ScreenQuery) MentorshipHub {
	search := strings.ToLower(q.Search)

	var skills []string
	mentors := make([]domain.Mentor, 0, len(c.data.Mentors))
	for _, m := range c.data.Mentors {
		for _, s := range m.Skills {
			if !slices.Contains(skills, s) {
				skills = append(skills, s)
			}
		}
		if search != "" && !mentorMatches(m, search) {
			continue
		}
		if !filterDisabled(q.Skill) && !slices.Contains(m.Skills, q.Skill) {
			continue
		}
		mentors = append(mentors, m)
	}

	progress := make([]int, 0, len(c.data.CurrentMentorships))
	completed := 0
	for _, m := range c.data.CurrentMentorships {
		progress = append(progress, m.Progress)
		completed += m.CompletedSessions
	}

	return MentorshipHub{
		Query:             q,
		Mentors:           mentors,
		Skills:            skills,
		Current:           c.data.CurrentMentorships,
		AverageProgress:   roundedMean(progress),
		CompletedSessions: completed,
		Upcoming:          c.data.UpcomingSessions,
		Network:           c.data.MentorshipNetwork,
	}
}

func mentorMatches(m domain.Mentor, search string) bool {
	if strings.Contains(strings.ToLower(m.Name), search) {
		return true
	}
	for _, s := range m.Skills {
		if strings.Contains(strings.ToLower(s), search) {
			return true
		}
	}
	return false
}
