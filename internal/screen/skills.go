package screen

import (
	"slices"
	"strings"

	"lms-hub/internal/domain"
)

// SkillRow is one tracked skill with its target.
type SkillRow struct {
	Skill     string `json:"skill"`
	Current   int    `json:"current"`
	Target    int    `json:"target"`
	Gap       int    `json:"gap"`
	Category  string `json:"category"`
	LevelText string `json:"levelText"`
}

// RadarPoint is one axis of the skills radar.
type RadarPoint struct {
	Skill   string `json:"skill"`
	Current int    `json:"current"`
	Target  int    `json:"target"`
}

// SkillsTracker is the skill profile of the signed-in user.
type SkillsTracker struct {
	Category    string          `json:"category"`
	Skills      []SkillRow      `json:"skills"`
	Radar       []RadarPoint    `json:"radar"`
	Gaps        []SkillRow      `json:"gaps"`
	TopSkills   []SkillRow      `json:"topSkills"`
	Average     int             `json:"average"`
	Recommended []domain.Course `json:"recommended"`
}

const (
	targetStep    = 15
	gapThreshold  = 10
	topSkillLevel = 80
	radarAxes     = 6
	radarLabelLen = 10
	maxRecommend  = 3
)

// SkillCategory guesses the category of a skill from its name.
func SkillCategory(skill string) string {
	has := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(skill, s) {
				return true
			}
		}
		return false
	}

	switch {
	case has("React", "TypeScript", "Node", "AWS"):
		return "technical"
	case has("Leadership"):
		return "leadership"
	case has("Communication", "Social"):
		return "communication"
	case has("Design", "UX", "Figma"):
		return "creative"
	default:
		return "analytical"
	}
}

// SkillsTracker builds the skill profile of identity. q.Category narrows the
// skill list only; radar, gaps and top skills always cover every skill.
func (c *Composer) SkillsTracker(identity *domain.Identity, q domain.ScreenQuery) SkillsTracker {
	all := make([]SkillRow, 0, len(identity.Skills))
	levels := make([]int, 0, len(identity.Skills))
	for _, skill := range identity.Skills {
		cur := identity.SkillLevel(skill)
		target := min(cur+targetStep, 100)
		all = append(all, SkillRow{
			Skill:     skill,
			Current:   cur,
			Target:    target,
			Gap:       target - cur,
			Category:  SkillCategory(skill),
			LevelText: LevelText(cur),
		})
		levels = append(levels, cur)
	}

	radar := make([]RadarPoint, 0, radarAxes)
	for _, row := range firstN(all, radarAxes) {
		radar = append(radar, RadarPoint{Skill: truncate(row.Skill, radarLabelLen), Current: row.Current, Target: row.Target})
	}

	var gaps, top []SkillRow
	for _, row := range all {
		if row.Gap > gapThreshold {
			gaps = append(gaps, row)
		}
		if row.Current >= topSkillLevel {
			top = append(top, row)
		}
	}
	slices.SortStableFunc(gaps, func(a, b SkillRow) int { return b.Gap - a.Gap })
	slices.SortStableFunc(top, func(a, b SkillRow) int { return b.Current - a.Current })

	shown := all
	if !filterDisabled(q.Category) {
		shown = nil
		for _, row := range all {
			if strings.EqualFold(row.Category, q.Category) {
				shown = append(shown, row)
			}
		}
	}

	category := q.Category
	if filterDisabled(category) {
		category = "all"
	}

	return SkillsTracker{
		Category:    category,
		Skills:      shown,
		Radar:       radar,
		Gaps:        gaps,
		TopSkills:   top,
		Average:     roundedMean(levels),
		Recommended: c.coursesForGaps(gaps),
	}
}

// coursesForGaps returns courses with a tag contained in a gap skill name.
func (c *Composer) coursesForGaps(gaps []SkillRow) []domain.Course {
	var out []domain.Course
	for _, course := range c.data.Courses {
		if len(out) == maxRecommend {
			break
		}
		if courseCoversGap(course, gaps) {
			out = append(out, course)
		}
	}
	return out
}

func courseCoversGap(course domain.Course, gaps []SkillRow) bool {
	for _, gap := range gaps {
		name := strings.ToLower(gap.Skill)
		for _, tag := range course.Tags {
			if strings.Contains(name, strings.ToLower(tag)) {
				return true
			}
		}
	}
	return false
}
