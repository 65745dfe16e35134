package screen

import (
	"slices"
	"strings"

	"lms-hub/internal/domain"
)

// CourseLibrary is the searchable course catalog.
type CourseLibrary struct {
	Query        domain.ScreenQuery `json:"query"`
	Courses      []domain.Course    `json:"courses"`
	Total        int                `json:"total"`
	Featured     []domain.Course    `json:"featured"`
	Popular      []domain.Course    `json:"popular"`
	Categories   []string           `json:"categories"`
	Difficulties []string           `json:"difficulties"`
}

var courseDifficulties = []string{"Beginner", "Intermediate", "Advanced"}

// CourseLibrary filters the catalog by q.Search over title and description,
// and by exact category and difficulty, all case-insensitive.
func (c *Composer) CourseLibrary(q domain.ScreenQuery) CourseLibrary {
	search := strings.ToLower(q.Search)

	matches := make([]domain.Course, 0, len(c.data.Courses))
	var categories []string
	for _, course := range c.data.Courses {
		if !slices.Contains(categories, course.Category) {
			categories = append(categories, course.Category)
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(course.Title), search) &&
			!strings.Contains(strings.ToLower(course.Description), search) {
			continue
		}
		if !filterDisabled(q.Category) && !strings.EqualFold(course.Category, q.Category) {
			continue
		}
		if !filterDisabled(q.Difficulty) && !strings.EqualFold(course.Difficulty, q.Difficulty) {
			continue
		}
		matches = append(matches, course)
	}

	// sort a copy; the catalog order is what "featured" means
	popular := slices.Clone(c.data.Courses)
	slices.SortStableFunc(popular, func(a, b domain.Course) int {
		return b.EnrolledCount - a.EnrolledCount
	})

	return CourseLibrary{
		Query:        q,
		Courses:      matches,
		Total:        len(matches),
		Featured:     firstN(c.data.Courses, 3),
		Popular:      firstN(popular, 4),
		Categories:   categories,
		Difficulties: courseDifficulties,
	}
}
