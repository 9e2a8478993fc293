package domain

// Category is the coarse grouping used by the log book and analytics.
// The mapping from subject to category is a single static table shared by
// every consumer; views must never re-derive it.
type Category string

const (
	CategoryStudy         Category = "study"
	CategoryExercise      Category = "exercise"
	CategoryEntertainment Category = "entertainment"
	CategoryPersonal      Category = "personal"
)

// categoryBySubject maps subject IDs to their category. Academic subjects
// collapse into "study"; the lifestyle subjects are their own category.
var categoryBySubject = map[string]Category{
	"physics":       CategoryStudy,
	"chemistry":     CategoryStudy,
	"combined":      CategoryStudy,
	"exercise":      CategoryExercise,
	"entertainment": CategoryEntertainment,
	"personal":      CategoryPersonal,
}

// CategoryFor returns the category for a subject ID. Unknown subjects fall
// into the personal category.
func CategoryFor(subjectID string) Category {
	if c, ok := categoryBySubject[subjectID]; ok {
		return c
	}
	return CategoryPersonal
}

// CategoryOrder returns the fixed display order for categories.
func CategoryOrder() []Category {
	return []Category{CategoryStudy, CategoryExercise, CategoryEntertainment, CategoryPersonal}
}

// AcademicSubjectIDs returns the subject IDs that carry syllabus data.
func AcademicSubjectIDs() []string {
	return []string{"physics", "chemistry", "combined"}
}

// IsAcademicSubject reports whether the subject maps to the study category.
func IsAcademicSubject(subjectID string) bool {
	return categoryBySubject[subjectID] == CategoryStudy
}
