package domain

// Baseline data seeds a collection the first time the backing store returns
// nothing for it, and is the fail-closed fallback when a stored collection
// cannot be decoded.

// BaselineSubjects returns the static subject table.
func BaselineSubjects() []Subject {
	return []Subject{
		{ID: "physics", Name: "Physics", Color: "#6366f1"},
		{ID: "chemistry", Name: "Chemistry", Color: "#10b981"},
		{ID: "combined", Name: "Combined Maths", Color: "#f59e0b"},
		{ID: "exercise", Name: "Exercise", Color: "#ef4444"},
		{ID: "entertainment", Name: "Entertainment", Color: "#8b5cf6"},
		{ID: "personal", Name: "Personal", Color: "#64748b"},
	}
}

// SubjectByID looks a subject up in the static table.
func SubjectByID(id string) (Subject, bool) {
	for _, s := range BaselineSubjects() {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// BaselineSyllabus returns a starter syllabus skeleton, one per academic
// subject, ready for units to be filled in.
func BaselineSyllabus() []Syllabus {
	out := make([]Syllabus, 0, len(AcademicSubjectIDs()))
	for _, id := range AcademicSubjectIDs() {
		out = append(out, Syllabus{SubjectID: id, Units: []Unit{}})
	}
	return out
}

// BaselineLogs returns the initial empty log collection.
func BaselineLogs() []LogEntry { return []LogEntry{} }

// BaselineSummaries returns the initial empty weekly summary collection.
func BaselineSummaries() []WeeklySummary { return []WeeklySummary{} }

// BaselineTests returns the initial empty test collection.
func BaselineTests() []Test { return []Test{} }

// BaselineClasses returns the initial empty class collection.
func BaselineClasses() []Class { return []Class{} }
