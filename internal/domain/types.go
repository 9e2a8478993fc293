package domain

// CalendarDate values are local civil dates formatted as YYYY-MM-DD.
// ClockTime values are 24-hour wall-clock times formatted as HH:MM.

// Subject represents a category label attached to tasks and logs. The
// academic subjects carry syllabus data; the remaining subjects exist so
// non-academic activity can be logged against something.
type Subject struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LocalName string `json:"localName,omitempty"`
	Color     string `json:"color"`
}

// TaskItem is a single entry on the current day's task list. It is never
// persisted on its own; it always travels inside its parent Day.
type TaskItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	SubjectID string `json:"subjectId"`
	Note      string `json:"note"`
	Done      bool   `json:"done"`
}

// Day is the container for the current date's task items. Exactly one Day
// is current at any time; a Day whose Date is in the past is stale and must
// be replaced by rollover before use.
type Day struct {
	Date  string     `json:"date"`
	Items []TaskItem `json:"items"`
}

// FindItem returns a pointer to the item with the given ID, or nil.
func (d *Day) FindItem(id string) *TaskItem {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

// LogEntry records one completed activity interval. Task title and subject
// are denormalized copies taken at creation time, so later edits to the task
// never retroactively alter history.
type LogEntry struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	TaskID          string `json:"todoItemId"`
	TaskTitle       string `json:"todoItemTitle"`
	SubjectID       string `json:"subjectId"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// WeeklySummary is the aggregate of one past week's log entries, keyed by
// the Sunday that week began on. Averages always divide by seven days.
type WeeklySummary struct {
	WeekOf               string         `json:"weekOf"`
	TotalMinutes         int            `json:"totalMinutes"`
	AverageMinutesPerDay int            `json:"averageMinutesPerDay"`
	SubjectAverages      map[string]int `json:"subjectAverages"`
}

// Subunit is the smallest unit of syllabus progress. A subunit counts as
// complete when both the tutorial and past-paper flags are set.
type Subunit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LocalName string `json:"localName,omitempty"`
	TuteDone  bool   `json:"tuteDone"`
	PastDone  bool   `json:"pastDone"`
}

// UnitStatus describes how far along a syllabus unit is.
type UnitStatus string

const (
	UnitNotStarted UnitStatus = "not-started"
	UnitOngoing    UnitStatus = "ongoing"
	UnitCompleted  UnitStatus = "completed"
)

// Unit groups subunits within a subject's syllabus.
type Unit struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	LocalName string     `json:"localName,omitempty"`
	Subunits  []Subunit  `json:"subunits"`
	Status    UnitStatus `json:"status,omitempty"`
}

// Syllabus holds the full unit breakdown for one academic subject.
type Syllabus struct {
	SubjectID string `json:"subjectId"`
	Units     []Unit `json:"units"`
}

// Test records a scored assessment for a subject.
type Test struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SubjectID string  `json:"subjectId"`
	Date      string  `json:"date"`
	Score     float64 `json:"score"`
	Total     float64 `json:"total"`
}

// Class is a recurring weekly lesson. Weekday follows time.Weekday
// numbering (Sunday == 0).
type Class struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Weekday int    `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
}
