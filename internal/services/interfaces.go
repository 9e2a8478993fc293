package services

import (
	"context"
	"time"

	"study-planner/internal/domain"
)

// RollupResult reports what a rollup pass did.
type RollupResult struct {
	WeeksSummarized int `json:"weeks_summarized"`
	EntriesRetired  int `json:"entries_retired"`
}

// ToggleOutcome describes how a toggle call resolved.
type ToggleOutcome string

const (
	// ToggleReopened means a done task was flipped back to not-done.
	ToggleReopened ToggleOutcome = "reopened"
	// ToggleCompleted means the task was flipped to done.
	ToggleCompleted ToggleOutcome = "completed"
	// ToggleNeedsInterval means the task has no log entry for today and
	// stays not-done until an interval is supplied.
	ToggleNeedsInterval ToggleOutcome = "needs-interval"
)

// ToggleResult carries the outcome and the task's state after the call.
type ToggleResult struct {
	Outcome ToggleOutcome   `json:"outcome"`
	Task    domain.TaskItem `json:"task"`
}

// NewTask is the input shape for adding tasks to the current day.
type NewTask struct {
	Title     string `json:"title"`
	SubjectID string `json:"subjectId"`
	Note      string `json:"note"`
}

// CategoryGroup is one category's slice of a logbook day.
type CategoryGroup struct {
	Category     domain.Category   `json:"category"`
	Entries      []domain.LogEntry `json:"entries"`
	TotalMinutes int               `json:"totalMinutes"`
}

// LogbookDay is one date's log entries grouped by category.
type LogbookDay struct {
	Date         string          `json:"date"`
	Groups       []CategoryGroup `json:"groups"`
	TotalMinutes int             `json:"totalMinutes"`
}

// SubjectAverage is a subject's per-day average within one weekly summary.
type SubjectAverage struct {
	SubjectID     string `json:"subjectId"`
	MinutesPerDay int    `json:"minutesPerDay"`
}

// WeeklyReportRow is one summary prepared for display.
type WeeklyReportRow struct {
	Summary         domain.WeeklySummary `json:"summary"`
	SubjectAverages []SubjectAverage     `json:"subjectAverages"`
}

// DayTotals aggregates one date's live log entries.
type DayTotals struct {
	Date         string         `json:"date"`
	TotalMinutes int            `json:"totalMinutes"`
	BySubject    map[string]int `json:"bySubject"`
}

// UnitProgress is one syllabus unit's completion state.
type UnitProgress struct {
	Unit      domain.Unit       `json:"unit"`
	Completed int               `json:"completed"`
	Total     int               `json:"total"`
	Percent   int               `json:"percent"`
	Status    domain.UnitStatus `json:"status"`
}

// SyllabusProgress is a subject's full completion breakdown.
type SyllabusProgress struct {
	SubjectID string         `json:"subjectId"`
	Units     []UnitProgress `json:"units"`
	Completed int            `json:"completed"`
	Total     int            `json:"total"`
	Percent   int            `json:"percent"`
}

// RollupService retires stale log entries into weekly summaries. It runs
// once per session, before anything else reads the log or summary stores.
type RollupService interface {
	Run(ctx context.Context) RollupResult
}

// DayService owns the current-day record and its rollover.
type DayService interface {
	// EnsureCurrentDay returns the day record for today, rolling the
	// previous day's unfinished items forward when the date has changed.
	EnsureCurrentDay(ctx context.Context) *domain.Day
}

// CompletionService mediates the not-done -> done transition. A task may
// only become done when a log entry exists for it on the current date.
type CompletionService interface {
	Toggle(ctx context.Context, taskID string) (*ToggleResult, error)
	CompleteWithInterval(ctx context.Context, taskID, startTime, endTime string) (*domain.LogEntry, error)
	LogTimedSession(ctx context.Context, taskID string, startedAt, endedAt time.Time) (*domain.LogEntry, error)
	AddTasks(ctx context.Context, tasks []NewTask) ([]domain.TaskItem, error)
}

// ReportingService prepares read-only views over logs and summaries.
type ReportingService interface {
	Logbook() []LogbookDay
	WeeklyReport() []WeeklyReportRow
	DayTotals(date string) DayTotals
}

// SyllabusService tracks per-subject study progress.
type SyllabusService interface {
	Progress(subjectID string) (*SyllabusProgress, error)
	SetSubunitFlags(ctx context.Context, subjectID, unitID, subunitID string, tute, past *bool) error
}

// ScheduleService owns the weekly class timetable.
type ScheduleService interface {
	Classes() []domain.Class
	TodayClasses() []domain.Class
	AddClass(ctx context.Context, name string, weekday int, start, end string) (*domain.Class, error)
}

// TestService records scored assessments.
type TestService interface {
	Tests() []domain.Test
	AddTest(ctx context.Context, name, subjectID, date string, score, total float64) (*domain.Test, error)
}
