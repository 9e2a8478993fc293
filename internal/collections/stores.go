package collections

import (
	"context"
	"log/slog"

	"study-planner/internal/domain"
	"study-planner/internal/store"
)

// LogStore holds the live log entries: everything logged since the start of
// the current week, plus any stale entries waiting to be rolled up.
type LogStore struct {
	collection[[]domain.LogEntry]
}

// All returns a copy of the live entries.
func (s *LogStore) All() []domain.LogEntry {
	out := make([]domain.LogEntry, len(s.items))
	copy(out, s.items)
	return out
}

// Append adds entries and persists the collection.
func (s *LogStore) Append(ctx context.Context, entries ...domain.LogEntry) error {
	s.items = append(s.items, entries...)
	return s.persist(ctx)
}

// ReplaceAll swaps in a new set of entries and persists the collection.
func (s *LogStore) ReplaceAll(ctx context.Context, entries []domain.LogEntry) error {
	s.items = entries
	return s.persist(ctx)
}

// HasEntryFor reports whether any live entry references the task on the
// given date.
func (s *LogStore) HasEntryFor(taskID, date string) bool {
	for _, e := range s.items {
		if e.TaskID == taskID && e.Date == date {
			return true
		}
	}
	return false
}

// SummaryStore holds the rolled-up weekly summaries.
type SummaryStore struct {
	collection[[]domain.WeeklySummary]
}

// All returns a copy of the summaries.
func (s *SummaryStore) All() []domain.WeeklySummary {
	out := make([]domain.WeeklySummary, len(s.items))
	copy(out, s.items)
	return out
}

// ReplaceAll swaps in a new set of summaries and persists the collection.
func (s *SummaryStore) ReplaceAll(ctx context.Context, summaries []domain.WeeklySummary) error {
	s.items = summaries
	return s.persist(ctx)
}

// Upsert replaces the summary with a matching week, or appends when none
// exists, then persists the collection. Re-running a rollup over the same
// weeks therefore never duplicates summaries.
func (s *SummaryStore) Upsert(ctx context.Context, summaries ...domain.WeeklySummary) error {
	for _, summary := range summaries {
		replaced := false
		for i := range s.items {
			if s.items[i].WeekOf == summary.WeekOf {
				s.items[i] = summary
				replaced = true
				break
			}
		}
		if !replaced {
			s.items = append(s.items, summary)
		}
	}
	return s.persist(ctx)
}

// DayStore holds the current day's task list. A nil day means nothing has
// been persisted yet; rollover constructs the first one.
type DayStore struct {
	collection[*domain.Day]
}

// Current returns the loaded day, which may be nil.
func (s *DayStore) Current() *domain.Day {
	return s.items
}

// Put replaces the current day and persists it.
func (s *DayStore) Put(ctx context.Context, day domain.Day) error {
	s.items = &day
	return s.persist(ctx)
}

// Save persists the current day after in-place mutation through Current.
func (s *DayStore) Save(ctx context.Context) error {
	return s.persist(ctx)
}

// SyllabusStore holds the per-subject syllabus breakdowns.
type SyllabusStore struct {
	collection[[]domain.Syllabus]
}

// All returns a copy of the syllabuses.
func (s *SyllabusStore) All() []domain.Syllabus {
	out := make([]domain.Syllabus, len(s.items))
	copy(out, s.items)
	return out
}

// BySubject returns the syllabus for one subject.
func (s *SyllabusStore) BySubject(subjectID string) (domain.Syllabus, bool) {
	for _, syl := range s.items {
		if syl.SubjectID == subjectID {
			return syl, true
		}
	}
	return domain.Syllabus{}, false
}

// ReplaceAll swaps in a new set of syllabuses and persists the collection.
func (s *SyllabusStore) ReplaceAll(ctx context.Context, syllabuses []domain.Syllabus) error {
	s.items = syllabuses
	return s.persist(ctx)
}

// TestStore holds recorded test results.
type TestStore struct {
	collection[[]domain.Test]
}

// All returns a copy of the tests.
func (s *TestStore) All() []domain.Test {
	out := make([]domain.Test, len(s.items))
	copy(out, s.items)
	return out
}

// Append adds tests and persists the collection.
func (s *TestStore) Append(ctx context.Context, tests ...domain.Test) error {
	s.items = append(s.items, tests...)
	return s.persist(ctx)
}

// ReplaceAll swaps in a new set of tests and persists the collection.
func (s *TestStore) ReplaceAll(ctx context.Context, tests []domain.Test) error {
	s.items = tests
	return s.persist(ctx)
}

// ClassStore holds the weekly class schedule.
type ClassStore struct {
	collection[[]domain.Class]
}

// All returns a copy of the classes.
func (s *ClassStore) All() []domain.Class {
	out := make([]domain.Class, len(s.items))
	copy(out, s.items)
	return out
}

// Append adds classes and persists the collection.
func (s *ClassStore) Append(ctx context.Context, classes ...domain.Class) error {
	s.items = append(s.items, classes...)
	return s.persist(ctx)
}

// ReplaceAll swaps in a new set of classes and persists the collection.
func (s *ClassStore) ReplaceAll(ctx context.Context, classes []domain.Class) error {
	s.items = classes
	return s.persist(ctx)
}

// Stores bundles one typed store per collection, all backed by the same
// blob store.
type Stores struct {
	Logs      *LogStore
	Summaries *SummaryStore
	Day       *DayStore
	Syllabus  *SyllabusStore
	Tests     *TestStore
	Classes   *ClassStore
}

// Open loads every collection into memory. It never fails: a collection
// that cannot be read falls back to its baseline, so a corrupt or
// unreachable store degrades to an empty planner rather than a dead one.
func Open(ctx context.Context, st store.Store, logger *slog.Logger) *Stores {
	if logger == nil {
		logger = slog.Default()
	}

	stores := &Stores{
		Logs:      &LogStore{collection[[]domain.LogEntry]{store: st, name: store.CollectionLogs, logger: logger}},
		Summaries: &SummaryStore{collection[[]domain.WeeklySummary]{store: st, name: store.CollectionSummaries, logger: logger}},
		Day:       &DayStore{collection[*domain.Day]{store: st, name: store.CollectionDay, logger: logger}},
		Syllabus:  &SyllabusStore{collection[[]domain.Syllabus]{store: st, name: store.CollectionSyllabus, logger: logger}},
		Tests:     &TestStore{collection[[]domain.Test]{store: st, name: store.CollectionTests, logger: logger}},
		Classes:   &ClassStore{collection[[]domain.Class]{store: st, name: store.CollectionClasses, logger: logger}},
	}

	stores.Logs.load(ctx, domain.BaselineLogs, true)
	stores.Summaries.load(ctx, domain.BaselineSummaries, true)
	stores.Day.load(ctx, func() *domain.Day { return nil }, false)
	stores.Syllabus.load(ctx, domain.BaselineSyllabus, true)
	stores.Tests.load(ctx, domain.BaselineTests, true)
	stores.Classes.load(ctx, domain.BaselineClasses, true)

	return stores
}
