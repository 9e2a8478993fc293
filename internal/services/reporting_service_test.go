package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-planner/internal/clock"
	"study-planner/internal/domain"
)

func TestReportingService_LogbookGroupsByDateAndCategory(t *testing.T) {
	f := newFixture(t, clock.FixedAt("2024-01-16", 20, 0))
	f.seedLogs(t,
		entry("2024-01-15", "physics", 60),
		entry("2024-01-16", "chemistry", 45),
		entry("2024-01-16", "exercise", 30),
		entry("2024-01-16", "physics", 15),
		entry("2024-01-16", "entertainment", 90),
	)

	days := f.services.Reporting.Logbook()

	require.Len(t, days, 2)
	assert.Equal(t, "2024-01-16", days[0].Date)
	assert.Equal(t, 180, days[0].TotalMinutes)
	assert.Equal(t, "2024-01-15", days[1].Date)

	// Fixed display order: study before exercise before entertainment.
	groups := days[0].Groups
	require.Len(t, groups, 3)
	assert.Equal(t, domain.CategoryStudy, groups[0].Category)
	assert.Equal(t, 60, groups[0].TotalMinutes)
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, domain.CategoryExercise, groups[1].Category)
	assert.Equal(t, domain.CategoryEntertainment, groups[2].Category)
}

func TestReportingService_LogbookUnknownSubjectFallsBackToPersonal(t *testing.T) {
	f := newFixture(t, clock.FixedAt("2024-01-16", 20, 0))
	f.seedLogs(t, entry("2024-01-16", "archery", 30))

	days := f.services.Reporting.Logbook()

	require.Len(t, days, 1)
	require.Len(t, days[0].Groups, 1)
	assert.Equal(t, domain.CategoryPersonal, days[0].Groups[0].Category)
}

func TestReportingService_WeeklyReportSortsNewestFirst(t *testing.T) {
	f := newFixture(t, clock.FixedAt("2024-01-16", 20, 0))
	require.NoError(t, f.stores.Summaries.ReplaceAll(context.Background(), []domain.WeeklySummary{
		{WeekOf: "2023-12-31", TotalMinutes: 180, AverageMinutesPerDay: 26,
			SubjectAverages: map[string]int{"physics": 17, "chemistry": 9}},
		{WeekOf: "2024-01-07", TotalMinutes: 420, AverageMinutesPerDay: 60,
			SubjectAverages: map[string]int{"chemistry": 30, "physics": 30}},
	}))

	rows := f.services.Reporting.WeeklyReport()

	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01-07", rows[0].Summary.WeekOf)
	assert.Equal(t, "2023-12-31", rows[1].Summary.WeekOf)

	// Ties broken by subject id so the ordering is stable.
	assert.Equal(t, []SubjectAverage{
		{SubjectID: "chemistry", MinutesPerDay: 30},
		{SubjectID: "physics", MinutesPerDay: 30},
	}, rows[0].SubjectAverages)
	assert.Equal(t, []SubjectAverage{
		{SubjectID: "physics", MinutesPerDay: 17},
		{SubjectID: "chemistry", MinutesPerDay: 9},
	}, rows[1].SubjectAverages)
}

func TestReportingService_DayTotals(t *testing.T) {
	f := newFixture(t, clock.FixedAt("2024-01-16", 20, 0))
	f.seedLogs(t,
		entry("2024-01-16", "physics", 60),
		entry("2024-01-16", "physics", 30),
		entry("2024-01-16", "chemistry", 45),
		entry("2024-01-15", "physics", 240),
	)

	totals := f.services.Reporting.DayTotals("2024-01-16")

	assert.Equal(t, 135, totals.TotalMinutes)
	assert.Equal(t, map[string]int{"physics": 90, "chemistry": 45}, totals.BySubject)
}

func TestReportingService_EmptyStores(t *testing.T) {
	f := newFixture(t, clock.FixedAt("2024-01-16", 20, 0))

	assert.Empty(t, f.services.Reporting.Logbook())
	assert.Empty(t, f.services.Reporting.WeeklyReport())
	assert.Equal(t, 0, f.services.Reporting.DayTotals("2024-01-16").TotalMinutes)
}
