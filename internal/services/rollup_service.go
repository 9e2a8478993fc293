package services

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"study-planner/internal/clock"
	"study-planner/internal/collections"
	"study-planner/internal/domain"
)

// rollupServiceImpl implements the RollupService interface
type rollupServiceImpl struct {
	stores *collections.Stores
	clock  clock.Clock
	logger *slog.Logger
}

// NewRollupService creates a new RollupService instance
func NewRollupService(stores *collections.Stores, clk clock.Clock, logger *slog.Logger) RollupService {
	return &rollupServiceImpl{stores: stores, clock: clk, logger: logger}
}

// Run partitions the live log entries into stale and current-week sets,
// summarizes each stale week, and shrinks the live store to the current
// week. Persistence failures are logged; the in-memory state stays
// authoritative either way, so logs are never silently lost mid-session.
func (r *rollupServiceImpl) Run(ctx context.Context) RollupResult {
	currentWeekStart := clock.StartOfWeek(r.clock.Now())

	var stale []domain.LogEntry
	staleWeeks := make(map[string][]domain.LogEntry)
	fresh := make([]domain.LogEntry, 0)
	for _, entry := range r.stores.Logs.All() {
		date, err := clock.ParseDate(entry.Date)
		if err != nil {
			r.logger.Warn("log entry has a malformed date, keeping it live",
				"id", entry.ID, "date", entry.Date)
			fresh = append(fresh, entry)
			continue
		}
		weekStart := clock.StartOfWeek(date)
		if weekStart.Before(currentWeekStart) {
			weekOf := clock.FormatDate(weekStart)
			stale = append(stale, entry)
			staleWeeks[weekOf] = append(staleWeeks[weekOf], entry)
			continue
		}
		fresh = append(fresh, entry)
	}

	if len(stale) == 0 {
		return RollupResult{}
	}

	weeks := make([]string, 0, len(staleWeeks))
	for weekOf := range staleWeeks {
		weeks = append(weeks, weekOf)
	}
	sort.Strings(weeks)

	summaries := make([]domain.WeeklySummary, 0, len(weeks))
	for _, weekOf := range weeks {
		summaries = append(summaries, summarizeWeek(weekOf, staleWeeks[weekOf]))
	}

	if err := r.stores.Summaries.Upsert(ctx, summaries...); err != nil {
		r.logger.Error("persisting weekly summaries failed", "error", err)
	}
	if err := r.stores.Logs.ReplaceAll(ctx, fresh); err != nil {
		r.logger.Error("persisting live logs failed", "error", err)
	}

	r.logger.Debug("rollup complete",
		"weeks", len(summaries), "retired", len(stale), "live", len(fresh))
	return RollupResult{WeeksSummarized: len(summaries), EntriesRetired: len(stale)}
}

// summarizeWeek aggregates one week's entries. Averages always divide by
// seven days, whether or not every day had activity.
func summarizeWeek(weekOf string, entries []domain.LogEntry) domain.WeeklySummary {
	total := 0
	bySubject := make(map[string]int)
	for _, entry := range entries {
		total += entry.DurationMinutes
		bySubject[entry.SubjectID] += entry.DurationMinutes
	}

	averages := make(map[string]int, len(bySubject))
	for subjectID, minutes := range bySubject {
		averages[subjectID] = perDay(minutes)
	}

	return domain.WeeklySummary{
		WeekOf:               weekOf,
		TotalMinutes:         total,
		AverageMinutesPerDay: perDay(total),
		SubjectAverages:      averages,
	}
}

func perDay(minutes int) int {
	return int(math.Round(float64(minutes) / 7))
}
