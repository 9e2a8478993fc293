package services

import (
	"log/slog"
	"sort"

	"study-planner/internal/collections"
	"study-planner/internal/domain"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	stores *collections.Stores
	logger *slog.Logger
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(stores *collections.Stores, logger *slog.Logger) ReportingService {
	return &reportingServiceImpl{stores: stores, logger: logger}
}

// Logbook groups the live log entries by date, newest date first, and each
// date's entries by category in the fixed display order.
func (r *reportingServiceImpl) Logbook() []LogbookDay {
	byDate := make(map[string][]domain.LogEntry)
	for _, entry := range r.stores.Logs.All() {
		byDate[entry.Date] = append(byDate[entry.Date], entry)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	days := make([]LogbookDay, 0, len(dates))
	for _, date := range dates {
		byCategory := make(map[domain.Category][]domain.LogEntry)
		dayTotal := 0
		for _, entry := range byDate[date] {
			category := domain.CategoryFor(entry.SubjectID)
			byCategory[category] = append(byCategory[category], entry)
			dayTotal += entry.DurationMinutes
		}

		groups := make([]CategoryGroup, 0, len(byCategory))
		for _, category := range domain.CategoryOrder() {
			entries, ok := byCategory[category]
			if !ok {
				continue
			}
			total := 0
			for _, entry := range entries {
				total += entry.DurationMinutes
			}
			groups = append(groups, CategoryGroup{
				Category:     category,
				Entries:      entries,
				TotalMinutes: total,
			})
		}

		days = append(days, LogbookDay{Date: date, Groups: groups, TotalMinutes: dayTotal})
	}
	return days
}

// WeeklyReport returns the persisted summaries newest week first, with each
// summary's subject averages sorted by minutes descending for display.
func (r *reportingServiceImpl) WeeklyReport() []WeeklyReportRow {
	summaries := r.stores.Summaries.All()
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].WeekOf > summaries[j].WeekOf
	})

	rows := make([]WeeklyReportRow, 0, len(summaries))
	for _, summary := range summaries {
		averages := make([]SubjectAverage, 0, len(summary.SubjectAverages))
		for subjectID, minutes := range summary.SubjectAverages {
			averages = append(averages, SubjectAverage{SubjectID: subjectID, MinutesPerDay: minutes})
		}
		sort.Slice(averages, func(i, j int) bool {
			if averages[i].MinutesPerDay != averages[j].MinutesPerDay {
				return averages[i].MinutesPerDay > averages[j].MinutesPerDay
			}
			return averages[i].SubjectID < averages[j].SubjectID
		})
		rows = append(rows, WeeklyReportRow{Summary: summary, SubjectAverages: averages})
	}
	return rows
}

// DayTotals sums the live entries for one date, overall and per subject.
func (r *reportingServiceImpl) DayTotals(date string) DayTotals {
	totals := DayTotals{Date: date, BySubject: make(map[string]int)}
	for _, entry := range r.stores.Logs.All() {
		if entry.Date != date {
			continue
		}
		totals.TotalMinutes += entry.DurationMinutes
		totals.BySubject[entry.SubjectID] += entry.DurationMinutes
	}
	return totals
}
