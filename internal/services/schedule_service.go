package services

import (
	"context"
	"log/slog"
	"sort"

	"study-planner/internal/clock"
	"study-planner/internal/collections"
	"study-planner/internal/domain"
	"study-planner/internal/errors"
	"study-planner/internal/validation"
)

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	stores    *collections.Stores
	clock     clock.Clock
	logger    *slog.Logger
	validator *validation.Validator
}

// NewScheduleService creates a new ScheduleService instance
func NewScheduleService(stores *collections.Stores, clk clock.Clock, logger *slog.Logger) ScheduleService {
	return &scheduleServiceImpl{
		stores:    stores,
		clock:     clk,
		logger:    logger,
		validator: validation.NewValidator(),
	}
}

// Classes returns the timetable ordered by weekday, then start time.
func (s *scheduleServiceImpl) Classes() []domain.Class {
	classes := s.stores.Classes.All()
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].Weekday != classes[j].Weekday {
			return classes[i].Weekday < classes[j].Weekday
		}
		return classes[i].Start < classes[j].Start
	})
	return classes
}

// TodayClasses returns today's classes that have not yet ended, ordered by
// start time.
func (s *scheduleServiceImpl) TodayClasses() []domain.Class {
	now := s.clock.Now()
	weekday := int(now.Weekday())
	nowClock := clock.FormatClockTime(now)

	remaining := make([]domain.Class, 0)
	for _, class := range s.stores.Classes.All() {
		if class.Weekday == weekday && class.End > nowClock {
			remaining = append(remaining, class)
		}
	}
	sort.Slice(remaining, func(i, j int) bool {
		return remaining[i].Start < remaining[j].Start
	})
	return remaining
}

// AddClass validates and appends a class to the timetable.
func (s *scheduleServiceImpl) AddClass(ctx context.Context, name string, weekday int, start, end string) (*domain.Class, error) {
	ve := validation.NewValidationError()
	name = s.validator.TrimAndValidateString(name)
	if !s.validator.IsNonEmptyString(name) {
		ve.AddRequiredError("name")
	}
	if !s.validator.IsValidWeekday(weekday) {
		ve.AddInvalidRangeError("weekday", weekday, "weekday must be between 0 (Sunday) and 6 (Saturday)")
	}
	if !s.validator.IsValidClockTime(start) {
		ve.AddInvalidFormatError("start", start, "HH:MM")
	}
	if !s.validator.IsValidClockTime(end) {
		ve.AddInvalidFormatError("end", end, "HH:MM")
	}
	if ve.HasErrors() {
		return nil, errors.NewValidationError("invalid class", ve)
	}
	if minutes, err := clock.MinutesBetween(start, end); err != nil || minutes <= 0 {
		ve.AddInvalidRangeError("end", end, "end time must be after start time")
		return nil, errors.NewValidationError("invalid class", ve)
	}

	class := domain.Class{
		ID:      domain.NewID(),
		Name:    name,
		Weekday: weekday,
		Start:   start,
		End:     end,
	}
	if err := s.stores.Classes.Append(ctx, class); err != nil {
		s.logger.Error("persisting class failed", "error", err)
	}
	return &class, nil
}
