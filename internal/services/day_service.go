package services

import (
	"context"
	"log/slog"

	"study-planner/internal/clock"
	"study-planner/internal/collections"
	"study-planner/internal/domain"
)

// dayServiceImpl implements the DayService interface
type dayServiceImpl struct {
	stores *collections.Stores
	clock  clock.Clock
	logger *slog.Logger
}

// NewDayService creates a new DayService instance
func NewDayService(stores *collections.Stores, clk clock.Clock, logger *slog.Logger) DayService {
	return &dayServiceImpl{stores: stores, clock: clk, logger: logger}
}

// EnsureCurrentDay compares the stored day's date against today. Matching
// dates return the stored day unchanged. A missing or stale day is replaced
// by a fresh one carrying forward the unfinished items; done flags are never
// reset, done items simply do not survive the rollover.
func (d *dayServiceImpl) EnsureCurrentDay(ctx context.Context) *domain.Day {
	today := clock.Today(d.clock)

	previous := d.stores.Day.Current()
	if previous != nil && previous.Date == today {
		return previous
	}

	carried := make([]domain.TaskItem, 0)
	if previous != nil {
		for _, item := range previous.Items {
			if !item.Done {
				carried = append(carried, item)
			}
		}
		d.logger.Debug("rolling day forward",
			"from", previous.Date, "to", today, "carried", len(carried))
	}

	if err := d.stores.Day.Put(ctx, domain.Day{Date: today, Items: carried}); err != nil {
		d.logger.Error("persisting rolled-over day failed", "error", err)
	}
	return d.stores.Day.Current()
}
