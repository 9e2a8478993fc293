package services

import (
	"context"
	"log/slog"
	"testing"

	"study-planner/internal/clock"
	"study-planner/internal/collections"
	"study-planner/internal/config"
	"study-planner/internal/domain"
	"study-planner/internal/store"
)

type fixture struct {
	mem      *store.MemoryStore
	stores   *collections.Stores
	services *ServiceContainer
}

func newFixture(t *testing.T, clk clock.Clock) *fixture {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	mem := store.NewMemory()
	stores := collections.Open(context.Background(), mem, logger)
	return &fixture{
		mem:      mem,
		stores:   stores,
		services: NewServiceContainer(stores, config.NewConfig(), clk, logger),
	}
}

func (f *fixture) seedLogs(t *testing.T, entries ...domain.LogEntry) {
	t.Helper()
	if err := f.stores.Logs.ReplaceAll(context.Background(), entries); err != nil {
		t.Fatalf("seeding logs: %v", err)
	}
}

func (f *fixture) seedDay(t *testing.T, day domain.Day) {
	t.Helper()
	if err := f.stores.Day.Put(context.Background(), day); err != nil {
		t.Fatalf("seeding day: %v", err)
	}
}

func entry(date, subjectID string, minutes int) domain.LogEntry {
	return domain.LogEntry{
		ID:              domain.NewID(),
		Date:            date,
		TaskID:          domain.NewID(),
		TaskTitle:       "seeded task",
		SubjectID:       subjectID,
		StartTime:       "09:00",
		EndTime:         "10:00",
		DurationMinutes: minutes,
	}
}
