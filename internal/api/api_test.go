package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-planner/internal/clock"
	"study-planner/internal/config"
	"study-planner/internal/domain"
	"study-planner/internal/services"
	"study-planner/internal/store"
)

func seedCollection(t *testing.T, mem *store.MemoryStore, collection store.Collection, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	payload, err := json.Marshal(map[string]any{"version": 1, "data": json.RawMessage(raw)})
	require.NoError(t, err)
	mem.Seed(collection, payload)
}

func TestApp_StartupRollsUpThenRollsOver(t *testing.T) {
	mem := store.NewMemory()
	seedCollection(t, mem, store.CollectionLogs, []domain.LogEntry{
		{ID: "log-1", Date: "2024-01-01", TaskID: "t1", SubjectID: "physics",
			StartTime: "09:00", EndTime: "11:00", DurationMinutes: 120},
		{ID: "log-2", Date: "2024-01-03", TaskID: "t2", SubjectID: "chemistry",
			StartTime: "09:00", EndTime: "10:00", DurationMinutes: 60},
	})
	seedCollection(t, mem, store.CollectionDay, domain.Day{
		Date: "2024-01-03",
		Items: []domain.TaskItem{
			{ID: "t1", Title: "Revise optics", SubjectID: "physics", Done: true},
			{ID: "t2", Title: "Past paper", SubjectID: "chemistry", Done: false},
		},
	})

	ctx := context.Background()
	app := New(ctx, config.NewConfig(), mem, clock.FixedAt("2024-01-15", 9, 0), slog.New(slog.DiscardHandler))
	day := app.Startup(ctx)

	assert.Equal(t, 1, app.LastRollup().WeeksSummarized)
	assert.Equal(t, 2, app.LastRollup().EntriesRetired)

	require.NotNil(t, day)
	assert.Equal(t, "2024-01-15", day.Date)
	require.Len(t, day.Items, 1)
	assert.Equal(t, "t2", day.Items[0].ID)

	rows := app.Reporting().WeeklyReport()
	require.Len(t, rows, 1)
	assert.Equal(t, "2023-12-31", rows[0].Summary.WeekOf)
	assert.Equal(t, 180, rows[0].Summary.TotalMinutes)
}

func TestApp_FirstRunSeedsEverything(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	app := New(ctx, config.NewConfig(), mem, clock.FixedAt("2024-01-15", 9, 0), slog.New(slog.DiscardHandler))
	day := app.Startup(ctx)

	require.NotNil(t, day)
	assert.Equal(t, "2024-01-15", day.Date)
	assert.Empty(t, day.Items)
	assert.NotNil(t, mem.Raw(store.CollectionLogs))
	assert.NotNil(t, mem.Raw(store.CollectionSyllabus))
}

func TestApp_CompletionFlowThroughFacade(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	app := New(ctx, config.NewConfig(), mem, clock.FixedAt("2024-01-15", 9, 0), slog.New(slog.DiscardHandler))
	app.Startup(ctx)

	added, err := app.Completion().AddTasks(ctx, []services.NewTask{
		{Title: "Revise optics", SubjectID: "physics"},
	})
	require.NoError(t, err)
	require.Len(t, added, 1)

	result, err := app.Completion().Toggle(ctx, added[0].ID)
	require.NoError(t, err)
	assert.Equal(t, services.ToggleNeedsInterval, result.Outcome)

	logEntry, err := app.Completion().CompleteWithInterval(ctx, added[0].ID, "10:00", "11:00")
	require.NoError(t, err)
	assert.Equal(t, 60, logEntry.DurationMinutes)
	assert.True(t, app.CurrentDay().FindItem(added[0].ID).Done)

	totals := app.Reporting().DayTotals("2024-01-15")
	assert.Equal(t, 60, totals.TotalMinutes)
}
