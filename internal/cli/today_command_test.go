package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-planner/internal/clock"
)

func TestTodayCommand_EmptyDay(t *testing.T) {
	app, out := newTestApp(t, clock.FixedAt("2024-01-15", 9, 0))

	err := NewTodayCommand(app).Execute(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Today · 2024-01-15")
	assert.Contains(t, out.String(), "No tasks yet")
}

func TestTodayCommand_ListsTasksWithMarkers(t *testing.T) {
	app, out := newTestApp(t, clock.FixedAt("2024-01-15", 9, 0))
	added := addTasks(t, app, "Revise optics", "Past paper")
	_, err := app.api.Completion().CompleteWithInterval(context.Background(), added[0].ID, "10:00", "11:00")
	require.NoError(t, err)

	err = NewTodayCommand(app).Execute(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "[x] Revise optics")
	assert.Contains(t, out.String(), "[ ] Past paper")
}

func TestTodayCommand_ShowsRemainingClasses(t *testing.T) {
	// Monday 09:00; one class later today, one already over.
	app, out := newTestApp(t, clock.FixedAt("2024-01-15", 9, 0))
	ctx := context.Background()
	_, err := app.api.Schedule().AddClass(ctx, "Physics theory", 1, "16:00", "18:00")
	require.NoError(t, err)
	_, err = app.api.Schedule().AddClass(ctx, "Early revision", 1, "06:00", "07:00")
	require.NoError(t, err)

	err = NewTodayCommand(app).Execute(ctx)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Classes today")
	assert.Contains(t, out.String(), "16:00-18:00  Physics theory")
	assert.NotContains(t, out.String(), "Early revision")
}
