package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-planner/internal/clock"
	"study-planner/internal/collections"
	"study-planner/internal/domain"
)

func TestDayService_SameDateReturnsDayUnchanged(t *testing.T) {
	f := newFixture(t, clock.FixedAt("2024-01-15", 9, 0))
	f.seedDay(t, domain.Day{
		Date: "2024-01-15",
		Items: []domain.TaskItem{
			{ID: "task-1", Title: "Revise optics", SubjectID: "physics", Done: true},
			{ID: "task-2", Title: "Past paper", SubjectID: "chemistry"},
		},
	})

	day := f.services.Day.EnsureCurrentDay(context.Background())

	require.NotNil(t, day)
	assert.Equal(t, "2024-01-15", day.Date)
	require.Len(t, day.Items, 2)
	assert.True(t, day.Items[0].Done)
}

func TestDayService_RolloverCarriesOnlyUnfinishedItems(t *testing.T) {
	f := newFixture(t, clock.FixedAt("2024-01-16", 7, 30))
	f.seedDay(t, domain.Day{
		Date: "2024-01-15",
		Items: []domain.TaskItem{
			{ID: "task-1", Title: "Revise optics", SubjectID: "physics", Done: true},
			{ID: "task-2", Title: "Past paper", SubjectID: "chemistry", Note: "unit 3", Done: false},
			{ID: "task-3", Title: "Run", SubjectID: "exercise", Done: true},
			{ID: "task-4", Title: "Read notes", SubjectID: "combined", Done: false},
			{ID: "task-5", Title: "Tidy desk", SubjectID: "personal", Done: true},
		},
	})

	day := f.services.Day.EnsureCurrentDay(context.Background())

	require.NotNil(t, day)
	assert.Equal(t, "2024-01-16", day.Date)
	require.Len(t, day.Items, 2)
	assert.Equal(t, "task-2", day.Items[0].ID)
	assert.Equal(t, "unit 3", day.Items[0].Note)
	assert.Equal(t, "task-4", day.Items[1].ID)
	for _, item := range day.Items {
		assert.False(t, item.Done)
	}
}

func TestDayService_NoStoredDayStartsEmpty(t *testing.T) {
	f := newFixture(t, clock.FixedAt("2024-01-15", 9, 0))

	day := f.services.Day.EnsureCurrentDay(context.Background())

	require.NotNil(t, day)
	assert.Equal(t, "2024-01-15", day.Date)
	assert.Empty(t, day.Items)
}

func TestDayService_RolloverIsPersisted(t *testing.T) {
	f := newFixture(t, clock.FixedAt("2024-01-16", 7, 30))
	f.seedDay(t, domain.Day{
		Date:  "2024-01-15",
		Items: []domain.TaskItem{{ID: "task-1", Title: "Past paper", SubjectID: "chemistry"}},
	})

	f.services.Day.EnsureCurrentDay(context.Background())

	reopened := collections.Open(context.Background(), f.mem, slog.New(slog.DiscardHandler))
	require.NotNil(t, reopened.Day.Current())
	assert.Equal(t, "2024-01-16", reopened.Day.Current().Date)
	require.Len(t, reopened.Day.Current().Items, 1)
	assert.Equal(t, "task-1", reopened.Day.Current().Items[0].ID)
}
