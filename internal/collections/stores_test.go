package collections

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-planner/internal/domain"
	"study-planner/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func openMemory(t *testing.T) (*store.MemoryStore, *Stores) {
	t.Helper()
	mem := store.NewMemory()
	return mem, Open(context.Background(), mem, discardLogger())
}

func TestOpen_SeedsMissingCollections(t *testing.T) {
	mem, stores := openMemory(t)

	assert.Empty(t, stores.Logs.All())
	assert.Empty(t, stores.Summaries.All())
	assert.Nil(t, stores.Day.Current())
	assert.Len(t, stores.Syllabus.All(), len(domain.AcademicSubjectIDs()))

	var env envelope
	require.NoError(t, json.Unmarshal(mem.Raw(store.CollectionLogs), &env))
	assert.Equal(t, schemaVersion, env.Version)
	assert.JSONEq(t, "[]", string(env.Data))

	// The day collection has no baseline to seed.
	assert.Nil(t, mem.Raw(store.CollectionDay))
}

func TestOpen_MalformedPayloadFallsBackToBaseline(t *testing.T) {
	mem := store.NewMemory()
	mem.Seed(store.CollectionLogs, []byte("not json at all"))

	stores := Open(context.Background(), mem, discardLogger())

	assert.Empty(t, stores.Logs.All())
	// The broken payload is left in place for inspection, not overwritten.
	assert.Equal(t, []byte("not json at all"), mem.Raw(store.CollectionLogs))
}

func TestOpen_VersionMismatchFallsBackToBaseline(t *testing.T) {
	mem := store.NewMemory()
	mem.Seed(store.CollectionLogs, []byte(`{"version":99,"data":[{"id":"x"}]}`))

	stores := Open(context.Background(), mem, discardLogger())

	assert.Empty(t, stores.Logs.All())
}

func TestOpen_DataShapeMismatchFallsBackToBaseline(t *testing.T) {
	mem := store.NewMemory()
	mem.Seed(store.CollectionLogs, []byte(`{"version":1,"data":{"not":"a list"}}`))

	stores := Open(context.Background(), mem, discardLogger())

	assert.Empty(t, stores.Logs.All())
}

func TestLogStore_AppendPersistsEnvelope(t *testing.T) {
	mem, stores := openMemory(t)

	entry := domain.LogEntry{
		ID:              domain.NewID(),
		Date:            "2024-01-03",
		TaskID:          "task-1",
		TaskTitle:       "Revise optics",
		SubjectID:       "physics",
		StartTime:       "10:00",
		EndTime:         "11:00",
		DurationMinutes: 60,
	}
	require.NoError(t, stores.Logs.Append(context.Background(), entry))

	var env envelope
	require.NoError(t, json.Unmarshal(mem.Raw(store.CollectionLogs), &env))
	assert.Equal(t, schemaVersion, env.Version)

	var persisted []domain.LogEntry
	require.NoError(t, json.Unmarshal(env.Data, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, entry, persisted[0])
}

func TestLogStore_WireKeys(t *testing.T) {
	mem, stores := openMemory(t)

	require.NoError(t, stores.Logs.Append(context.Background(), domain.LogEntry{
		ID:     "log-1",
		TaskID: "task-1",
	}))

	var env envelope
	require.NoError(t, json.Unmarshal(mem.Raw(store.CollectionLogs), &env))
	assert.Contains(t, string(env.Data), `"todoItemId":"task-1"`)
}

func TestLogStore_HasEntryFor(t *testing.T) {
	_, stores := openMemory(t)

	require.NoError(t, stores.Logs.Append(context.Background(), domain.LogEntry{
		ID:     "log-1",
		Date:   "2024-01-03",
		TaskID: "task-1",
	}))

	assert.True(t, stores.Logs.HasEntryFor("task-1", "2024-01-03"))
	assert.False(t, stores.Logs.HasEntryFor("task-1", "2024-01-04"))
	assert.False(t, stores.Logs.HasEntryFor("task-2", "2024-01-03"))
}

func TestLogStore_AllReturnsCopy(t *testing.T) {
	_, stores := openMemory(t)

	require.NoError(t, stores.Logs.Append(context.Background(), domain.LogEntry{ID: "log-1"}))

	entries := stores.Logs.All()
	entries[0].ID = "mutated"

	assert.Equal(t, "log-1", stores.Logs.All()[0].ID)
}

func TestLogStore_PersistFailureKeepsMemoryState(t *testing.T) {
	mem, stores := openMemory(t)
	mem.SetErr = assert.AnError

	err := stores.Logs.Append(context.Background(), domain.LogEntry{ID: "log-1"})

	assert.Error(t, err)
	require.Len(t, stores.Logs.All(), 1)
	assert.Equal(t, "log-1", stores.Logs.All()[0].ID)
}

func TestSummaryStore_UpsertReplacesByWeek(t *testing.T) {
	_, stores := openMemory(t)
	ctx := context.Background()

	require.NoError(t, stores.Summaries.Upsert(ctx, domain.WeeklySummary{WeekOf: "2023-12-31", TotalMinutes: 100}))
	require.NoError(t, stores.Summaries.Upsert(ctx, domain.WeeklySummary{WeekOf: "2023-12-31", TotalMinutes: 180}))
	require.NoError(t, stores.Summaries.Upsert(ctx, domain.WeeklySummary{WeekOf: "2024-01-07", TotalMinutes: 40}))

	summaries := stores.Summaries.All()
	require.Len(t, summaries, 2)
	assert.Equal(t, 180, summaries[0].TotalMinutes)
	assert.Equal(t, "2024-01-07", summaries[1].WeekOf)
}

func TestDayStore_RoundTrip(t *testing.T) {
	mem, stores := openMemory(t)
	ctx := context.Background()

	day := domain.Day{
		Date: "2024-01-03",
		Items: []domain.TaskItem{
			{ID: "task-1", Title: "Revise optics", SubjectID: "physics"},
		},
	}
	require.NoError(t, stores.Day.Put(ctx, day))

	reopened := Open(ctx, mem, discardLogger())
	require.NotNil(t, reopened.Day.Current())
	assert.Equal(t, day, *reopened.Day.Current())
}

func TestDayStore_SaveAfterInPlaceMutation(t *testing.T) {
	mem, stores := openMemory(t)
	ctx := context.Background()

	require.NoError(t, stores.Day.Put(ctx, domain.Day{
		Date:  "2024-01-03",
		Items: []domain.TaskItem{{ID: "task-1", Title: "Revise optics"}},
	}))

	stores.Day.Current().FindItem("task-1").Done = true
	require.NoError(t, stores.Day.Save(ctx))

	reopened := Open(ctx, mem, discardLogger())
	assert.True(t, reopened.Day.Current().FindItem("task-1").Done)
}

func TestSyllabusStore_BySubject(t *testing.T) {
	_, stores := openMemory(t)

	syl, ok := stores.Syllabus.BySubject("physics")
	assert.True(t, ok)
	assert.Equal(t, "physics", syl.SubjectID)

	_, ok = stores.Syllabus.BySubject("exercise")
	assert.False(t, ok)
}

func TestRefDataStores_AppendAndReload(t *testing.T) {
	mem, stores := openMemory(t)
	ctx := context.Background()

	require.NoError(t, stores.Tests.Append(ctx, domain.Test{
		ID: "test-1", Name: "Unit 1 paper", SubjectID: "chemistry", Date: "2024-01-05", Score: 72, Total: 100,
	}))
	require.NoError(t, stores.Classes.Append(ctx, domain.Class{
		ID: "class-1", Name: "Physics theory", Weekday: 3, Start: "16:00", End: "18:00",
	}))

	reopened := Open(ctx, mem, discardLogger())
	require.Len(t, reopened.Tests.All(), 1)
	assert.Equal(t, "Unit 1 paper", reopened.Tests.All()[0].Name)
	require.Len(t, reopened.Classes.All(), 1)
	assert.Equal(t, 3, reopened.Classes.All()[0].Weekday)
}
