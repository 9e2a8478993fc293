package store

import (
	"context"
	"path/filepath"
	"testing"

	"study-planner/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_GetMissingCollection(t *testing.T) {
	s := newTestSQLite(t)

	_, err := s.Get(context.Background(), CollectionLogs)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	payload := []byte(`{"version":1,"data":[]}`)
	require.NoError(t, s.Set(ctx, CollectionLogs, payload))

	got, err := s.Get(ctx, CollectionLogs)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(got))
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, CollectionDay, []byte(`{"v":1}`)))
	require.NoError(t, s.Set(ctx, CollectionDay, []byte(`{"v":2}`)))

	got, err := s.Get(ctx, CollectionDay)
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(got))
}

func TestSQLiteStore_CollectionsAreIndependent(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, CollectionLogs, []byte(`["log"]`)))

	_, err := s.Get(ctx, CollectionSummaries)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sp.db")
	ctx := context.Background()

	s1, err := NewSQLite(dbPath)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, CollectionTests, []byte(`[]`)))
	require.NoError(t, s1.Close())

	s2, err := NewSQLite(dbPath)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get(ctx, CollectionTests)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))
}
