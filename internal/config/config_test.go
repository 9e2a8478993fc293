package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "sp.db", cfg.Store.Filename)
	assert.Equal(t, 1, cfg.Validation.TitleMinLength)
	assert.Equal(t, 255, cfg.Validation.TitleMaxLength)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadBackend(t *testing.T) {
	cfg := NewConfig()
	cfg.Store.Backend = "postgres"
	assert.Error(t, cfg.Validate())
}

func TestValidateRemoteNeedsURL(t *testing.T) {
	cfg := NewConfig()
	cfg.Store.Backend = BackendRemote
	assert.Error(t, cfg.Validate())

	cfg.Remote.URL = "https://example.test/store"
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SP_STORE_BACKEND", "memory")
	t.Setenv("SP_STORE_FILENAME", "other.db")
	t.Setenv("SP_VALIDATION_TITLE_MAX", "64")
	t.Setenv("SP_APP_TIMEOUT", "90s")
	t.Setenv("SP_APP_VERBOSE", "true")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "other.db", cfg.Store.Filename)
	assert.Equal(t, 64, cfg.Validation.TitleMaxLength)
	assert.Equal(t, 90*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sp.yaml")
	content := []byte("store:\n  backend: memory\ndisplay:\n  logbook_weeks: 4\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	t.Setenv("SP_CONFIG_PATH", path)

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, 4, cfg.Display.LogbookWeeks)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: sqlite\n"), 0o644))

	t.Setenv("SP_CONFIG_PATH", path)
	t.Setenv("SP_STORE_BACKEND", "memory")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
}

func TestGetStorePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Store.Dir = "/tmp/sp-test"
	cfg.Store.Filename = "sp.db"
	assert.Equal(t, filepath.Join("/tmp/sp-test", "sp.db"), cfg.GetStorePath())
}
