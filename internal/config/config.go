package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// StoreBackend selects which persistence collaborator backs the collections.
type StoreBackend string

const (
	BackendSQLite StoreBackend = "sqlite"
	BackendRemote StoreBackend = "remote"
	BackendMemory StoreBackend = "memory"
)

// Config holds all configuration options for the study planner application
type Config struct {
	Store       StoreConfig       `yaml:"store"`
	Remote      RemoteConfig      `yaml:"remote"`
	Insight     InsightConfig     `yaml:"insight"`
	Validation  ValidationConfig  `yaml:"validation"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
}

// StoreConfig holds persistence configuration
type StoreConfig struct {
	Backend      StoreBackend  `yaml:"backend" env:"SP_STORE_BACKEND"`
	Dir          string        `yaml:"dir" env:"SP_STORE_DIR"`
	Filename     string        `yaml:"filename" env:"SP_STORE_FILENAME"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SP_STORE_WRITE_TIMEOUT"`
}

// RemoteConfig holds remote blob store configuration
type RemoteConfig struct {
	URL     string        `yaml:"url" env:"SP_REMOTE_URL"`
	Timeout time.Duration `yaml:"timeout" env:"SP_REMOTE_TIMEOUT"`
}

// InsightConfig holds text-generation collaborator configuration
type InsightConfig struct {
	URL     string        `yaml:"url" env:"SP_INSIGHT_URL"`
	Model   string        `yaml:"model" env:"SP_INSIGHT_MODEL"`
	Timeout time.Duration `yaml:"timeout" env:"SP_INSIGHT_TIMEOUT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength int `yaml:"title_min_length" env:"SP_VALIDATION_TITLE_MIN"`
	TitleMaxLength int `yaml:"title_max_length" env:"SP_VALIDATION_TITLE_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Color        bool `yaml:"color" env:"SP_DISPLAY_COLOR"`
	LogbookWeeks int  `yaml:"logbook_weeks" env:"SP_DISPLAY_LOGBOOK_WEEKS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"SP_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"SP_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".sp")

	return &Config{
		Store: StoreConfig{
			Backend:      BackendSQLite,
			Dir:          defaultDir,
			Filename:     "sp.db",
			WriteTimeout: 5 * time.Second,
		},
		Remote: RemoteConfig{
			Timeout: 15 * time.Second,
		},
		Insight: InsightConfig{
			Model:   "llama3.2",
			Timeout: 30 * time.Second,
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
		},
		Display: DisplayConfig{
			Color:        true,
			LogbookWeeks: 8,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetStorePath returns the full path to the sqlite store file
func (c *Config) GetStorePath() string {
	return filepath.Join(c.Store.Dir, c.Store.Filename)
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendMemory:
	case BackendRemote:
		if c.Remote.URL == "" {
			return fmt.Errorf("store backend %q requires SP_REMOTE_URL", c.Store.Backend)
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if c.Validation.TitleMinLength < 1 {
		return fmt.Errorf("title min length must be at least 1")
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return fmt.Errorf("title max length must be >= min length")
	}
	if c.Application.Timeout <= 0 {
		return fmt.Errorf("application timeout must be positive")
	}
	return nil
}
