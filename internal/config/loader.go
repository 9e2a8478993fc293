package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override from an optional YAML file named by SP_CONFIG_PATH
// 3. Override with environment variables
// Command line flags are applied later by the CLI layer.
func (l *Loader) Load() (*Config, error) {
	if path := os.Getenv("SP_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, l.config); err != nil {
			return nil, err
		}
	}

	l.loadFromEnvironment()

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// loadFromEnvironment applies SP_* environment variable overrides
func (l *Loader) loadFromEnvironment() {
	c := l.config

	setString((*string)(&c.Store.Backend), "SP_STORE_BACKEND")
	setString(&c.Store.Dir, "SP_STORE_DIR")
	setString(&c.Store.Filename, "SP_STORE_FILENAME")
	setDuration(&c.Store.WriteTimeout, "SP_STORE_WRITE_TIMEOUT")

	setString(&c.Remote.URL, "SP_REMOTE_URL")
	setDuration(&c.Remote.Timeout, "SP_REMOTE_TIMEOUT")

	setString(&c.Insight.URL, "SP_INSIGHT_URL")
	setString(&c.Insight.Model, "SP_INSIGHT_MODEL")
	setDuration(&c.Insight.Timeout, "SP_INSIGHT_TIMEOUT")

	setInt(&c.Validation.TitleMinLength, "SP_VALIDATION_TITLE_MIN")
	setInt(&c.Validation.TitleMaxLength, "SP_VALIDATION_TITLE_MAX")

	setBool(&c.Display.Color, "SP_DISPLAY_COLOR")
	setInt(&c.Display.LogbookWeeks, "SP_DISPLAY_LOGBOOK_WEEKS")

	setDuration(&c.Application.Timeout, "SP_APP_TIMEOUT")
	setBool(&c.Application.Verbose, "SP_APP_VERBOSE")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*dst = parsed
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}
