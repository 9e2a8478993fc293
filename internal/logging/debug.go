package logging

import (
	"log/slog"
	"os"
)

// DebugEnabled returns true if debug mode is enabled via the SP_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("SP_DEBUG") != ""
}

// NewLogger builds the operator-channel logger. Warnings and errors from the
// persistence and rollup paths land here; verbose lowers the level to info,
// SP_DEBUG to debug.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	if DebugEnabled() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
