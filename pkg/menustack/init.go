// Package menustack provides the screen stack controller for a menu/UI layer:
// screens with init/think/handle lifecycle hooks, deferred push/pop/replace/quit
// transitions, and a per-tick event dispatcher.
//
// All stack mutation goes through a Navigator, which only queues requests.
// The Controller applies the queue between ticks, so a screen may safely pop
// itself from inside its own callbacks.
package menustack

import (
	"log/slog"
	"os"

	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/internal"
)

// Options configures process-wide framework state.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // Application log level name ("debug", "info", "warn", "error")
	Debug    bool   // Verbose framework logging
}

// Init configures logging. Call once at process start, before building a Controller.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	if level != "" {
		internal.SetRawLogLevel(level)
	}

	if options.Debug || constants.IsDebug() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
