// Package logging configures the zerolog loggers used by cmd/bbwrl.
// internal/service logs through charmbracelet/log instead.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup configures zerolog with pretty console output, for interactive use
// (the CLI).
func Setup(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// SetupStructured configures zerolog for structured (JSON) output, for a
// process running under a supervisor.
func SetupStructured(debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger()
}
