// Package logging configures structured logging with tint.
//
// Usage:
//
//	logger := logging.New(os.Stderr, slog.LevelInfo, logging.FormatText)
//	slog.SetDefault(logger)
//
// Text output is colored by tint for terminals; JSON output is meant for
// log collectors.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w at the given level. Any format other
// than FormatJSON selects the tint text handler.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// Setup builds a logger with New and installs it as the slog default.
func Setup(w io.Writer, level slog.Level, format string) *slog.Logger {
	logger := New(w, level, format)
	slog.SetDefault(logger)
	return logger
}
