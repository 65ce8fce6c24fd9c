// Package logger builds the slog logger used across the application.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New initializes a slog logger with the given level and format ("text" or
// "json"). Hooks log to stderr so stdout stays reserved for review output.
func New(level slog.Level, format string, output io.Writer) *slog.Logger {
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}
