package main

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger creates a text *slog.Logger writing to w at the given level and
// sets it as the default logger. Unknown levels fall back to warn so a
// normal run prints nothing but results.
func NewLogger(level string, w io.Writer) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
