// Package logging builds the process logger. Diagnostics go to stderr so
// stdout carries nothing but the quiz JSON.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultLevel is used when QUIZGEN_LOG_LEVEL is unset.
const DefaultLevel = slog.LevelWarn

// ParseLevel maps a level name to a slog level. Empty means DefaultLevel.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultLevel, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return DefaultLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// New returns a text logger writing to w. An unknown level falls back to
// DefaultLevel and the fallback is logged once.
func New(w io.Writer, level string) *slog.Logger {
	lvl, err := ParseLevel(level)
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	if err != nil {
		logger.Warn("falling back to default log level", "error", err, "level", DefaultLevel.String())
	}
	return logger
}
