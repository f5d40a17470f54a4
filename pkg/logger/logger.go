// Package logger provides a structured, levelled logger built on log/slog.
//
// Output goes to stderr so diagnostics never mix with command output on
// stdout. The level comes from LOG_LEVEL (default warn, so a normal
// invocation prints nothing here).
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/shashiranjanraj/artstock/config"
)

var L *slog.Logger

func init() {
	opts := &slog.HandlerOptions{Level: parseLevel(config.LogLevel())}

	var handler slog.Handler
	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stderr, opts) // structured JSON for log aggregators
	default:
		handler = slog.NewTextHandler(os.Stderr, opts) // human-readable for dev
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
