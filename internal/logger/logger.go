package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	active = discard()
	writer *lumberjack.Logger
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Init routes log output to a rotating file at path. With an empty
// path logging stays disabled, which is the default: the process owns
// the terminal, so nothing may ever write to stdout or stderr while
// the editor runs.
//
// The level is one of debug, info, warn, error.
func Init(level, path string) error {
	lv, err := parseLevel(level)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}
	}

	if writer != nil {
		writer.Close()
	}
	writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}
	active = slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: lv}))
	return nil
}

// Close closes the log file, if one was opened, and disables logging.
func Close() {
	if writer != nil {
		writer.Close()
		writer = nil
	}
	active = discard()
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	active.Debug(msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	active.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	active.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	active.Error(msg, args...)
}
