// Package logger is the session log: slog over a size-rotated file.
// It is silent until Init points it at a file, and stays silent when
// no log path is configured.
package logger
