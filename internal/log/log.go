// ABOUTME: Debug logging wrapper around slog levels for verbose mode output
// ABOUTME: Global level via SetLevel; writes to stderr to stay out of the TUI

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64
	out   atomic.Pointer[io.Writer]
)

func init() {
	level.Store(int64(LevelInfo))
	var w io.Writer = os.Stderr
	out.Store(&w)
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	out.Store(&w)
}

func emit(min slog.Level, prefix, format string, args ...any) {
	if slog.Level(level.Load()) > min {
		return
	}
	fmt.Fprintf(*out.Load(), prefix+format+"\n", args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	emit(LevelDebug, "[DEBUG] ", format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	emit(LevelInfo, "[INFO] ", format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	emit(LevelWarn, "[WARN] ", format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	fmt.Fprintf(*out.Load(), "[ERROR] "+format+"\n", args...)
}
