package logger

import (
	"strings"
	"sync"
)

// Log levels accepted from configuration.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process-wide logger. The level passed on the first call wins;
// later calls return the same instance regardless of level.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(normalizeLevel(level))
	})
	return globalLogger
}

// Nop returns a logger that discards everything. Components fall back to it
// when no logger is injected, and tests use it directly.
func Nop() *Logger {
	return newNopLogger()
}

func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}
