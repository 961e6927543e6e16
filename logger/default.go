package logger

import (
	"sync"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Init detects whether stdout is a color terminal. Call it once near
// the start of main.
func Init() {
	Default().Init()
}

// SetLevel sets the threshold of the default logger
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// GetLevel returns the threshold of the default logger
func GetLevel() Level {
	return Default().Level()
}

// IsEnabled reports whether the default logger emits the given level
func IsEnabled(level Level) bool {
	return Default().IsEnabled(level)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...any) {
	Default().Tracef(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...any) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	Default().Infof(format, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...any) {
	Default().Warningf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...any) {
	Default().Errorf(format, args...)
}

// Fatalf logs a formatted fatal message using the default logger. It does
// not exit the program.
func Fatalf(format string, args ...any) {
	Default().Fatalf(format, args...)
}
