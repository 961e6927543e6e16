//go:build release

package logger

// DefaultLevel is the threshold new loggers start with.
const DefaultLevel = ErrorLevel
