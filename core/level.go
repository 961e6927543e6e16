package core

import (
	"errors"
	"fmt"
	"strings"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// TraceLevel for the most verbose diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages (logged only, the process keeps running)
	FatalLevel
)

const (
	// MinLevel is the most verbose level
	MinLevel = TraceLevel
	// MaxLevel is the most severe level
	MaxLevel = FatalLevel
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names
var ErrUnknownLevel = errors.New("unknown log level")

var levelNames = [...]string{
	TraceLevel:   "TRACE",
	DebugLevel:   "DEBUG",
	InfoLevel:    "INFO",
	WarningLevel: "WARNING",
	ErrorLevel:   "ERROR",
	FatalLevel:   "FATAL",
}

// levelLabels is the on-the-wire label table. WARNING carries no trailing
// space; parsers of existing logs rely on it.
var levelLabels = [...]string{
	TraceLevel:   "[TRACE] ",
	DebugLevel:   "[DEBUG] ",
	InfoLevel:    "[INFO] ",
	WarningLevel: "[WARNING]",
	ErrorLevel:   "[ERROR] ",
	FatalLevel:   "[FATAL] ",
}

var alignedLabels = [...]string{
	TraceLevel:   "[TRACE] ",
	DebugLevel:   "[DEBUG] ",
	InfoLevel:    "[INFO] ",
	WarningLevel: "[WARNING] ",
	ErrorLevel:   "[ERROR] ",
	FatalLevel:   "[FATAL] ",
}

// Valid reports whether l is one of the six defined levels
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// String returns the string representation of the level
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Label returns the fixed display label written in front of the message.
// Out-of-range levels are clamped first.
func (l Level) Label() string {
	return levelLabels[Clamp(l)]
}

// AlignedLabel is Label with every entry ending in a single space.
func (l Level) AlignedLabel() string {
	return alignedLabels[Clamp(l)]
}

// Clamp maps any value onto the defined range: above MaxLevel becomes
// MaxLevel, below MinLevel becomes MinLevel.
func Clamp(l Level) Level {
	switch {
	case l > MaxLevel:
		return MaxLevel
	case l < MinLevel:
		return MinLevel
	default:
		return l
	}
}

// Levels returns all levels from most verbose to most severe
func Levels() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, WarningLevel, ErrorLevel, FatalLevel}
}

// ParseLevel converts a level name (case-insensitive) to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarningLevel, nil
	case "ERROR", "ERR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
