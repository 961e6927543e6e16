package logger

import (
	"github.com/philipp01105/gklog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel   = core.TraceLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel
)

// ParseLevel converts a level name such as "info" or "WARNING" to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
