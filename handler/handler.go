package handler

import (
	"github.com/philipp01105/gklog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Initializer is implemented by handlers that need a one-time setup step
// before their output renders as intended, such as terminal detection.
// Init must be safe to call more than once; only the first call counts.
type Initializer interface {
	Init()
}

// StatsProvider is implemented by handlers that track Stats
type StatsProvider interface {
	Stats() Snapshot
}
