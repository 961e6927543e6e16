package handler

import (
	"sync/atomic"

	"github.com/philipp01105/gklog/core"
)

// Stats tracks handler statistics. Logging calls never report write
// failures to the caller, so this is the place to observe them.
type Stats struct {
	// Separate atomic counters per level
	processed [core.MaxLevel + 1]atomic.Uint64
	// failed counts entries whose write returned an error
	failed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter for a level
func (s *Stats) IncrementProcessed(level core.Level) {
	s.processed[core.Clamp(level)].Add(1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.processed[level].Load()
}

// GetTotalProcessed returns the processed count across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	var total uint64
	for i := range s.processed {
		total += s.processed[i].Load()
	}
	return total
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return s.failed.Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
	}
	s.failed.Store(0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed:   make(map[core.Level]uint64, len(s.processed)),
		FailedTotal: s.GetFailed(),
	}
	for _, level := range core.Levels() {
		n := s.GetProcessed(level)
		snap.Processed[level] = n
		snap.ProcessedTotal += n
	}
	return snap
}
