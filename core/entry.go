package core

import (
	"sync"
	"time"
)

const (
	// MaxMessageSize caps the rendered user message, in bytes.
	MaxMessageSize = 4096
	// MaxLineSize caps the composed line (timestamp, label, message and
	// newline), in bytes. Color escapes are not counted.
	MaxLineSize = 32000
)

// Entry represents a single log record. It lives only for the duration of
// one logging call.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Time{}
	e.Level = TraceLevel
	e.Message = ""
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	entryPool.Put(e)
}
