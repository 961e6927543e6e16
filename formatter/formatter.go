package formatter

import (
	"io"

	"go.uber.org/zap/buffer"

	"github.com/philipp01105/gklog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer. Console handlers use
// it to surround the line with color escapes in the same buffer.
type BufferFormatter interface {
	// FormatEntry appends the formatted entry to buf.
	FormatEntry(entry *core.Entry, buf *buffer.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// MaxMessageSize caps the rendered message (default: core.MaxMessageSize)
	MaxMessageSize int
	// MaxLineSize caps the composed line including the trailing newline
	// (default: core.MaxLineSize, never below MinLineSize)
	MaxLineSize int
	// AlignLabels writes "[WARNING] " instead of the historical "[WARNING]"
	AlignLabels bool
}

// TimestampLayout is the zero-padded 24-hour wall clock written at the
// start of every line.
const TimestampLayout = "15:04:05"

// MinLineSize is the smallest usable line limit: timestamp, separator,
// the widest label and the newline.
const MinLineSize = len(TimestampLayout) + 1 + len("[WARNING] ") + 1

// maxPooledBuffer keeps a single huge message from pinning memory in the pool.
const maxPooledBuffer = 64 * 1024

var bufferPool = buffer.NewPool()

// GetBuffer returns an empty buffer from the shared pool
func GetBuffer() *buffer.Buffer {
	return bufferPool.Get()
}

// PutBuffer returns buf to the shared pool unless it grew too large
func PutBuffer(buf *buffer.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Free()
}

func applyDefaults(cfg Config) Config {
	if cfg.MaxMessageSize <= 0 {
		cfg.MaxMessageSize = core.MaxMessageSize
	}
	if cfg.MaxLineSize <= 0 {
		cfg.MaxLineSize = core.MaxLineSize
	}
	if cfg.MaxLineSize < MinLineSize {
		cfg.MaxLineSize = MinLineSize
	}
	return cfg
}
