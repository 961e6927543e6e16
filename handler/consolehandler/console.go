package consolehandler

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-colorable"
	"go.uber.org/zap/buffer"

	"github.com/philipp01105/gklog/core"
	"github.com/philipp01105/gklog/formatter"
	"github.com/philipp01105/gklog/handler"
)

// NotTerminalNotice is written once by Init when the output stream is not
// a terminal.
const NotTerminalNotice = "Standard output is not a terminal.\n"

// colorReset ends every colored line
const colorReset = "\x1b[0m"

// levelColors holds the SGR sequence opening each level's line
var levelColors = [...]string{
	core.TraceLevel:   "\x1b[36m",
	core.DebugLevel:   "\x1b[35m",
	core.InfoLevel:    "\x1b[32m",
	core.WarningLevel: "\x1b[33m",
	core.ErrorLevel:   "\x1b[31m",
	core.FatalLevel:   "\x1b[37;41m",
}

// ColorFor returns the escape sequence that starts a line of the given
// level and the shared reset sequence that ends it.
func ColorFor(level core.Level) (start, reset string) {
	return levelColors[core.Clamp(level)], colorReset
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: colorable stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Detector decides on color support during Init (default: stdout)
	Detector Detector
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = colorable.NewColorableStdout()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// ConsoleHandler writes formatted lines to a console stream, wrapped in
// per-level ANSI colors once Init has found a color terminal. Each line
// goes out in a single Write; a mutex keeps lines from concurrent
// goroutines from interleaving.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	detector        Detector
	stats           *handler.Stats

	initOnce sync.Once
	color    atomic.Bool
	mu       sync.Mutex
}

// NewConsoleHandler creates a new console handler. Output is uncolored
// until Init is called.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		detector:  cfg.Detector,
		stats:     handler.NewStats(),
	}

	// Cache BufferFormatter so color and line share one buffer
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	return h
}

// Init detects the terminal capability once. A color terminal enables
// colored output; a non-terminal stream gets NotTerminalNotice. Later
// calls do nothing.
func (h *ConsoleHandler) Init() {
	h.initOnce.Do(func() {
		switch h.detector.Detect() {
		case ColorTerminal:
			h.color.Store(true)
		case NotTerminal:
			h.mu.Lock()
			_, _ = io.WriteString(h.writer, NotTerminalNotice)
			h.mu.Unlock()
		}
	})
}

// ColorEnabled reports whether lines are wrapped in color escapes
func (h *ConsoleHandler) ColorEnabled() bool {
	return h.color.Load()
}

// Handle formats and writes an entry
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	buf := formatter.GetBuffer()
	defer formatter.PutBuffer(buf)

	color := h.color.Load()
	if color {
		buf.AppendString(levelColors[core.Clamp(entry.Level)])
	}
	if err := h.formatInto(entry, buf); err != nil {
		return err
	}
	if color {
		buf.AppendString(colorReset)
	}

	h.mu.Lock()
	_, err := h.writer.Write(buf.Bytes())
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

func (h *ConsoleHandler) formatInto(entry *core.Entry, buf *buffer.Buffer) error {
	if h.bufferFormatter != nil {
		h.bufferFormatter.FormatEntry(entry, buf)
		return nil
	}
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	buf.AppendBytes(data)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. The console stream itself is left open.
func (h *ConsoleHandler) Close() error {
	return nil
}

var (
	_ handler.Handler       = (*ConsoleHandler)(nil)
	_ handler.Initializer   = (*ConsoleHandler)(nil)
	_ handler.StatsProvider = (*ConsoleHandler)(nil)
)
