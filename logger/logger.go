package logger

import (
	"sync/atomic"
	"time"

	"github.com/philipp01105/gklog/core"
	"github.com/philipp01105/gklog/formatter"
	"github.com/philipp01105/gklog/handler"
	"github.com/philipp01105/gklog/handler/consolehandler"
)

// Logger filters records by a severity threshold and hands the survivors
// to its handler. The threshold may change at any time via SetLevel;
// everything else is fixed at construction.
type Logger struct {
	handler        handler.Handler
	level          atomic.Int32
	now            func() time.Time
	maxMessageSize int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler        handler.Handler
	level          core.Level
	now            func() time.Time
	maxMessageSize int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:          DefaultLevel,
		now:            time.Now,
		maxMessageSize: core.MaxMessageSize,
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the initial threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithClock replaces time.Now as the source of record timestamps
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// WithMaxMessageSize sets the cap on rendered messages
func (b *Builder) WithMaxMessageSize(n int) *Builder {
	if n > 0 {
		b.maxMessageSize = n
	}
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		handler:        b.handler,
		now:            b.now,
		maxMessageSize: b.maxMessageSize,
	}
	l.SetLevel(b.level)
	return l
}

// New creates a Logger writing to standard output at DefaultLevel
func New() *Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{})
	return NewBuilder().WithHandler(h).Build()
}

// Init runs the handler's one-time setup, which for the console handler
// is terminal detection. Logging before Init works but is uncolored.
func (l *Logger) Init() {
	if i, ok := l.handler.(handler.Initializer); ok {
		i.Init()
	}
}

// SetLevel sets the threshold. Values above FatalLevel are clamped to
// FatalLevel and values below TraceLevel to TraceLevel.
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(core.Clamp(level)))
}

// Level returns the current threshold
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// IsEnabled reports whether a record of the given level passes the threshold
func (l *Logger) IsEnabled(level core.Level) bool {
	return int32(level) >= l.level.Load()
}

// Stats returns the handler's counters, if it keeps any
func (l *Logger) Stats() (handler.Snapshot, bool) {
	if sp, ok := l.handler.(handler.StatsProvider); ok {
		return sp.Stats(), true
	}
	return handler.Snapshot{}, false
}

// logf renders the message and passes the entry on. Handler errors stop
// here: logging never fails the caller.
func (l *Logger) logf(level core.Level, format string, args []any) {
	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		return
	}

	msg, _ := formatter.Sprintf(format, args, l.maxMessageSize)

	entry := core.GetEntry()
	entry.Time = l.now()
	entry.Level = level
	entry.Message = msg

	_ = l.handler.Handle(entry)

	core.PutEntry(entry)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...any) {
	if !l.IsEnabled(core.TraceLevel) {
		return
	}
	l.logf(core.TraceLevel, format, args)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...any) {
	if !l.IsEnabled(core.DebugLevel) {
		return
	}
	l.logf(core.DebugLevel, format, args)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...any) {
	if !l.IsEnabled(core.InfoLevel) {
		return
	}
	l.logf(core.InfoLevel, format, args)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...any) {
	if !l.IsEnabled(core.WarningLevel) {
		return
	}
	l.logf(core.WarningLevel, format, args)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...any) {
	if !l.IsEnabled(core.ErrorLevel) {
		return
	}
	l.logf(core.ErrorLevel, format, args)
}

// Fatalf logs a fatal message with formatting. Unlike most loggers it
// does not exit; terminating is left to the caller.
func (l *Logger) Fatalf(format string, args ...any) {
	if !l.IsEnabled(core.FatalLevel) {
		return
	}
	l.logf(core.FatalLevel, format, args)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
