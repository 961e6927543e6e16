package logger

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/philipp01105/gklog/core"
	"github.com/philipp01105/gklog/formatter"
	"github.com/philipp01105/gklog/handler/consolehandler"
)

func fixedClock() time.Time {
	return time.Date(2026, 4, 2, 14, 3, 5, 0, time.Local)
}

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
		Detector: consolehandler.Detector{
			IsTerminal: func(uintptr) bool { return false },
			Getenv:     func(string) string { return "" },
		},
	})
	return NewBuilder().
		WithHandler(h).
		WithLevel(level).
		WithClock(fixedClock).
		Build()
}

func logAt(l *Logger, level Level, format string, args ...any) {
	switch level {
	case TraceLevel:
		l.Tracef(format, args...)
	case DebugLevel:
		l.Debugf(format, args...)
	case InfoLevel:
		l.Infof(format, args...)
	case WarningLevel:
		l.Warningf(format, args...)
	case ErrorLevel:
		l.Errorf(format, args...)
	case FatalLevel:
		l.Fatalf(format, args...)
	}
}

func TestLogger_LevelGate(t *testing.T) {
	for _, threshold := range core.Levels() {
		for _, level := range core.Levels() {
			var buf bytes.Buffer
			l := newTestLogger(&buf, threshold)

			logAt(l, level, "message")

			emitted := buf.Len() > 0
			if want := level >= threshold; emitted != want {
				t.Errorf("threshold %v, level %v: emitted = %v, want %v", threshold, level, emitted, want)
			}
			if l.IsEnabled(level) != (level >= threshold) {
				t.Errorf("IsEnabled(%v) with threshold %v = %v", level, threshold, l.IsEnabled(level))
			}
		}
	}
}

func TestLogger_WarningScenario(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, InfoLevel)

	l.Warningf("disk at %d%%", 91)

	if want := "14:03:05 [WARNING]disk at 91%\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_SuppressedInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, ErrorLevel)

	l.Infof("starting")

	if buf.Len() != 0 {
		t.Errorf("suppressed call produced output %q", buf.String())
	}
}

func TestLogger_SetLevelClamps(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, TraceLevel)

	l.SetLevel(Level(99))
	if l.Level() != FatalLevel {
		t.Fatalf("Level() = %v, want FATAL", l.Level())
	}

	for _, level := range core.Levels()[:5] {
		logAt(l, level, "hidden")
	}
	if buf.Len() != 0 {
		t.Errorf("levels below FATAL produced output %q", buf.String())
	}

	l.Fatalf("x")
	if want := "14:03:05 [FATAL] x\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}

	l.SetLevel(Level(-5))
	if l.Level() != TraceLevel {
		t.Errorf("Level() = %v, want TRACE", l.Level())
	}
}

func TestLogger_SuppressedCallDoesNoWork(t *testing.T) {
	clockCalls := 0
	h := &recordingHandler{}
	l := NewBuilder().
		WithHandler(h).
		WithLevel(ErrorLevel).
		WithClock(func() time.Time {
			clockCalls++
			return fixedClock()
		}).
		Build()

	l.Debugf("%v", stringerFunc(func() string {
		t.Error("argument was formatted for a suppressed call")
		return ""
	}))

	if clockCalls != 0 {
		t.Errorf("clock called %d times for a suppressed call", clockCalls)
	}
	if len(h.entries) != 0 {
		t.Errorf("handler received %d entries", len(h.entries))
	}
}

func TestLogger_Labels(t *testing.T) {
	for _, level := range core.Levels() {
		var buf bytes.Buffer
		l := newTestLogger(&buf, TraceLevel)

		logAt(l, level, "[FATAL] %s", "[INFO]")

		want := "14:03:05 " + level.Label() + "[FATAL] [INFO]\n"
		if buf.String() != want {
			t.Errorf("%v: output = %q, want %q", level, buf.String(), want)
		}
	}
}

func TestLogger_PercentInArgument(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, TraceLevel)

	l.Infof("%s", "100% done, %d left")

	if want := "14:03:05 [INFO] 100% done, %d left\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_PlainMessage(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, TraceLevel)

	l.Errorf("no arguments")

	if want := "14:03:05 [ERROR] no arguments\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_OverflowTruncates(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantLen int
	}{
		{"at capacity", core.MaxMessageSize, core.MaxMessageSize},
		{"one beyond", core.MaxMessageSize + 1, core.MaxMessageSize},
		{"far beyond", 10 * core.MaxLineSize, core.MaxMessageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTestLogger(&buf, TraceLevel)

			l.Infof("%s", strings.Repeat("m", tt.size))

			line := buf.String()
			if want := len("14:03:05 [INFO] ") + tt.wantLen + 1; len(line) != want {
				t.Errorf("len(line) = %d, want %d", len(line), want)
			}
			if strings.Count(line, "\n") != 1 || !strings.HasSuffix(line, "\n") {
				t.Errorf("line must end in exactly one newline")
			}
		})
	}
}

func TestLogger_WriteErrorSwallowed(t *testing.T) {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: writerFunc(func([]byte) (int, error) { return 0, errors.New("closed") }),
	})
	l := NewBuilder().WithHandler(h).WithLevel(TraceLevel).Build()

	l.Errorf("nobody hears this")

	snap, ok := l.Stats()
	if !ok {
		t.Fatal("Stats() not available for console handler")
	}
	if snap.FailedTotal != 1 {
		t.Errorf("FailedTotal = %d, want 1", snap.FailedTotal)
	}
}

func TestLogger_InitColors(t *testing.T) {
	var buf bytes.Buffer
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: &buf,
		Detector: consolehandler.Detector{
			IsTerminal: func(uintptr) bool { return true },
			Getenv:     func(string) string { return "xterm" },
		},
	})
	l := NewBuilder().WithHandler(h).WithClock(fixedClock).Build()

	l.Infof("before")
	l.Init()
	l.Infof("after")

	start, reset := consolehandler.ColorFor(InfoLevel)
	want := "14:03:05 [INFO] before\n" + start + "14:03:05 [INFO] after\n" + reset
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_InitNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, TraceLevel)

	l.Init()
	l.Init()

	if buf.String() != consolehandler.NotTerminalNotice {
		t.Errorf("output = %q, want one notice", buf.String())
	}
}

func TestLogger_NilHandler(t *testing.T) {
	l := NewBuilder().Build()

	l.Init()
	l.Fatalf("goes nowhere")

	if _, ok := l.Stats(); ok {
		t.Error("Stats() reported ok without a handler")
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestLogger_MaxMessageSize(t *testing.T) {
	h := &recordingHandler{}
	l := NewBuilder().WithHandler(h).WithMaxMessageSize(4).Build()

	l.Infof("abcdefgh")

	if len(h.entries) != 1 || h.entries[0] != "abcd" {
		t.Errorf("entries = %q, want [abcd]", h.entries)
	}
}

func TestLogger_ConcurrentSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, TraceLevel)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				l.SetLevel(Level(i % 7))
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				l.Warningf("w %d", i)
			}
		}()
	}
	wg.Wait()

	for _, line := range strings.SplitAfter(buf.String(), "\n") {
		if line != "" && !strings.HasPrefix(line, "14:03:05 [WARNING]w ") {
			t.Fatalf("corrupted line %q", line)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	var buf bytes.Buffer
	SetDefault(newTestLogger(&buf, TraceLevel))

	SetLevel(InfoLevel)
	if GetLevel() != InfoLevel || IsEnabled(DebugLevel) {
		t.Fatalf("default level not applied")
	}

	Tracef("t")
	Debugf("d")
	Infof("i %d", 1)
	Warningf("w")
	Errorf("e")
	Fatalf("f")

	want := "14:03:05 [INFO] i 1\n" +
		"14:03:05 [WARNING]w\n" +
		"14:03:05 [ERROR] e\n" +
		"14:03:05 [FATAL] f\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	Init()
	if buf.String() != consolehandler.NotTerminalNotice {
		t.Errorf("Init() output = %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warning")
	if err != nil || level != WarningLevel {
		t.Errorf("ParseLevel(warning) = %v, %v", level, err)
	}
	if _, err := ParseLevel("nope"); !errors.Is(err, core.ErrUnknownLevel) {
		t.Errorf("ParseLevel(nope) error = %v", err)
	}
}

type recordingHandler struct {
	entries []string
}

func (h *recordingHandler) Handle(e *core.Entry) error {
	h.entries = append(h.entries, e.Message)
	return nil
}

func (h *recordingHandler) Close() error { return nil }

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

type stringerFunc func() string

func (f stringerFunc) String() string { return f() }
