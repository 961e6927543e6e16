package formatter

import (
	"io"

	"go.uber.org/zap/buffer"

	"github.com/philipp01105/gklog/core"
)

// TextFormatter renders entries as "HH:MM:SS LABEL MESSAGE\n"
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: applyDefaults(cfg)}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := GetBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	PutBuffer(buf)
	return err
}

// FormatEntry appends the formatted entry to buf. The message is clamped
// before it is copied so the line never exceeds MaxLineSize.
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *buffer.Buffer) {
	label := f.label(entry.Level)

	buf.AppendTime(entry.Time, TimestampLayout)
	buf.AppendByte(' ')
	buf.AppendString(label)

	limit := f.MaxMessageSize
	if room := f.MaxLineSize - len(TimestampLayout) - 1 - len(label) - 1; room < limit {
		limit = room
	}
	msg, _ := Truncate(entry.Message, limit)
	buf.AppendString(msg)

	buf.AppendByte('\n')
}

func (f *TextFormatter) label(level core.Level) string {
	if f.AlignLabels {
		return level.AlignedLabel()
	}
	return level.Label()
}
