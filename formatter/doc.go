// Package formatter turns log entries into text lines.
//
// Every line has the shape
//
//	HH:MM:SS LABEL MESSAGE\n
//
// where HH:MM:SS is the entry's wall-clock time (24-hour, zero-padded) and
// LABEL is the fixed per-level string from core.Level.Label. The WARNING
// label is historically written without a trailing space, so a warning
// line reads "14:03:05 [WARNING]disk at 91%". Set Config.AlignLabels to get
// "[WARNING] " instead.
//
// Formatting never writes past its limits. Sprintf renders printf-style
// messages into a pooled go.uber.org/zap/buffer and clamps them to
// MaxMessageSize; TextFormatter clamps once more so the composed line stays
// within MaxLineSize. Cuts never split a UTF-8 sequence.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
