package formatter

import (
	"fmt"
	"unicode/utf8"
)

// Sprintf renders format with args and clamps the result to max bytes.
// The second result reports whether anything was cut off.
func Sprintf(format string, args []any, max int) (string, bool) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	fmt.Fprintf(buf, format, args...)

	b := buf.Bytes()
	n := cutPoint(b, max)
	return string(b[:n]), n < len(b)
}

// Truncate clamps s to at most max bytes without splitting a UTF-8
// sequence. The second result reports whether s was shortened.
func Truncate(s string, max int) (string, bool) {
	n := cutPoint(s, max)
	return s[:n], n < len(s)
}

// cutPoint returns the length s may keep under a max byte limit. It backs
// off to a rune boundary when the limit falls inside a multi-byte
// sequence; on invalid UTF-8 it cuts at max.
func cutPoint[T ~string | ~[]byte](s T, max int) int {
	if len(s) <= max {
		return len(s)
	}
	if max <= 0 {
		return 0
	}
	for cut := max; cut > 0 && max-cut < utf8.UTFMax; cut-- {
		if utf8.RuneStart(s[cut]) {
			return cut
		}
	}
	return max
}
