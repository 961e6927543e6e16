package consolehandler

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Capability describes what the output stream can render.
type Capability int

const (
	// NotTerminal means the stream is a file, pipe or similar
	NotTerminal Capability = iota
	// MonochromeTerminal is a terminal without color support (TERM unset or "dumb")
	MonochromeTerminal
	// ColorTerminal is a terminal that renders ANSI SGR sequences
	ColorTerminal
)

// String returns the string representation of the capability
func (c Capability) String() string {
	switch c {
	case NotTerminal:
		return "NotTerminal"
	case MonochromeTerminal:
		return "MonochromeTerminal"
	case ColorTerminal:
		return "ColorTerminal"
	default:
		return "Unknown"
	}
}

// Detector decides whether a file descriptor is a color-capable terminal.
// Zero-value fields fall back to stdout, the real terminal check and
// os.Getenv.
type Detector struct {
	// Fd is the descriptor to inspect (default: os.Stdout)
	Fd uintptr
	// IsTerminal reports whether fd is an interactive terminal
	IsTerminal func(fd uintptr) bool
	// Getenv looks up the TERM variable
	Getenv func(key string) string
}

// NewDetector returns a Detector for the process's standard output
func NewDetector() Detector {
	return Detector{
		Fd:         os.Stdout.Fd(),
		IsTerminal: isTerminal,
		Getenv:     os.Getenv,
	}
}

// Detect inspects the descriptor and the TERM variable
func (d Detector) Detect() Capability {
	d = d.withDefaults()

	if !d.IsTerminal(d.Fd) {
		return NotTerminal
	}
	if t := d.Getenv("TERM"); t == "" || t == "dumb" {
		return MonochromeTerminal
	}
	return ColorTerminal
}

func (d Detector) withDefaults() Detector {
	def := NewDetector()
	if d.IsTerminal == nil {
		d.IsTerminal = def.IsTerminal
		if d.Fd == 0 {
			d.Fd = def.Fd
		}
	}
	if d.Getenv == nil {
		d.Getenv = def.Getenv
	}
	return d
}

// isTerminal also accepts Cygwin and MSYS2 ptys, which are pipes to
// term.IsTerminal.
func isTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}
