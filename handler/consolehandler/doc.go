// Package consolehandler provides the console handler that writes
// formatted log lines to standard output (or any io.Writer).
//
// Colors are off until Init runs the terminal Detector. Init checks once
// whether the stream is an interactive terminal (golang.org/x/term, plus
// Cygwin/MSYS2 ptys via go-isatty) and whether TERM names something other
// than "dumb". Only then are lines wrapped in the level's SGR sequence
// and a reset:
//
//	TRACE cyan, DEBUG magenta, INFO green, WARNING yellow,
//	ERROR red, FATAL white on red
//
// If the stream is not a terminal at all, Init writes the line
// "Standard output is not a terminal." once.
//
// The default writer comes from go-colorable, which is os.Stdout on Unix
// and translates ANSI sequences for legacy Windows consoles.
package consolehandler
