// Package logger is the public API of gklog. Most programs only need to
// import this package.
//
// A Logger owns a severity threshold and a handler. Six printf-style
// entry points, one per level, check the threshold and, if the record
// passes, stamp it with the local wall-clock time and hand it to the
// handler:
//
//	logger.Init()
//	logger.SetLevel(logger.InfoLevel)
//	logger.Warningf("disk at %d%%", 91)
//
// prints
//
//	14:03:05 [WARNING]disk at 91%
//
// in yellow when stdout is a color terminal, plain otherwise.
//
// The package keeps a default Logger writing to stdout; the package-level
// functions delegate to it. Independent loggers (for tests, or to write
// somewhere else) are built with the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf})).
//	    WithLevel(logger.DebugLevel).
//	    Build()
//
// SetLevel clamps out-of-range values, so SetLevel(99) means FatalLevel.
// The default threshold is TraceLevel, or ErrorLevel when built with
// -tags release.
//
// Filtered-out calls cost one atomic load and a comparison: no
// formatting, no clock lookup, no write. Write errors are never returned;
// inspect Logger.Stats to see them. Fatalf logs and returns, it does not
// exit.
package logger
