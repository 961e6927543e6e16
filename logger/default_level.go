//go:build !release

package logger

// DefaultLevel is the threshold new loggers start with. Development
// builds log everything; build with -tags release for ErrorLevel.
const DefaultLevel = TraceLevel
