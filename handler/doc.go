// Package handler provides the Handler interface that receives finished
// log entries, and the Stats type handlers use to count them.
//
// Handlers are synchronous: Handle returns only after the entry has been
// written. Errors are returned to the caller, but the logger package
// never passes them on to application code; it relies on the handler's
// Stats instead, which count processed entries per level and failed
// writes.
//
// Handlers that need a one-time setup step (the console handler detects
// whether stdout is a color-capable terminal) implement Initializer.
//
// The built-in console handler lives in handler/consolehandler.
package handler
