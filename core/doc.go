// Package core defines the shared types used across gklog.
//
// It provides the Level type for severity filtering together with the
// fixed label table written in front of every message, and the Entry type
// that represents a single log record.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and must return it with PutEntry once the handler has
// consumed it.
//
// MaxMessageSize and MaxLineSize are the soft limits every formatter
// clamps to. Nothing in gklog writes past them; over-long input is
// truncated.
package core
