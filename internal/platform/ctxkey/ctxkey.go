// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// # Safety
//
// Keys carry per-request values (reader session, request ID, logger).
// An unexported key type keeps them from colliding with other packages
// that store values in the same context.
package ctxkey

// key is an unexported type used for context keys.
//
// # Collision Prevention
//
// [context.Context] compares both the value AND the type on lookup, so a
// plain "request_id" string from another package never matches.
type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeySession is the context key for the reader session identifier.
	KeySession key = "session"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
