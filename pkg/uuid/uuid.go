// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides the identifiers used across the platform.

It wraps google/uuid for two purposes:

  - New: time-ordered Version 7 values for request and session identifiers.
  - Stable: name-based Version 5 values for records that arrive without an id,
    so the same remote record always receives the same identifier.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// Stable derives a UUIDv5 from name within the URL namespace.
func Stable(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}
