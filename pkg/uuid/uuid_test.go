// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/diwan/pkg/uuid"
)

/*
TestNew verifies that generated identifiers are distinct UUID strings.
*/
func TestNew(t *testing.T) {
	first, second := uuid.New(), uuid.New()

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
	assert.Equal(t, byte('7'), first[14], "version nibble")
}

/*
TestStable verifies that name-based identifiers are reproducible.
*/
func TestStable(t *testing.T) {
	assert.Equal(t, uuid.Stable(`{"title":"المساء"}`), uuid.Stable(`{"title":"المساء"}`))
	assert.NotEqual(t, uuid.Stable("a"), uuid.Stable("b"))
}
