package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestStateEncoding verifies stored states decode with the key's id and defaults applied.
*/
func TestStateEncoding(t *testing.T) {
	state := New("s1")
	state.ToggleFavorite("lib-2")
	state.SetFilters(Filters{Type: "تفعيلة"})
	state.UpdatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	payload, err := encodeState(state)
	require.NoError(t, err)

	decoded, err := decodeState("s1", payload)
	require.NoError(t, err)
	assert.Equal(t, state, decoded)

	t.Run("legacy payload", func(t *testing.T) {
		decoded, err := decodeState("s9", []byte(`{"id":"other","favorites":null,"page":0}`))
		require.NoError(t, err)
		assert.Equal(t, "s9", decoded.ID)
		assert.Equal(t, []string{}, decoded.Favorites)
		assert.Equal(t, []string{}, decoded.CompletedLessons)
		assert.Equal(t, 1, decoded.Page)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		_, err := decodeState("s1", []byte(`{`))
		assert.Error(t, err)
	})
}

/*
TestKey verifies the Redis key layout.
*/
func TestKey(t *testing.T) {
	assert.Equal(t, "session:state:abc", key("abc"))
}
