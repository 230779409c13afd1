package poetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/diwan/internal/poetry"
)

/*
TestNewRegistry_Embedded verifies the embedded poet list loads and keeps its invariants.
*/
func TestNewRegistry_Embedded(t *testing.T) {
	registry, err := poetry.NewRegistry()
	require.NoError(t, err)

	poets := registry.Poets()
	require.Len(t, poets, 40)
	assert.Equal(t, 40, registry.Len())

	seen := make(map[string]bool)
	for _, poet := range poets {
		assert.False(t, seen[poet.ID], "duplicate id %s", poet.ID)
		seen[poet.ID] = true
		assert.NotEmpty(t, poet.Name)
		assert.True(t, poet.Era.Recognized(), "poet %s has era %s", poet.ID, poet.Era)
	}

	mutanabbi, ok := registry.Poet("mutanabbi")
	require.True(t, ok)
	assert.Equal(t, "المتنبي", mutanabbi.Name)
	assert.Equal(t, poetry.EraAbbasid, mutanabbi.Era)
	assert.Equal(t, 35, mutanabbi.PoemCount)

	adonis, ok := registry.Poet("adonis")
	require.True(t, ok)
	assert.Empty(t, adonis.DeathYear)
}

/*
TestLoadRegistry_Validation verifies load-time rejection and era degradation.
*/
func TestLoadRegistry_Validation(t *testing.T) {
	t.Run("duplicate_id", func(t *testing.T) {
		_, err := poetry.LoadRegistry([]byte(`
poets:
  - {id: a, name: أ, era: جاهلي}
  - {id: a, name: ب, era: أموي}
`))
		assert.ErrorContains(t, err, "duplicate poet id")
	})

	t.Run("missing_name", func(t *testing.T) {
		_, err := poetry.LoadRegistry([]byte(`poets: [{id: a, name: "  "}]`))
		assert.Error(t, err)
	})

	t.Run("unknown_era_degrades", func(t *testing.T) {
		registry, err := poetry.LoadRegistry([]byte(`poets: [{id: a, name: أ, era: فاطمي}]`))
		require.NoError(t, err)

		poet, _ := registry.Poet("a")
		assert.Equal(t, poetry.EraUnspecified, poet.Era)
	})
}

/*
TestRegistry_PoetsIsACopy verifies callers cannot mutate the registry through the returned slice.
*/
func TestRegistry_PoetsIsACopy(t *testing.T) {
	registry, err := poetry.NewRegistry()
	require.NoError(t, err)

	poets := registry.Poets()
	poets[0].Name = "changed"

	assert.NotEqual(t, "changed", registry.Poets()[0].Name)
}

/*
TestParseEra verifies recognized labels round-trip and everything else lands in the bucket.
*/
func TestParseEra(t *testing.T) {
	for _, era := range poetry.Eras() {
		assert.Equal(t, era, poetry.ParseEra(" "+string(era)+" "))
	}

	assert.Equal(t, poetry.EraUnspecified, poetry.ParseEra(""))
	assert.Equal(t, poetry.EraUnspecified, poetry.ParseEra("Abbasid"))
	assert.False(t, poetry.EraUnspecified.Recognized())
}
