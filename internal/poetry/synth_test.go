package poetry_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/diwan/internal/poetry"
)

func newSynthesizer(t *testing.T) *poetry.Synthesizer {
	t.Helper()
	synth, err := poetry.NewSynthesizer()
	require.NoError(t, err)
	return synth
}

func newRegistry(t *testing.T) *poetry.Registry {
	t.Helper()
	registry, err := poetry.NewRegistry()
	require.NoError(t, err)
	return registry
}

/*
TestSynthesizer_EveryRegistryPoet verifies each poet yields between 1 and 8 poems with content.
*/
func TestSynthesizer_EveryRegistryPoet(t *testing.T) {
	synth := newSynthesizer(t)

	for _, poet := range newRegistry(t).Poets() {
		poems := synth.Poems(poet)

		assert.GreaterOrEqual(t, len(poems), 1, poet.ID)
		assert.LessOrEqual(t, len(poems), 8, poet.ID)
		for _, poem := range poems {
			assert.NotEmpty(t, strings.TrimSpace(poem.Content), poem.ID)
			assert.Equal(t, poetry.OriginSynthesized, poem.Origin)
			assert.Equal(t, poet.Name, poem.Poet)
		}
	}
}

/*
TestSynthesizer_MutanabbiCapped verifies the poem count cap and era propagation.
*/
func TestSynthesizer_MutanabbiCapped(t *testing.T) {
	poet := poetry.Poet{ID: "mutanabbi", Name: "المتنبي", Era: poetry.EraAbbasid, BirthYear: "915", DeathYear: "965", PoemCount: 35}

	poems := newSynthesizer(t).Poems(poet)

	require.Len(t, poems, 8)
	for i, poem := range poems {
		assert.Equal(t, poetry.EraAbbasid, poem.Era)
		assert.Equal(t, "dct-mutanabbi-"+strconv.Itoa(i+1), poem.ID)
		assert.Equal(t, poetry.TypeClassical, poem.Type)
	}

	assert.Equal(t, "قصيدة في الحكمة والفلسفة", poems[0].Title)
	assert.Equal(t, "حكمة", poems[0].Theme)
	assert.Equal(t, "الميم", poems[0].Rhyme)
	assert.Equal(t, "الراء", poems[1].Rhyme)
	assert.True(t, strings.HasPrefix(poems[0].Content, "على قدر أهل العزم"))
	assert.Contains(t, poems[0].Description, "المتنبي")
}

/*
TestSynthesizer_Deterministic verifies repeated synthesis yields identical poems.
*/
func TestSynthesizer_Deterministic(t *testing.T) {
	synth := newSynthesizer(t)
	poet := poetry.Poet{ID: "nizar-qabbani", Name: "نزار قباني", Era: poetry.EraContemporary, BirthYear: "1923", DeathYear: "1998", PoemCount: 42}

	first, second := synth.Poems(poet), synth.Poems(poet)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("synthesis is not reproducible (-first +second):\n%s", diff)
	}

	for _, poem := range first {
		assert.Contains(t, []poetry.PoemType{poetry.TypeFreeVerse, poetry.TypeProse}, poem.Type)
		assert.Contains(t, synth.Meters(), poem.Meter)

		year, err := strconv.Atoi(strings.TrimSuffix(poem.Year, "م"))
		require.NoError(t, err, poem.Year)
		assert.GreaterOrEqual(t, year, 1923)
		assert.Less(t, year, 1998)
	}
}

/*
TestSynthesizer_Fallbacks verifies eras without templates and poets without counts or years.
*/
func TestSynthesizer_Fallbacks(t *testing.T) {
	synth := newSynthesizer(t)

	labid := poetry.Poet{ID: "labid", Name: "لبيد بن ربيعة", Era: poetry.EraMukhadram, BirthYear: "560", DeathYear: "661", PoemCount: 10}
	poems := synth.Poems(labid)
	require.Len(t, poems, 8)
	assert.Equal(t, "قصيدة 1", poems[0].Title)
	assert.Equal(t, "قصيدة 8", poems[7].Title)
	assert.Equal(t, "محتوى شعري تمثيلي", poems[0].Content)
	assert.Equal(t, poetry.DefaultTheme, poems[0].Theme)

	living := poetry.Poet{ID: "tamim", Name: "تميم البرغوثي", Era: poetry.EraContemporary, BirthYear: "1977"}
	poems = synth.Poems(living)
	require.Len(t, poems, 5)
	assert.Empty(t, poems[0].Year)
}

/*
TestSynthesizer_CorpusOrder verifies the corpus follows registry order.
*/
func TestSynthesizer_CorpusOrder(t *testing.T) {
	synth := newSynthesizer(t)
	poets := newRegistry(t).Poets()

	corpus := synth.Corpus(poets)

	var expected []poetry.Poem
	for _, poet := range poets {
		expected = append(expected, synth.Poems(poet)...)
	}
	if diff := cmp.Diff(expected, corpus); diff != "" {
		t.Fatalf("corpus order mismatch (-want +got):\n%s", diff)
	}
}

/*
TestLoadSynthesizer_RequiresLists verifies templates without meters are rejected.
*/
func TestLoadSynthesizer_RequiresLists(t *testing.T) {
	_, err := poetry.LoadSynthesizer([]byte(`eras: {}`))
	assert.Error(t, err)
}
