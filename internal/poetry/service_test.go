package poetry_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/diwan/internal/platform/apperr"
	"github.com/taibuivan/diwan/internal/poetry"
)

// stubRemote answers with fixed slices and records the calls it receives.
type stubRemote struct {
	poets     []poetry.Poet
	poems     []poetry.Poem
	poetPoems map[string][]poetry.Poem

	poemCalls int
}

func (remote *stubRemote) FetchPoets(context.Context) []poetry.Poet { return remote.poets }

func (remote *stubRemote) FetchPoems(_ context.Context, limit, offset int) []poetry.Poem {
	remote.poemCalls++
	return remote.poems
}

func (remote *stubRemote) FetchPoemsByPoet(_ context.Context, poetID string) []poetry.Poem {
	return remote.poetPoems[poetID]
}

func newService(t *testing.T, remote poetry.RemoteSource) *poetry.Service {
	t.Helper()
	library, err := poetry.NewMemoryRepository()
	require.NoError(t, err)
	return poetry.NewService(remote, newRegistry(t), newSynthesizer(t), library, nil, discardLogger)
}

func containsQuery(poem poetry.Poem, query string) bool {
	return strings.Contains(poem.Title, query) ||
		strings.Contains(poem.Poet, query) ||
		strings.Contains(poem.Content, query) ||
		strings.Contains(poem.Theme, query) ||
		strings.Contains(string(poem.Era), query)
}

/*
TestService_AllPoets_UnreachableRemote verifies that a dead catalogue yields the registry.
*/
func TestService_AllPoets_UnreachableRemote(t *testing.T) {
	dead := httptest.NewServer(nil)
	deadURL := dead.URL
	dead.Close()

	fetcher := newTestFetcher(t, poetry.DefaultEndpoints([]string{deadURL}), 200*time.Millisecond)
	service := newService(t, fetcher)

	poets := service.AllPoets(context.Background())

	assert.Empty(t, cmp.Diff(newRegistry(t).Poets(), poets))
	assert.Len(t, poets, 40)
}

/*
TestService_AllPoets_RemoteWins verifies that non-empty remote poets replace the registry.
*/
func TestService_AllPoets_RemoteWins(t *testing.T) {
	remote := &stubRemote{poets: []poetry.Poet{{ID: "r1", Name: "شاعر بعيد"}}}

	poets := newService(t, remote).AllPoets(context.Background())

	require.Len(t, poets, 1)
	assert.Equal(t, "r1", poets[0].ID)
}

/*
TestService_PoetPoems verifies remote results, registry synthesis and unknown poets.
*/
func TestService_PoetPoems(t *testing.T) {
	remote := &stubRemote{poetPoems: map[string][]poetry.Poem{
		"jarir": {{ID: "dct-77", Poet: "جرير", Content: "بيت"}},
	}}
	service := newService(t, remote)

	t.Run("remote", func(t *testing.T) {
		poems, err := service.PoetPoems(context.Background(), "jarir")
		require.NoError(t, err)
		require.Len(t, poems, 1)
		assert.Equal(t, "dct-77", poems[0].ID)
	})

	t.Run("synthesized", func(t *testing.T) {
		poems, err := service.PoetPoems(context.Background(), "mutanabbi")
		require.NoError(t, err)
		assert.Len(t, poems, 8)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := service.PoetPoems(context.Background(), "nobody")
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

/*
TestService_SearchPoems_EveryResultMatches verifies that each result contains the query
in at least one searchable field.
*/
func TestService_SearchPoems_EveryResultMatches(t *testing.T) {
	service := newService(t, &stubRemote{})

	for _, query := range []string{"المتنبي", "حكمة", "عباسي", "قفا", "ليل"} {
		t.Run(query, func(t *testing.T) {
			results := service.SearchPoems(context.Background(), query)
			for _, poem := range results {
				assert.True(t, containsQuery(poem, query), poem.ID)
			}
		})
	}

	assert.NotEmpty(t, service.SearchPoems(context.Background(), "المتنبي"))
	assert.Empty(t, service.SearchPoems(context.Background(), "zzz-not-arabic"))
}

/*
TestService_SearchPoems_EmptyQuery verifies that a blank query returns the head of the corpus.
*/
func TestService_SearchPoems_EmptyQuery(t *testing.T) {
	remote := &stubRemote{}
	service := newService(t, remote)

	results := service.SearchPoems(context.Background(), "   ")

	assert.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 50)
	assert.Empty(t, cmp.Diff(service.Corpus()[:len(results)], results))
	assert.Zero(t, remote.poemCalls)
}

/*
TestService_SearchPoems_RemotePage verifies that remote poems are filtered when available.
*/
func TestService_SearchPoems_RemotePage(t *testing.T) {
	remote := &stubRemote{poems: []poetry.Poem{
		{ID: "dct-1", Title: "الليل", Poet: "أ", Content: "سكون"},
		{ID: "dct-2", Title: "النهار", Poet: "ب", Content: "ضوء"},
	}}

	results := newService(t, remote).SearchPoems(context.Background(), "ليل")

	require.Len(t, results, 1)
	assert.Equal(t, "dct-1", results[0].ID)
	assert.Equal(t, 1, remote.poemCalls)
}

/*
TestService_PoemsByEra_PreIslamic verifies era filtering over the synthesized corpus.
*/
func TestService_PoemsByEra_PreIslamic(t *testing.T) {
	poems := newService(t, &stubRemote{}).PoemsByEra(poetry.EraPreIslamic)
	require.NotEmpty(t, poems)

	poets := make(map[string]bool)
	for _, poem := range poems {
		assert.Equal(t, poetry.EraPreIslamic, poem.Era)
		poets[poem.Poet] = true
	}

	for _, name := range []string{"امرؤ القيس", "عنترة بن شداد", "طرفة بن العبد", "زهير بن أبي سلمى", "عمرو بن كلثوم", "الحارث بن حلزة"} {
		assert.True(t, poets[name], name)
	}
	assert.False(t, poets["لبيد بن ربيعة"])
}

/*
TestService_PoemsByThemeAndPoet verifies the theme substring and exact poet filters.
*/
func TestService_PoemsByThemeAndPoet(t *testing.T) {
	service := newService(t, &stubRemote{})

	for _, poem := range service.PoemsByTheme("غزل") {
		assert.Contains(t, poem.Theme, "غزل")
	}

	byPoet := service.PoemsByPoet("جرير")
	require.NotEmpty(t, byPoet)
	for _, poem := range byPoet {
		assert.Equal(t, "جرير", poem.Poet)
	}
	assert.Empty(t, service.PoemsByPoet("جر"))
}

/*
TestService_RandomPoems verifies sample size and distinctness.
*/
func TestService_RandomPoems(t *testing.T) {
	service := newService(t, &stubRemote{})
	size := len(service.Corpus())

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"small", 5, 5},
		{"larger than corpus", size + 10, size},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poems := service.RandomPoems(tt.count)
			assert.Len(t, poems, tt.want)

			seen := make(map[string]bool)
			for _, poem := range poems {
				assert.False(t, seen[poem.ID], poem.ID)
				seen[poem.ID] = true
			}
		})
	}
}

/*
TestService_PoemByID verifies repeated lookups return identical poems.
*/
func TestService_PoemByID(t *testing.T) {
	service := newService(t, &stubRemote{})

	first, ok := service.PoemByID("dct-mutanabbi-1")
	require.True(t, ok)
	second, ok := service.PoemByID("dct-mutanabbi-1")
	require.True(t, ok)
	assert.Empty(t, cmp.Diff(first, second))

	_, ok = service.PoemByID("dct-missing-1")
	assert.False(t, ok)
}

/*
TestService_Library verifies that curated poems lead the listing and filters apply.
*/
func TestService_Library(t *testing.T) {
	service := newService(t, &stubRemote{})

	all, err := service.Library(context.Background(), poetry.LibraryFilter{})
	require.NoError(t, err)
	require.Greater(t, len(all), 3)
	assert.Equal(t, []string{"lib-1", "lib-2", "lib-3"}, []string{all[0].ID, all[1].ID, all[2].ID})

	tests := []struct {
		name   string
		filter poetry.LibraryFilter
		check  func(poetry.Poem) bool
	}{
		{"era", poetry.LibraryFilter{Era: poetry.EraAndalusian}, func(p poetry.Poem) bool { return p.Era == poetry.EraAndalusian }},
		{"type", poetry.LibraryFilter{Type: poetry.TypeFreeVerse}, func(p poetry.Poem) bool { return p.Type == poetry.TypeFreeVerse }},
		{"poet substring", poetry.LibraryFilter{Poet: "فراس"}, func(p poetry.Poem) bool { return strings.Contains(p.Poet, "فراس") }},
		{"query", poetry.LibraryFilter{Query: "العزم"}, func(p poetry.Poem) bool { return containsQuery(p, "العزم") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poems, err := service.Library(context.Background(), tt.filter)
			require.NoError(t, err)
			require.NotEmpty(t, poems)
			for _, poem := range poems {
				assert.True(t, tt.check(poem), poem.ID)
			}
		})
	}
}

/*
TestService_LibraryPoem verifies curated, synthesized and missing ids.
*/
func TestService_LibraryPoem(t *testing.T) {
	service := newService(t, &stubRemote{})

	curated, err := service.LibraryPoem(context.Background(), "lib-2")
	require.NoError(t, err)
	assert.Equal(t, poetry.OriginLocal, curated.Origin)
	assert.Equal(t, "أبو فراس الحمداني", curated.Poet)

	synthesized, err := service.LibraryPoem(context.Background(), "dct-jarir-1")
	require.NoError(t, err)
	assert.Equal(t, poetry.OriginSynthesized, synthesized.Origin)

	_, err = service.LibraryPoem(context.Background(), "lib-404")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
