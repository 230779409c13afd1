package poetry

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/taibuivan/diwan/internal/platform/apperr"
	"github.com/taibuivan/diwan/internal/platform/constants"
	"github.com/taibuivan/diwan/internal/platform/metrics"
	"github.com/taibuivan/diwan/pkg/slice"
)

// RemoteSource is the remote catalogue as seen by the [Service].
// Implementations never return errors; an empty slice means "nothing usable".
type RemoteSource interface {
	FetchPoets(ctx context.Context) []Poet
	FetchPoems(ctx context.Context, limit, offset int) []Poem
	FetchPoemsByPoet(ctx context.Context, poetID string) []Poem
}

// LibraryFilter narrows the library listing.
type LibraryFilter struct {
	// Query is matched as a substring against title, poet, content, theme and era.
	Query string
	// Type and Era match exactly when set.
	Type PoemType
	Era  Era
	// Poet is matched as a substring of the poet name.
	Poet string
}

// # Service Layer

// Service is the single entry point for poem and poet retrieval.
//
// # Fallback
//
// Remote results win when they are non-empty. Otherwise the registry and
// the synthesized corpus answer. The corpus is derived again on every call.
type Service struct {
	remote   RemoteSource
	registry *Registry
	synth    *Synthesizer
	library  CuratedRepository
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewService wires the service with its collaborators.
func NewService(remote RemoteSource, registry *Registry, synth *Synthesizer, library CuratedRepository, recorder *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		remote:   remote,
		registry: registry,
		synth:    synth,
		library:  library,
		metrics:  recorder,
		logger:   logger,
	}
}

// # Poets

// AllPoets returns the remote poets when any are available, else the registry.
func (service *Service) AllPoets(context context.Context) []Poet {
	if poets := service.remote.FetchPoets(context); len(poets) > 0 {
		return poets
	}

	service.fallback(context, "poets")
	return service.registry.Poets()
}

/*
PoetPoems lists poems for one poet.

Description: The remote catalogue is asked first. When it has nothing, the
registry poet with this id is synthesized.

Returns:
  - []Poem: Poems of the poet
  - error: apperr.NotFound when neither the remote nor the registry knows the poet
*/
func (service *Service) PoetPoems(context context.Context, poetID string) ([]Poem, error) {
	if poems := service.remote.FetchPoemsByPoet(context, poetID); len(poems) > 0 {
		return poems, nil
	}

	poet, ok := service.registry.Poet(poetID)
	if !ok {
		return nil, apperr.NotFound("Poet")
	}

	service.fallback(context, "poet_poems")
	return service.synth.Poems(poet), nil
}

// # Poems

/*
SearchPoems finds poems containing query.

Description: An empty (after trimming) query returns the head of the
synthesized corpus. Otherwise one page of remote poems is filtered; when
the remote yields no poems at all, the synthesized corpus is filtered
instead. Matching is a case-sensitive substring test over title, poet,
content, theme and era.
*/
func (service *Service) SearchPoems(context context.Context, query string) []Poem {
	if strings.TrimSpace(query) == "" {
		corpus := service.Corpus()
		return corpus[:min(constants.SearchDefaultLimit, len(corpus))]
	}

	if remote := service.remote.FetchPoems(context, constants.SearchRemoteLimit, 0); len(remote) > 0 {
		return slice.Filter(remote, matchesQuery(query))
	}

	service.fallback(context, "search")
	return slice.Filter(service.Corpus(), matchesQuery(query))
}

// PoemsByEra returns corpus poems whose era equals era.
func (service *Service) PoemsByEra(era Era) []Poem {
	return slice.Filter(service.Corpus(), func(poem Poem) bool {
		return poem.Era == era
	})
}

// PoemsByTheme returns corpus poems whose theme contains theme.
func (service *Service) PoemsByTheme(theme string) []Poem {
	return slice.Filter(service.Corpus(), func(poem Poem) bool {
		return strings.Contains(poem.Theme, theme)
	})
}

// PoemsByPoet returns corpus poems whose poet name equals name.
func (service *Service) PoemsByPoet(name string) []Poem {
	return slice.Filter(service.Corpus(), func(poem Poem) bool {
		return poem.Poet == name
	})
}

// RandomPoems returns min(count, corpus size) distinct poems in shuffled order.
func (service *Service) RandomPoems(count int) []Poem {
	if count <= 0 {
		return []Poem{}
	}

	corpus := service.Corpus()
	rand.Shuffle(len(corpus), func(i, j int) {
		corpus[i], corpus[j] = corpus[j], corpus[i]
	})
	return corpus[:min(count, len(corpus))]
}

// PoemByID looks id up in the synthesized corpus. A miss is not an error.
func (service *Service) PoemByID(id string) (Poem, bool) {
	for _, poem := range service.Corpus() {
		if poem.ID == id {
			return poem, true
		}
	}
	return Poem{}, false
}

// Corpus synthesizes poems for every registry poet.
func (service *Service) Corpus() []Poem {
	return service.synth.Corpus(service.registry.Poets())
}

// # Library

// Library lists curated poems followed by the synthesized corpus, filtered.
func (service *Service) Library(context context.Context, filter LibraryFilter) ([]Poem, error) {
	curated, err := service.library.List(context)
	if err != nil {
		return nil, err
	}

	all := append(curated, service.Corpus()...)
	return slice.Filter(all, filter.matches), nil
}

// LibraryPoem resolves curated ids first, then the synthesized corpus.
func (service *Service) LibraryPoem(context context.Context, id string) (Poem, error) {
	poem, err := service.library.Get(context, id)
	if err == nil {
		return poem, nil
	}
	if appErr := apperr.As(err); appErr == nil || appErr.Code != "NOT_FOUND" {
		return Poem{}, err
	}

	if poem, ok := service.PoemByID(id); ok {
		return poem, nil
	}
	return Poem{}, apperr.NotFound("Poem")
}

// # Matching

func matchesQuery(query string) func(Poem) bool {
	return func(poem Poem) bool {
		return strings.Contains(poem.Title, query) ||
			strings.Contains(poem.Poet, query) ||
			strings.Contains(poem.Content, query) ||
			strings.Contains(poem.Theme, query) ||
			strings.Contains(string(poem.Era), query)
	}
}

func (filter LibraryFilter) matches(poem Poem) bool {
	if query := strings.TrimSpace(filter.Query); query != "" && !matchesQuery(query)(poem) {
		return false
	}
	if filter.Type != "" && poem.Type != filter.Type {
		return false
	}
	if filter.Era != "" && poem.Era != filter.Era {
		return false
	}
	if poet := strings.TrimSpace(filter.Poet); poet != "" && !strings.Contains(poem.Poet, poet) {
		return false
	}
	return true
}

func (service *Service) fallback(context context.Context, operation string) {
	service.metrics.Fallback(operation)
	service.logger.InfoContext(context, "poetry_fallback_local",
		slog.String("operation", operation),
	)
}
