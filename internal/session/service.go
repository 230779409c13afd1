package session

import (
	"context"
	"log/slog"

	"github.com/taibuivan/diwan/internal/platform/apperr"
	"github.com/taibuivan/diwan/internal/platform/ctxutil"
	"github.com/taibuivan/diwan/internal/poetry"
)

// PoemResolver looks up poems shown in the library.
type PoemResolver interface {
	LibraryPoem(ctx context.Context, id string) (poetry.Poem, error)
}

// # Service Layer

// Service applies reader actions to stored session state.
type Service struct {
	store Store
	poems PoemResolver
}

// NewService constructs a session [Service].
func NewService(store Store, poems PoemResolver) *Service {
	return &Service{store: store, poems: poems}
}

// State returns the reader's current state.
func (service *Service) State(ctx context.Context, id string) (State, error) {
	return service.store.Load(ctx, id)
}

/*
ToggleFavorite adds or removes a poem from the reader's favorites.

Returns:
  - State: Updated state
  - bool: Whether the poem is now a favorite
  - error: apperr.NotFound when the poem is unknown to the library
*/
func (service *Service) ToggleFavorite(ctx context.Context, id, poemID string) (State, bool, error) {
	if _, err := service.poems.LibraryPoem(ctx, poemID); err != nil {
		return State{}, false, err
	}

	var added bool
	state, err := service.store.Update(ctx, id, func(state *State) error {
		added = state.ToggleFavorite(poemID)
		return nil
	})
	return state, added, err
}

/*
Favorites resolves the reader's favorite ids into poems, in the order they were added.

Description: Ids that no longer resolve are skipped and logged.
*/
func (service *Service) Favorites(ctx context.Context, id string) ([]poetry.Poem, error) {
	state, err := service.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	poems := make([]poetry.Poem, 0, len(state.Favorites))
	for _, poemID := range state.Favorites {
		poem, err := service.poems.LibraryPoem(ctx, poemID)
		if err != nil {
			if appErr := apperr.As(err); appErr != nil && appErr.Code == "NOT_FOUND" {
				ctxutil.GetLogger(ctx).WarnContext(ctx, "session_favorite_unresolved",
					slog.String("poem_id", poemID),
				)
				continue
			}
			return nil, err
		}
		poems = append(poems, poem)
	}
	return poems, nil
}

// SetFilters validates and stores the reader's library filters.
func (service *Service) SetFilters(ctx context.Context, id string, filters Filters) (State, error) {
	if err := poetry.ValidateFilter(LibraryFilter(filters)); err != nil {
		return State{}, err
	}

	return service.store.Update(ctx, id, func(state *State) error {
		state.SetFilters(filters)
		return nil
	})
}

// SetPage stores the reader's current library page.
func (service *Service) SetPage(ctx context.Context, id string, page int) (State, error) {
	if page < 1 {
		return State{}, apperr.ValidationError("Invalid page", apperr.FieldError{
			Field:   "page",
			Message: "Must be at least 1",
		})
	}

	return service.store.Update(ctx, id, func(state *State) error {
		state.SetPage(page)
		return nil
	})
}

// ToggleLesson marks or unmarks a lesson as completed. The caller validates lessonID.
func (service *Service) ToggleLesson(ctx context.Context, id, lessonID string) (State, bool, error) {
	var completed bool
	state, err := service.store.Update(ctx, id, func(state *State) error {
		completed = state.ToggleLesson(lessonID)
		return nil
	})
	return state, completed, err
}

// LibraryFilter converts stored filters into the poetry library filter.
func LibraryFilter(filters Filters) poetry.LibraryFilter {
	return poetry.LibraryFilter{
		Query: filters.Query,
		Type:  poetry.PoemType(filters.Type),
		Era:   poetry.Era(filters.Era),
		Poet:  filters.Poet,
	}
}
