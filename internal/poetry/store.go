package poetry

import "context"

// CuratedRepository serves the hand-picked library poems.
type CuratedRepository interface {
	// List returns curated poems in display order.
	List(context context.Context) ([]Poem, error)
	// Get returns one curated poem or an apperr NOT_FOUND error.
	Get(context context.Context, id string) (Poem, error)
}
