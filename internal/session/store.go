package session

import "context"

// Mutation is applied to a loaded state inside [Store.Update].
// Returning an error aborts the update without saving.
type Mutation func(state *State) error

// Store persists session state with an inactivity TTL.
type Store interface {
	// Load returns the state for id, or a fresh one when none is stored.
	Load(context context.Context, id string) (State, error)
	// Update applies fn to the current state and saves the result atomically.
	Update(context context.Context, id string, fn Mutation) (State, error)
}
