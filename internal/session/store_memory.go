package session

import (
	"context"
	"sync"
	"time"
)

// sweepInterval bounds how often expired sessions are evicted from memory.
const sweepInterval = time.Minute

type memoryEntry struct {
	state     State
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Used when no Redis is configured.
type MemoryStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	entries   map[string]memoryEntry
	lastSweep time.Time
}

// NewMemoryStore creates an in-process store whose sessions expire after ttl of inactivity.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:       ttl,
		entries:   make(map[string]memoryEntry),
		lastSweep: time.Now(),
	}
}

func (store *MemoryStore) Load(_ context.Context, id string) (State, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	return store.current(id, time.Now()), nil
}

func (store *MemoryStore) Update(_ context.Context, id string, fn Mutation) (State, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := time.Now()
	state := store.current(id, now)
	if err := fn(&state); err != nil {
		return State{}, err
	}

	state.UpdatedAt = now.UTC()
	store.entries[id] = memoryEntry{state: state, expiresAt: now.Add(store.ttl)}
	store.sweep(now)

	return clone(state), nil
}

// current returns a private copy of the live state, or a fresh one. Caller holds mu.
func (store *MemoryStore) current(id string, now time.Time) State {
	entry, ok := store.entries[id]
	if !ok || !now.Before(entry.expiresAt) {
		delete(store.entries, id)
		return New(id)
	}
	return clone(entry.state)
}

// sweep evicts expired sessions at most once per interval. Caller holds mu.
func (store *MemoryStore) sweep(now time.Time) {
	if now.Sub(store.lastSweep) < sweepInterval {
		return
	}
	store.lastSweep = now

	for id, entry := range store.entries {
		if !now.Before(entry.expiresAt) {
			delete(store.entries, id)
		}
	}
}

func clone(state State) State {
	state.Favorites = append([]string{}, state.Favorites...)
	state.CompletedLessons = append([]string{}, state.CompletedLessons...)
	return state
}
