package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/diwan/internal/platform/constants"
)

// maxUpdateAttempts bounds optimistic retries when a concurrent writer wins the WATCH.
const maxUpdateAttempts = 3

// RedisStore keeps sessions as JSON values under a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store whose keys expire after ttl of inactivity.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

/*
Load retrieves the state for id.

Description: A missing or expired key is a fresh session, not an error.

Returns:
  - State: Stored or fresh state
  - error: Connectivity or decoding failures
*/
func (store *RedisStore) Load(ctx context.Context, id string) (State, error) {
	raw, err := store.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return New(id), nil
		}
		return State{}, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	return decodeState(id, raw)
}

/*
Update applies fn under WATCH so that concurrent requests from the same reader
never lose each other's changes.

Returns:
  - State: The saved state
  - error: fn's error, or connectivity failures after retries
*/
func (store *RedisStore) Update(ctx context.Context, id string, fn Mutation) (State, error) {
	sessionKey := key(id)
	var saved State

	transaction := func(tx *redis.Tx) error {
		state := New(id)

		raw, err := tx.Get(ctx, sessionKey).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return fmt.Errorf("redis_session_get_failed: %w", err)
		default:
			if state, err = decodeState(id, raw); err != nil {
				return err
			}
		}

		if err := fn(&state); err != nil {
			return err
		}
		state.UpdatedAt = time.Now().UTC()

		payload, err := encodeState(state)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, sessionKey, payload, store.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		saved = state
		return nil
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := store.client.Watch(ctx, transaction, sessionKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return saved, err
	}

	return State{}, fmt.Errorf("redis_session_update_conflict: %s", id)
}

func key(id string) string {
	return constants.RedisPrefixSession + id
}

func encodeState(state State) ([]byte, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("session: encode state: %w", err)
	}
	return payload, nil
}

// decodeState restores a stored state. The key is authoritative for the id,
// and nil lists are replaced by empty ones.
func decodeState(id string, raw []byte) (State, error) {
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return State{}, fmt.Errorf("session: decode state: %w", err)
	}

	state.ID = id
	if state.Favorites == nil {
		state.Favorites = []string{}
	}
	if state.CompletedLessons == nil {
		state.CompletedLessons = []string{}
	}
	state.Page = max(state.Page, 1)
	return state, nil
}
