package uistate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage persists the state under the shared storage key so multiple
// agent seats of the same operator can keep one theme.
type RedisStorage struct {
	client *redis.Client
	key    string
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client, key: storageKey}
}

func (r *RedisStorage) Load(ctx context.Context) (PersistedState, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return PersistedState{}, nil
		}
		return PersistedState{}, fmt.Errorf("read state from redis: %w", err)
	}

	var state PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return PersistedState{}, fmt.Errorf("decode state from redis: %w", err)
	}
	return state, nil
}

func (r *RedisStorage) Save(ctx context.Context, state PersistedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write state to redis: %w", err)
	}
	return nil
}
