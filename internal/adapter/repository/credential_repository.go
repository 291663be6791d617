package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
)

// MemoryCredentialRepository keeps credentials in process memory. Values are
// lost on restart.
type MemoryCredentialRepository struct {
	store *cache.MemoryStore
}

// NewMemoryCredentialRepository creates a repository backed by a MemoryStore
func NewMemoryCredentialRepository(store *cache.MemoryStore) repositories.CredentialRepository {
	return &MemoryCredentialRepository{store: store}
}

func (r *MemoryCredentialRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	value, ok := r.store.Get(key)
	return value, ok, nil
}

func (r *MemoryCredentialRepository) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.Set(key, value, 0)
	return nil
}

func (r *MemoryCredentialRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.Delete(key)
	return nil
}

// RedisCredentialRepository persists credentials in Redis without expiry
type RedisCredentialRepository struct {
	client redis.Cmdable
}

// NewRedisCredentialRepository creates a repository backed by Redis
func NewRedisCredentialRepository(client redis.Cmdable) repositories.CredentialRepository {
	return &RedisCredentialRepository{client: client}
}

func (r *RedisCredentialRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read credential: %w", err)
	}
	return value, true, nil
}

func (r *RedisCredentialRepository) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

func (r *RedisCredentialRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
