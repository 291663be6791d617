package repository

import (
	"context"
	"log"

	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// NewCredentialRepositoryFromConfig picks the Redis store when enabled, else
// memory. The returned func releases the backend.
func NewCredentialRepositoryFromConfig(ctx context.Context, cfg *config.Config) (repositories.CredentialRepository, func(), error) {
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisCredentialRepository(redisClient), func() { redisClient.Close() }, nil
	}

	store := cache.NewMemoryStore()
	return NewMemoryCredentialRepository(store), store.Close, nil
}
