package repository

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

func TestMemoryCredentialRepository(t *testing.T) {
	store := cache.NewMemoryStore()
	defer store.Close()
	repo := NewMemoryCredentialRepository(store)
	ctx := context.Background()

	if _, ok, err := repo.Get(ctx, "key"); err != nil || ok {
		t.Fatalf("Get() on empty repo = %v, %v", ok, err)
	}

	if err := repo.Set(ctx, "key", "sk-one"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := repo.Set(ctx, "key", "sk-two"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	value, ok, err := repo.Get(ctx, "key")
	if err != nil || !ok || value != "sk-two" {
		t.Fatalf("Get() = %q, %v, %v", value, ok, err)
	}

	if err := repo.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "key"); ok {
		t.Fatal("value should be gone after Delete")
	}
	if err := repo.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() of missing key should succeed: %v", err)
	}
}

func TestMemoryCredentialRepository_CanceledContext(t *testing.T) {
	store := cache.NewMemoryStore()
	defer store.Close()
	repo := NewMemoryCredentialRepository(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Set(ctx, "key", "sk-x"); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestRedisCredentialRepository_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()
	repo := NewRedisCredentialRepository(client)
	ctx := context.Background()

	if _, _, err := repo.Get(ctx, "key"); err == nil {
		t.Fatal("expected Get to fail against unreachable redis")
	}
	if err := repo.Set(ctx, "key", "sk-x"); err == nil {
		t.Fatal("expected Set to fail against unreachable redis")
	}
	if err := repo.Delete(ctx, "key"); err == nil {
		t.Fatal("expected Delete to fail against unreachable redis")
	}
}

func TestNewCredentialRepositoryFromConfig_Memory(t *testing.T) {
	repo, closeFn, err := NewCredentialRepositoryFromConfig(context.Background(), &config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()

	if _, ok := repo.(*MemoryCredentialRepository); !ok {
		t.Fatalf("expected memory repository when redis is disabled, got %T", repo)
	}
}
