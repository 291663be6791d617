package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// StorageKey is the fixed key the OpenAI credential is stored under
const StorageKey = "meeting-notes:openai_api_key"

const keyPrefix = "sk-"

// Status describes the stored credential without revealing it
type Status struct {
	Configured bool
	Masked     string
}

// Service manages the single stored OpenAI API key
type Service struct {
	repo          repositories.CredentialRepository
	requirePrefix bool
	logger        *zap.Logger
}

// NewService creates a credential service
func NewService(repo repositories.CredentialRepository, cfg *config.CredentialConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{repo: repo, logger: logger}
	if cfg != nil {
		s.requirePrefix = cfg.RequirePrefix
	}
	return s
}

// Load returns the stored key or ErrCredentialNotFound
func (s *Service) Load(ctx context.Context) (string, error) {
	value, ok, err := s.repo.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Error("❌ Failed to load API key", zap.Error(err))
		return "", fmt.Errorf("%w: %v", usecaseErrors.ErrCredentialStoreDown, err)
	}
	if !ok || value == "" {
		return "", usecaseErrors.ErrCredentialNotFound
	}
	return value, nil
}

// Save stores the key. A key without the sk- prefix is saved with a warning
// unless the prefix is required.
func (s *Service) Save(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", usecaseErrors.ErrAPIKeyRequired
	}

	var warning string
	if !strings.HasPrefix(key, keyPrefix) {
		if s.requirePrefix {
			return "", usecaseErrors.ErrAPIKeyFormat
		}
		warning = "API key should start with 'sk-'"
	}

	if err := s.repo.Set(ctx, StorageKey, key); err != nil {
		s.logger.Error("❌ Failed to save API key", zap.Error(err))
		return "", fmt.Errorf("%w: %v", usecaseErrors.ErrCredentialStoreDown, err)
	}

	s.logger.Info("🔑 API key saved", zap.String("key", Mask(key)))
	return warning, nil
}

// Clear removes the stored key
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, StorageKey); err != nil {
		s.logger.Error("❌ Failed to clear API key", zap.Error(err))
		return fmt.Errorf("%w: %v", usecaseErrors.ErrCredentialStoreDown, err)
	}
	s.logger.Info("🗑️ API key cleared")
	return nil
}

// Resolve picks the key for one summarization call: the explicit key when
// given, otherwise the stored one.
func (s *Service) Resolve(ctx context.Context, explicit string) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}

	key, err := s.Load(ctx)
	if errors.Is(err, usecaseErrors.ErrCredentialNotFound) {
		return "", usecaseErrors.ErrAPIKeyRequired
	}
	return key, err
}

// Status reports whether a key is stored
func (s *Service) Status(ctx context.Context) (*Status, error) {
	key, err := s.Load(ctx)
	if errors.Is(err, usecaseErrors.ErrCredentialNotFound) {
		return &Status{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &Status{Configured: true, Masked: Mask(key)}, nil
}

// Mask hides all but the prefix and last four characters of a key
func Mask(key string) string {
	if len(key) <= len(keyPrefix)+4 {
		return strings.Repeat("*", len(key))
	}
	prefix := ""
	if strings.HasPrefix(key, keyPrefix) {
		prefix = keyPrefix
	}
	return prefix + "…" + key[len(key)-4:]
}

// SeedIfEmpty stores key when nothing is stored yet. It reports whether the
// key was written.
func (s *Service) SeedIfEmpty(ctx context.Context, key string) (bool, error) {
	if strings.TrimSpace(key) == "" {
		return false, nil
	}

	_, err := s.Load(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, usecaseErrors.ErrCredentialNotFound) {
		return false, err
	}

	if _, err := s.Save(ctx, key); err != nil {
		return false, err
	}
	return true, nil
}
