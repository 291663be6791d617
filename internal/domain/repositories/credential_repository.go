package repositories

import (
	"context"
)

// CredentialRepository stores a single secret value per key
type CredentialRepository interface {
	// Get returns the stored value and whether one exists
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores or replaces the value
	Set(ctx context.Context, key, value string) error

	// Delete removes the value; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
