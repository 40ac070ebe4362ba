package users

import (
	"context"

	"github.com/ddanshin/cipherdir/internal/client/models"
)

// Repository caches the last fetched collection of encrypted user records
// so listings keep working while the directory service is unreachable.
// Values are stored exactly as received (ciphertext); plaintext never
// touches the cache.
type Repository interface {
	// ReplaceAll atomically swaps the cached collection for the given one,
	// preserving element order.
	ReplaceAll(ctx context.Context, users []models.EncryptedUser) error

	// GetAll returns the cached collection in its original order.
	GetAll(ctx context.Context) ([]models.EncryptedUser, error)
}
