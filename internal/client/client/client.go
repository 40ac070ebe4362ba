package client

import (
	"context"

	"github.com/ddanshin/cipherdir/internal/client/models"
)

// Client is the transport surface to the directory service. All record
// values cross it in encrypted form; decryption is the caller's concern.
type Client interface {
	Close() error
	Login(ctx context.Context, username string, password []byte) error
	Ping(ctx context.Context) error
	ListUsers(ctx context.Context) ([]models.EncryptedUser, error)
	FilterUsers(ctx context.Context, role string) ([]models.EncryptedUser, error)
	CreateUser(ctx context.Context, name, email, role string) error
	DeleteUser(ctx context.Context, id string) error
}
