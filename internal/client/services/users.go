// Package services wires the transport client, the local cache, and the
// decryption pipeline into the operations the CLI exposes.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ddanshin/cipherdir/internal/client/client"
	"github.com/ddanshin/cipherdir/internal/client/keyring"
	"github.com/ddanshin/cipherdir/internal/client/models"
	"github.com/ddanshin/cipherdir/internal/client/repositories/users"
	"github.com/ddanshin/cipherdir/internal/logging"
)

// ErrSuperseded reports that a refresh completed after a newer one had
// already committed; its result was discarded and the visible record set is
// unchanged.
var ErrSuperseded = errors.New("superseded by a newer request")

type UserService interface {
	// List fetches all records, refreshes the encrypted cache, decrypts, and
	// commits the result to the view. The returned field errors identify any
	// fields that could not be decrypted (their values carry the empty-string
	// sentinel).
	List(ctx context.Context) ([]models.PlaintextUser, []models.FieldError, error)

	// FilterByRole is List restricted server-side to one role. Filter results
	// do not touch the cache.
	FilterByRole(ctx context.Context, role string) ([]models.PlaintextUser, []models.FieldError, error)

	Create(ctx context.Context, name, email, role string) error
	DeleteByID(ctx context.Context, id string) error

	// Visible returns the current committed record set.
	Visible() ([]models.PlaintextUser, []models.FieldError)
}

type userService struct {
	client   client.Client
	userRepo users.Repository
	keys     *keyring.Keyring
	view     *ResultView
	logger   logging.Logger
}

func NewUserService(c client.Client, repo users.Repository, keys *keyring.Keyring, logger logging.Logger) UserService {
	return &userService{
		client:   c,
		userRepo: repo,
		keys:     keys,
		view:     NewResultView(),
		logger:   logger,
	}
}

func (s *userService) List(ctx context.Context) ([]models.PlaintextUser, []models.FieldError, error) {
	return s.refresh(ctx, s.fetchAll)
}

func (s *userService) FilterByRole(ctx context.Context, role string) ([]models.PlaintextUser, []models.FieldError, error) {
	return s.refresh(ctx, func(ctx context.Context) ([]models.EncryptedUser, error) {
		return s.client.FilterUsers(ctx, role)
	})
}

// fetchAll lists from the server and mirrors the encrypted collection into
// the cache. If the server is unreachable it falls back to the cached
// collection instead of failing the refresh.
func (s *userService) fetchAll(ctx context.Context) ([]models.EncryptedUser, error) {

	records, err := s.client.ListUsers(ctx)
	if err == nil {
		if cacheErr := s.userRepo.ReplaceAll(ctx, records); cacheErr != nil {
			s.logger.Warn(ctx, "failed to refresh local cache", "error", cacheErr)
		}
		return records, nil
	}

	if !errors.Is(err, client.ErrUnavailable) {
		return nil, err
	}

	cached, cacheErr := s.userRepo.GetAll(ctx)
	if cacheErr != nil {
		return nil, errors.Join(err, fmt.Errorf("%w: %v", client.ErrLocalDataNotAvailable, cacheErr))
	}

	s.logger.Warn(ctx, "server unreachable, listing cached records", "error", err)
	return cached, nil
}

func (s *userService) refresh(ctx context.Context, fetch func(context.Context) ([]models.EncryptedUser, error)) ([]models.PlaintextUser, []models.FieldError, error) {

	key, err := s.keys.Key()
	if err != nil {
		return nil, nil, err
	}

	ticket, rctx := s.view.Begin(ctx)
	defer s.view.End(ticket)

	records, err := fetch(rctx)
	if err != nil {
		return nil, nil, refreshErr(ctx, rctx, err, "fetching records")
	}

	decrypted, fieldErrs, err := decryptUsers(rctx, key, records)
	if err != nil {
		return nil, nil, refreshErr(ctx, rctx, err, "decrypting records")
	}

	for _, fe := range fieldErrs {
		s.logger.Warn(ctx, "field decryption failed", "record", fe.Index, "field", fe.Field, "error", fe.Err)
	}

	if !s.view.Commit(ticket, decrypted, fieldErrs) {
		return nil, nil, ErrSuperseded
	}

	return decrypted, fieldErrs, nil
}

// refreshErr tells a superseded refresh apart from a genuine failure: when
// the per-refresh context was cancelled but the caller's was not, a newer
// refresh abandoned this one.
func refreshErr(ctx, rctx context.Context, err error, msg string) error {
	if rctx.Err() != nil && ctx.Err() == nil {
		return ErrSuperseded
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (s *userService) Create(ctx context.Context, name, email, role string) error {
	if err := s.client.CreateUser(ctx, name, email, role); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (s *userService) DeleteByID(ctx context.Context, id string) error {
	if err := s.client.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

func (s *userService) Visible() ([]models.PlaintextUser, []models.FieldError) {
	return s.view.Snapshot()
}
