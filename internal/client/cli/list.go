package cli

import (
	"context"
	"errors"

	"github.com/ddanshin/cipherdir/internal/client/services"
)

func (a *App) List(ctx context.Context) error {

	users, fieldErrs, err := a.userService.List(ctx)
	if err != nil {
		// A refresh superseded by a newer one changed nothing on screen.
		if errors.Is(err, services.ErrSuperseded) {
			return nil
		}
		return err
	}

	return renderUsers(users, fieldErrs)
}

func (a *App) Filter(ctx context.Context, role string) error {

	users, fieldErrs, err := a.userService.FilterByRole(ctx, role)
	if err != nil {
		if errors.Is(err, services.ErrSuperseded) {
			return nil
		}
		return err
	}

	return renderUsers(users, fieldErrs)
}
