package cli

import (
	"context"
	"fmt"
)

func (a *App) Delete(ctx context.Context, id string) error {

	if err := a.userService.DeleteByID(ctx, id); err != nil {
		return err
	}

	fmt.Println("User deleted:", id)
	return a.List(ctx)
}
