package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Add(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Enter name:", os.Stdout)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email:", os.Stdout)
	if err != nil {
		return err
	}

	role, err := GetSimpleText(a.reader, "Enter role:", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.userService.Create(ctx, name, email, role); err != nil {
		return err
	}

	fmt.Println("User created")
	return a.List(ctx)
}
