package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ddanshin/cipherdir/internal/common"
)

func (a *App) Login(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter username:", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.apiClient.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	a.userName = username
	fmt.Println("Logged in as", username)
	return nil
}
