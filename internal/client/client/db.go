package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ddanshin/cipherdir/internal/client/migrations"
	"github.com/ddanshin/cipherdir/internal/client/repositories/users"
	"github.com/pressly/goose/v3"
)

type Repositories struct {
	Users users.Repository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the local cache database and brings its schema up to
// date. The DSN is a modernc.org/sqlite DSN, typically a file path.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		Users: users.NewSQLiteRepository(db),
	}, nil
}
