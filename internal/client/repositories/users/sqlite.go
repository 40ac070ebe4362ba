package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ddanshin/cipherdir/internal/client/models"
	"github.com/ddanshin/cipherdir/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, users []models.EncryptedUser) error {

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		if _, err := tx.ExecContext(ctx, `delete from users_cache`); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}

		query := `insert into users_cache (position, id, name, email, role) values (?, ?, ?, ?, ?)`
		for n, u := range users {
			if _, err := tx.ExecContext(ctx, query, n, u.ID, u.Name, u.Email, u.Role); err != nil {
				return fmt.Errorf("failed to insert cached user: %w", err)
			}
		}

		return nil
	})
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.EncryptedUser, error) {

	query := `select id, name, email, role from users_cache order by position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select cached users: %w", err)
	}

	var result []models.EncryptedUser

	defer rows.Close()
	for rows.Next() {
		var item = models.EncryptedUser{}
		err := rows.Scan(&item.ID, &item.Name, &item.Email, &item.Role)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
