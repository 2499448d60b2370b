package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pankitchen/pankitchen/internal/dbx"
)

const (
	accessKey  = "access_token"
	refreshKey = "refresh_token"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

// Access returns the stored access token, or "" when absent.
func (r *SQLiteRepository) Access(ctx context.Context) (string, error) {
	return get(ctx, r.db, accessKey)
}

// Refresh returns the stored refresh token, or "" when absent.
func (r *SQLiteRepository) Refresh(ctx context.Context) (string, error) {
	return get(ctx, r.db, refreshKey)
}

// Save upserts both tokens in a single transaction, so the pair is either
// fully replaced or untouched.
func (r *SQLiteRepository) Save(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, accessKey, access); err != nil {
			return err
		}
		return set(ctx, tx, refreshKey, refresh)
	})
}

// Clear removes both tokens. Clearing an already-empty store succeeds.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
