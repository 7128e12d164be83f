package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/atelier/internal/client/models"
	"github.com/dmitrijs2005/atelier/internal/dbx"
)

const (
	keyEmail        = "email"
	keyRefreshToken = "refresh_token"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM session`)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	defer rows.Close()

	var s models.Session
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		switch key {
		case keyEmail:
			s.Email = value
		case keyRefreshToken:
			s.RefreshToken = value
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session rows: %w", err)
	}

	if s.RefreshToken == "" {
		return nil, nil
	}
	return &s, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, s models.Session) error {
	for key, value := range map[string]string{keyEmail: s.Email, keyRefreshToken: s.RefreshToken} {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO session (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value)
		if err != nil {
			return fmt.Errorf("failed to save session[%s]: %w", key, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
