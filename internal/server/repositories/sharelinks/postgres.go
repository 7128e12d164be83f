package sharelinks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/atelier/internal/common"
	"github.com/dmitrijs2005/atelier/internal/dbx"
	"github.com/dmitrijs2005/atelier/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, link *models.ShareLink) (*models.ShareLink, error) {
	query := `
		INSERT INTO share_links (token, user_id, label, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING created_at
	`
	if err := r.db.QueryRowContext(ctx, query, link.Token, link.UserID, link.Label).Scan(&link.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	link.IsActive = true
	return link, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg string) (*models.ShareLink, error) {
	l := &models.ShareLink{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&l.Token, &l.UserID, &l.Label, &l.IsActive, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) GetActive(ctx context.Context, userID string) (*models.ShareLink, error) {
	query := `
		SELECT token, user_id, label, is_active, created_at
		FROM share_links
		WHERE user_id = $1 AND is_active
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.getOne(ctx, query, userID)
}

func (r *PostgresRepository) FindActive(ctx context.Context, token string) (*models.ShareLink, error) {
	query := `
		SELECT token, user_id, label, is_active, created_at
		FROM share_links
		WHERE token = $1 AND is_active
	`
	return r.getOne(ctx, query, token)
}

func (r *PostgresRepository) DeactivateAll(ctx context.Context, userID string) (int64, error) {
	query := `UPDATE share_links SET is_active = FALSE WHERE user_id = $1 AND is_active`

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.ShareLink, error) {
	query := `
		SELECT token, user_id, label, is_active, created_at
		FROM share_links
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.ShareLink, 0)
	for rows.Next() {
		var l models.ShareLink
		if err := rows.Scan(&l.Token, &l.UserID, &l.Label, &l.IsActive, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}
