package children

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

func (r *PostgresRepository) Create(ctx context.Context, child *models.Child) (*models.Child, error) {
	query := `
		INSERT INTO children (user_id, name, birth_date, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, child.UserID, child.Name, child.BirthDate, child.Color).
		Scan(&child.ID, &child.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return child, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Child, error) {
	query := `
		SELECT id, user_id, name, birth_date, color, created_at
		FROM children
		WHERE id = $1 AND user_id = $2
	`
	c := &models.Child{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&c.ID, &c.UserID, &c.Name, &c.BirthDate, &c.Color, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Child, error) {
	query := `
		SELECT id, user_id, name, birth_date, color, created_at
		FROM children
		WHERE user_id = $1
		ORDER BY birth_date DESC NULLS LAST, created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Child, 0)
	for rows.Next() {
		var c models.Child
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.BirthDate, &c.Color, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM children WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if err := dbx.RequireAffected(res); err != nil {
		if errors.Is(err, dbx.ErrNoRowsAffected) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
