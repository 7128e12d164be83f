package artworks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dmitrijs2005/atelier/internal/common"
	"github.com/dmitrijs2005/atelier/internal/dbx"
	"github.com/dmitrijs2005/atelier/internal/server/models"
)

const pgUniqueViolation = "23505"

const columns = `a.id, a.user_id, a.storage_path, a.shot_at_date, a.age_at_creation, a.child_id, a.memo, a.tags, a.created_at`

// galleryOrder is shared by the owner and guest listings so both return the
// same sequence.
const galleryOrder = `ORDER BY a.shot_at_date DESC NULLS LAST, a.created_at DESC`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// scanTarget returns the destinations for columns. tags go through pgtype
// since database/sql has no native text[] support.
func scanTarget(m *pgtype.Map, a *models.Artwork) []any {
	return []any{&a.ID, &a.UserID, &a.StoragePath, &a.ShotAtDate, &a.AgeAtCreation,
		&a.ChildID, &a.Memo, m.SQLScanner(&a.Tags), &a.CreatedAt}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Artwork) (*models.Artwork, error) {
	query := `
		INSERT INTO artworks (user_id, storage_path, shot_at_date, age_at_creation, child_id, memo, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		a.UserID, a.StoragePath, a.ShotAtDate, a.AgeAtCreation, a.ChildID, a.Memo, a.Tags).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.Artwork, error) {
	a := &models.Artwork{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(scanTarget(pgtype.NewMap(), a)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Artwork, error) {
	query := `SELECT ` + columns + ` FROM artworks a WHERE a.id = $1 AND a.user_id = $2`
	return r.getOne(ctx, query, id, userID)
}

func (r *PostgresRepository) GetByPath(ctx context.Context, userID, storagePath string) (*models.Artwork, error) {
	query := `SELECT ` + columns + ` FROM artworks a WHERE a.storage_path = $1 AND a.user_id = $2`
	return r.getOne(ctx, query, storagePath, userID)
}

func (r *PostgresRepository) ListWithChildren(ctx context.Context, userID string, childID *string) ([]models.ArtworkWithChild, error) {
	query := `
		SELECT ` + columns + `, c.name, c.color
		FROM artworks a
		LEFT JOIN children c ON c.id = a.child_id AND c.user_id = a.user_id
		WHERE a.user_id = $1
		  AND ($2::uuid IS NULL OR a.child_id = $2::uuid)
		` + galleryOrder

	rows, err := r.db.QueryContext(ctx, query, userID, childID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	m := pgtype.NewMap()
	result := make([]models.ArtworkWithChild, 0)
	for rows.Next() {
		var item models.ArtworkWithChild
		dest := append(scanTarget(m, &item.Artwork), &item.ChildName, &item.ChildColor)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) ListShared(ctx context.Context, token string) ([]models.Artwork, error) {
	query := `SELECT ` + columns + ` FROM get_shared_artworks($1) a ` + galleryOrder

	rows, err := r.db.QueryContext(ctx, query, token)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	m := pgtype.NewMap()
	result := make([]models.Artwork, 0)
	for rows.Next() {
		var a models.Artwork
		if err := rows.Scan(scanTarget(m, &a)...); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM artworks WHERE id = $1 AND user_id = $2`

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
