package pending

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/atelier/internal/client/models"
	"github.com/dmitrijs2005/atelier/internal/common"
	"github.com/dmitrijs2005/atelier/internal/dbx"
)

type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

const columns = `id, storage_path, shot_at_date, child_id, birth_date, memo, tags, reason, created_at`

func (r *SQLiteRepository) Add(ctx context.Context, p *models.PendingUpload) (*models.PendingUpload, error) {
	tags, err := json.Marshal(nonNil(p.Tags))
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}
	created := r.now().UTC().Truncate(time.Second)

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO pending_uploads (storage_path, shot_at_date, child_id, birth_date, memo, tags, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(storage_path) DO UPDATE SET reason = excluded.reason
		RETURNING id, created_at
	`, p.StoragePath, p.ShotAtDate, p.ChildID, p.BirthDate, p.Memo, string(tags), p.Reason, created.Unix()).
		Scan(&p.ID, (*unixTime)(&p.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to journal pending upload: %w", err)
	}
	return p, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.PendingUpload, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM pending_uploads ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending uploads: %w", err)
	}
	defer rows.Close()

	result := make([]models.PendingUpload, 0)
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending uploads: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*models.PendingUpload, error) {
	p, err := scan(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM pending_uploads WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pending_uploads WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete pending upload %d: %w", id, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*models.PendingUpload, error) {
	var (
		p    models.PendingUpload
		tags string
	)
	err := s.Scan(&p.ID, &p.StoragePath, &p.ShotAtDate, &p.ChildID, &p.BirthDate, &p.Memo, &tags, &p.Reason, (*unixTime)(&p.CreatedAt))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan pending upload: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags of pending upload %d: %w", p.ID, err)
	}
	return &p, nil
}

// unixTime scans an INTEGER seconds column into a time.Time.
type unixTime time.Time

func (u *unixTime) Scan(src any) error {
	v, ok := src.(int64)
	if !ok {
		return fmt.Errorf("unexpected created_at type %T", src)
	}
	*u = unixTime(time.Unix(v, 0).UTC())
	return nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
