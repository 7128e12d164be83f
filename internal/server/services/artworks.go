package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/atelier/internal/agecalc"
	"github.com/dmitrijs2005/atelier/internal/common"
	"github.com/dmitrijs2005/atelier/internal/imagex"
	"github.com/dmitrijs2005/atelier/internal/logging"
	"github.com/dmitrijs2005/atelier/internal/server/blobstore"
	"github.com/dmitrijs2005/atelier/internal/server/models"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/repomanager"
)

// ArtworkMeta is what an owner attaches to an upload. BirthDate, when set,
// is used for the age label instead of the selected child's birth date.
type ArtworkMeta struct {
	ShotAtDate *time.Time
	ChildID    *string
	BirthDate  *time.Time
	Memo       *string
	Tags       []string
}

// PartialFailureError reports a blob that was stored while its row was not.
// Pending is the row that failed to insert; committing it again with the same
// StoragePath completes the upload.
type PartialFailureError struct {
	Pending *models.Artwork
	Err     error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%v: blob %s stored, row insert failed: %v", common.ErrPersistedPartialFailure, e.Pending.StoragePath, e.Err)
}

func (e *PartialFailureError) Unwrap() []error {
	return []error{common.ErrPersistedPartialFailure, e.Err}
}

// ArtworkService owns the two-step create and delete of an artwork: the blob
// in the blob store and its row in PostgreSQL. The two stores share no
// transaction, so each step is ordered to bound what a failure leaves behind.
type ArtworkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       blobstore.Store
	logger      logging.Logger
	maxPayload  int
	now         func() time.Time
}

// NewArtworkService returns an ArtworkService. maxPayload bounds accepted
// uploads in bytes; zero or less disables the check.
func NewArtworkService(db *sql.DB, m repomanager.RepositoryManager, store blobstore.Store, logger logging.Logger, maxPayload int) *ArtworkService {
	return &ArtworkService{
		db:          db,
		repomanager: m,
		store:       store,
		logger:      logger.With("module", "artworks"),
		maxPayload:  maxPayload,
		now:         time.Now,
	}
}

// Create stores payload for owner.
//
// The blob is written first under a fresh path prefixed by owner; if that
// fails the result matches common.ErrUploadRejected and nothing was stored.
// Only then is the row inserted; if that fails the result is a
// *PartialFailureError and the blob stays in place, unreferenced, until
// CommitPending succeeds for it. Neither step is cancelled by ctx once the
// blob write has started.
func (s *ArtworkService) Create(ctx context.Context, owner string, payload []byte, meta ArtworkMeta) (*models.Artwork, error) {
	if owner == "" {
		return nil, common.ErrorUnauthenticated
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", common.ErrorValidation)
	}
	if s.maxPayload > 0 && len(payload) > s.maxPayload {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds %d", common.ErrorValidation, len(payload), s.maxPayload)
	}

	row, err := s.buildRow(ctx, owner, blobstore.NewArtworkPath(owner, s.now()), meta)
	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)

	if err := s.store.Put(ctx, row.StoragePath, payload, imagex.ContentType); err != nil {
		s.logger.Error(ctx, "blob write failed", "path", row.StoragePath, "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrUploadRejected, err)
	}

	created, err := s.repomanager.Artworks(s.db).Create(ctx, row)
	if err != nil {
		s.logger.Error(ctx, "artwork row insert failed, blob orphaned", "path", row.StoragePath, "error", err)
		return nil, &PartialFailureError{Pending: row, Err: err}
	}

	s.logger.Info(ctx, "artwork stored", "id", created.ID, "path", created.StoragePath, "bytes", len(payload))
	return created, nil
}

// CommitPending retries the row insert of an upload whose blob is already
// stored at path. The age label is derived again from meta. A path outside
// owner's prefix or with no stored blob is common.ErrorNotFound, so a deleted
// artwork's path never gets a row again; a path that already has its row
// returns that row.
func (s *ArtworkService) CommitPending(ctx context.Context, owner, path string, meta ArtworkMeta) (*models.Artwork, error) {
	if owner == "" {
		return nil, common.ErrorUnauthenticated
	}
	if !blobstore.OwnsPath(owner, path) {
		return nil, common.ErrorNotFound
	}

	stored, err := s.store.Exists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error checking blob %s: %w", path, err)
	}
	if !stored {
		s.logger.Warn(ctx, "commit for missing blob refused", "path", path)
		return nil, common.ErrorNotFound
	}

	row, err := s.buildRow(ctx, owner, path, meta)
	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	repo := s.repomanager.Artworks(s.db)

	created, err := repo.Create(ctx, row)
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		return repo.GetByPath(ctx, owner, path)
	case err != nil:
		return nil, &PartialFailureError{Pending: row, Err: err}
	}

	s.logger.Info(ctx, "pending artwork committed", "id", created.ID, "path", path)
	return created, nil
}

// Delete removes an artwork of owner: blob first, then row. A missing or
// foreign id is common.ErrorNotFound. If the blob cannot be removed the
// result matches common.ErrDeletionBlocked and the artwork is untouched. If
// the row delete fails afterwards the row is left pointing at a missing
// blob, which readers show as unavailable.
func (s *ArtworkService) Delete(ctx context.Context, owner, id string) error {
	if owner == "" {
		return common.ErrorUnauthenticated
	}
	if !validID(id) {
		return common.ErrorNotFound
	}

	repo := s.repomanager.Artworks(s.db)

	a, err := repo.Get(ctx, owner, id)
	if err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)

	if err := s.store.Remove(ctx, a.StoragePath); err != nil {
		s.logger.Warn(ctx, "blob removal failed, artwork kept", "id", id, "path", a.StoragePath, "error", err)
		return fmt.Errorf("%w: %w", common.ErrDeletionBlocked, err)
	}

	if err := repo.Delete(ctx, owner, id); err != nil {
		s.logger.Error(ctx, "artwork row delete failed after blob removal", "id", id, "path", a.StoragePath, "error", err)
		return fmt.Errorf("error deleting artwork row %s: %w", id, err)
	}

	s.logger.Info(ctx, "artwork deleted", "id", id, "path", a.StoragePath)
	return nil
}

// buildRow assembles the row stored for path. A selected child that owner
// does not have is common.ErrorNotFound.
func (s *ArtworkService) buildRow(ctx context.Context, owner, path string, meta ArtworkMeta) (*models.Artwork, error) {
	row := &models.Artwork{
		UserID:      owner,
		StoragePath: path,
		Memo:        trimmedOrNil(meta.Memo),
		Tags:        normalizeTags(meta.Tags),
	}
	if meta.ShotAtDate != nil {
		d := agecalc.Date(*meta.ShotAtDate)
		row.ShotAtDate = &d
	}

	birth := meta.BirthDate
	if meta.ChildID != nil && *meta.ChildID != "" {
		if !validID(*meta.ChildID) {
			return nil, common.ErrorNotFound
		}
		child, err := s.repomanager.Children(s.db).Get(ctx, owner, *meta.ChildID)
		if err != nil {
			return nil, err
		}
		row.ChildID = &child.ID
		if birth == nil {
			birth = child.BirthDate
		}
	}

	if birth != nil && row.ShotAtDate != nil {
		age, err := agecalc.Compute(*birth, *row.ShotAtDate)
		switch {
		case errors.Is(err, common.ErrOutOfRange):
			s.logger.Warn(ctx, "capture date precedes birth date, age omitted",
				"birth", birth.Format(agecalc.DateLayout), "shot_at", row.ShotAtDate.Format(agecalc.DateLayout))
		case err != nil:
			return nil, err
		default:
			label := age.String()
			row.AgeAtCreation = &label
		}
	}

	return row, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// normalizeTags trims tags and drops empty and repeated ones, keeping order.
func normalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
