package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/atelier/internal/common"
	"github.com/dmitrijs2005/atelier/internal/server/capability"
	"github.com/dmitrijs2005/atelier/internal/server/models"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/repomanager"
)

// CapabilityIssuer signs read URLs for a batch of blob paths.
type CapabilityIssuer interface {
	IssueAll(ctx context.Context, paths []string) []capability.Capability
}

// GalleryItem is one artwork of the owner gallery. ChildKnown is false when
// the artwork names a child that no longer exists. URL is empty when the
// blob is not Available.
type GalleryItem struct {
	models.Artwork
	ChildName  string
	ChildColor string
	ChildKnown bool
	URL        string
	Available  bool
}

// SharedItem is one artwork as a guest sees it: no owner and no child.
type SharedItem struct {
	ID            string
	URL           string
	Available     bool
	ShotAtDate    *time.Time
	AgeAtCreation *string
	Memo          *string
	Tags          []string
	CreatedAt     time.Time
}

// GalleryService composes artwork rows with fresh capability URLs for the
// owner and the guest read paths.
type GalleryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	issuer      CapabilityIssuer
	shares      *ShareService
}

func NewGalleryService(db *sql.DB, m repomanager.RepositoryManager, issuer CapabilityIssuer, shares *ShareService) *GalleryService {
	return &GalleryService{db: db, repomanager: m, issuer: issuer, shares: shares}
}

// List returns owner's gallery, newest capture date first. A non-nil
// childID narrows it to that child; an id owner does not have simply
// matches nothing.
func (s *GalleryService) List(ctx context.Context, owner string, childID *string) ([]GalleryItem, error) {
	if owner == "" {
		return nil, common.ErrorUnauthenticated
	}
	if childID != nil && !validID(*childID) {
		return nil, nil
	}

	rows, err := s.repomanager.Artworks(s.db).ListWithChildren(ctx, owner, childID)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(rows))
	for i, r := range rows {
		paths[i] = r.StoragePath
	}
	caps := s.issuer.IssueAll(ctx, paths)

	items := make([]GalleryItem, len(rows))
	for i, r := range rows {
		item := GalleryItem{
			Artwork:   r.Artwork,
			URL:       caps[i].URL,
			Available: caps[i].Available,
		}
		if r.ChildName != nil {
			item.ChildKnown = true
			item.ChildName = *r.ChildName
			if r.ChildColor != nil {
				item.ChildColor = *r.ChildColor
			}
		}
		items[i] = item
	}
	return items, nil
}

// ListShared returns the gallery behind an active share token in the owner
// gallery order. Any token that is not active, for whatever reason, is
// common.ErrorNotFound.
func (s *GalleryService) ListShared(ctx context.Context, token string) ([]SharedItem, error) {
	if _, err := s.shares.Resolve(ctx, token); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}

	rows, err := s.repomanager.Artworks(s.db).ListShared(ctx, token)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(rows))
	for i, r := range rows {
		paths[i] = r.StoragePath
	}
	caps := s.issuer.IssueAll(ctx, paths)

	items := make([]SharedItem, len(rows))
	for i, r := range rows {
		items[i] = SharedItem{
			ID:            r.ID,
			URL:           caps[i].URL,
			Available:     caps[i].Available,
			ShotAtDate:    r.ShotAtDate,
			AgeAtCreation: r.AgeAtCreation,
			Memo:          r.Memo,
			Tags:          r.Tags,
			CreatedAt:     r.CreatedAt,
		}
	}
	return items, nil
}
