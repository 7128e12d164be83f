// Package artworks stores the row half of each artwork. The binary half
// lives in the blob store under Artwork.StoragePath.
package artworks

import (
	"context"

	"github.com/dmitrijs2005/atelier/internal/server/models"
)

type Repository interface {
	// Create inserts the row and fills in ID and CreatedAt. A storage path
	// that is already recorded yields common.ErrorAlreadyExists.
	Create(ctx context.Context, a *models.Artwork) (*models.Artwork, error)
	// Get and GetByPath are scoped to userID; a missing or foreign row is
	// common.ErrorNotFound.
	Get(ctx context.Context, userID, id string) (*models.Artwork, error)
	GetByPath(ctx context.Context, userID, storagePath string) (*models.Artwork, error)
	// ListWithChildren returns the owner gallery, newest capture date first,
	// undated artworks last. A non-nil childID narrows it to that child.
	ListWithChildren(ctx context.Context, userID string, childID *string) ([]models.ArtworkWithChild, error)
	// ListShared returns the gallery behind an active share token, in the
	// owner gallery order. An unknown or inactive token yields no rows.
	ListShared(ctx context.Context, token string) ([]models.Artwork, error)
	Delete(ctx context.Context, userID, id string) error
}
