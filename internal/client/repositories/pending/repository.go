// Package pending is the local journal of uploads that need their gallery
// row re-committed.
package pending

import (
	"context"

	"github.com/dmitrijs2005/atelier/internal/client/models"
)

type Repository interface {
	// Add journals p, replacing an earlier entry for the same storage path.
	Add(ctx context.Context, p *models.PendingUpload) (*models.PendingUpload, error)
	List(ctx context.Context) ([]models.PendingUpload, error)
	// Get returns common.ErrorNotFound for an unknown id.
	Get(ctx context.Context, id int64) (*models.PendingUpload, error)
	Delete(ctx context.Context, id int64) error
}
