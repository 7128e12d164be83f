// Package children stores the children an owner files artworks under.
package children

import (
	"context"

	"github.com/dmitrijs2005/atelier/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, child *models.Child) (*models.Child, error)
	// Get returns common.ErrorNotFound for a missing or foreign child.
	Get(ctx context.Context, userID, id string) (*models.Child, error)
	// List orders by birth date, youngest first, unknown birth dates last.
	List(ctx context.Context, userID string) ([]models.Child, error)
	// Delete removes only the child row; artworks keep their child_id.
	Delete(ctx context.Context, userID, id string) error
}
