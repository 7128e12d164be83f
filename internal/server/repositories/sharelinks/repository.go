// Package sharelinks stores share tokens, active and retired.
package sharelinks

import (
	"context"

	"github.com/dmitrijs2005/atelier/internal/server/models"
)

type Repository interface {
	// Create inserts an active link and fills in CreatedAt.
	Create(ctx context.Context, link *models.ShareLink) (*models.ShareLink, error)
	// GetActive returns the newest active link of userID, or common.ErrorNotFound.
	GetActive(ctx context.Context, userID string) (*models.ShareLink, error)
	// FindActive resolves an active token. Unknown and inactive tokens are
	// both common.ErrorNotFound.
	FindActive(ctx context.Context, token string) (*models.ShareLink, error)
	// DeactivateAll retires every active link of userID and reports how many
	// rows changed.
	DeactivateAll(ctx context.Context, userID string) (int64, error)
	// List returns all links of userID, newest first.
	List(ctx context.Context, userID string) ([]models.ShareLink, error)
}
