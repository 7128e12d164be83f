// Package session persists the logged-in identity between client runs.
package session

import (
	"context"

	"github.com/dmitrijs2005/atelier/internal/client/models"
)

type Repository interface {
	// Load returns (nil, nil) when no session is stored.
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s models.Session) error
	Clear(ctx context.Context) error
}
