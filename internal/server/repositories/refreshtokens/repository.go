// Package refreshtokens stores the server side of rotating refresh tokens.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/atelier/internal/server/models"
)

// Repository defines operations for issuing, retrieving and revoking refresh tokens.
type Repository interface {
	// Create stores token for userID, valid until expiresAt.
	Create(ctx context.Context, userID string, token string, expiresAt time.Time) error

	// Find returns common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a token. Deleting a missing token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes every token of userID that expired before now.
	DeleteExpired(ctx context.Context, userID string, now time.Time) error
}
