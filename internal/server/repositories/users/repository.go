// Package users stores accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/atelier/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills in its ID and CreatedAt.
	// A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByEmail returns common.ErrorNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
