package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/atelier/internal/agecalc"
	"github.com/dmitrijs2005/atelier/internal/common"
	"github.com/dmitrijs2005/atelier/internal/server/models"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/repomanager"
)

// ChildService manages the children an owner files artworks under.
type ChildService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewChildService(db *sql.DB, m repomanager.RepositoryManager) *ChildService {
	return &ChildService{db: db, repomanager: m}
}

// Create stores a child for owner. Name is required; an empty color falls
// back to models.DefaultChildColor.
func (s *ChildService) Create(ctx context.Context, owner, name string, birthDate *time.Time, color string) (*models.Child, error) {
	if owner == "" {
		return nil, common.ErrorUnauthenticated
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	color = strings.TrimSpace(color)
	if color == "" {
		color = models.DefaultChildColor
	}
	if birthDate != nil {
		d := agecalc.Date(*birthDate)
		birthDate = &d
	}

	c, err := s.repomanager.Children(s.db).Create(ctx, &models.Child{
		UserID:    owner,
		Name:      name,
		BirthDate: birthDate,
		Color:     color,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating child: %w", err)
	}
	return c, nil
}

// List returns owner's children, youngest first.
func (s *ChildService) List(ctx context.Context, owner string) ([]models.Child, error) {
	if owner == "" {
		return nil, common.ErrorUnauthenticated
	}
	return s.repomanager.Children(s.db).List(ctx, owner)
}

// Delete removes one child. Artworks filed under it are left alone and read
// back with an unknown child.
func (s *ChildService) Delete(ctx context.Context, owner, id string) error {
	if owner == "" {
		return common.ErrorUnauthenticated
	}
	if !validID(id) {
		return common.ErrorNotFound
	}
	return s.repomanager.Children(s.db).Delete(ctx, owner, id)
}

// validID reports whether id can name a row at all. Anything else is
// answered as not found without asking the database.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
