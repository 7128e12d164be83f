package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/atelier/internal/common"
	"github.com/dmitrijs2005/atelier/internal/logging"
	"github.com/dmitrijs2005/atelier/internal/server/metrics"
	"github.com/dmitrijs2005/atelier/internal/server/models"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/repomanager"
)

// ShareTokenBytes is the entropy of a share token before encoding.
const ShareTokenBytes = 32

// ShareService issues, rotates and revokes the link that opens an owner's
// gallery to anonymous readers.
//
// At most one link per owner is active. Rotate keeps that true with two
// separate writes, deactivate-all then insert, so two rotations racing for
// the same owner can leave zero or two links active until the next rotation.
type ShareService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	metrics     *metrics.Metrics
}

func NewShareService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger, mt *metrics.Metrics) *ShareService {
	return &ShareService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "sharelinks"),
		metrics:     mt,
	}
}

// GetActive returns owner's active link, or common.ErrorNotFound.
func (s *ShareService) GetActive(ctx context.Context, owner string) (*models.ShareLink, error) {
	if owner == "" {
		return nil, common.ErrorUnauthenticated
	}
	return s.repomanager.ShareLinks(s.db).GetActive(ctx, owner)
}

// Rotate retires every active link of owner and issues a new one. An empty
// label becomes common.DefaultShareLabel.
func (s *ShareService) Rotate(ctx context.Context, owner, label string) (*models.ShareLink, error) {
	if owner == "" {
		return nil, common.ErrorUnauthenticated
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = common.DefaultShareLabel
	}

	token, err := common.MakeRandToken(ShareTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("error generating share token: %w", err)
	}

	repo := s.repomanager.ShareLinks(s.db)

	retired, err := repo.DeactivateAll(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("error deactivating share links: %w", err)
	}

	link, err := repo.Create(ctx, &models.ShareLink{
		Token:    token,
		UserID:   owner,
		Label:    &label,
		IsActive: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating share link: %w", err)
	}

	s.metrics.ShareRotated()
	s.logger.Info(ctx, "share link rotated", "owner", owner, "retired", retired)
	return link, nil
}

// Revoke retires every active link of owner without issuing a new one and
// reports how many were retired.
func (s *ShareService) Revoke(ctx context.Context, owner string) (int64, error) {
	if owner == "" {
		return 0, common.ErrorUnauthenticated
	}
	n, err := s.repomanager.ShareLinks(s.db).DeactivateAll(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("error deactivating share links: %w", err)
	}
	s.logger.Info(ctx, "share links revoked", "owner", owner, "retired", n)
	return n, nil
}

// History lists every link owner ever had, newest first.
func (s *ShareService) History(ctx context.Context, owner string) ([]models.ShareLink, error) {
	if owner == "" {
		return nil, common.ErrorUnauthenticated
	}
	return s.repomanager.ShareLinks(s.db).List(ctx, owner)
}

// Resolve returns the active link behind token. Malformed, unknown and
// retired tokens are all common.ErrorNotFound.
func (s *ShareService) Resolve(ctx context.Context, token string) (*models.ShareLink, error) {
	if !wellFormedToken(token) {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.ShareLinks(s.db).FindActive(ctx, token)
}

func wellFormedToken(token string) bool {
	if len(token) != base64.RawURLEncoding.EncodedLen(ShareTokenBytes) {
		return false
	}
	_, err := base64.RawURLEncoding.DecodeString(token)
	return err == nil
}
