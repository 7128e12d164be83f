// Package capability hands out signed, time-limited read URLs for private
// artwork blobs. Nothing is cached: every gallery render asks again.
package capability

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/atelier/internal/common"
	"github.com/dmitrijs2005/atelier/internal/logging"
	"github.com/dmitrijs2005/atelier/internal/server/metrics"
)

// TTL of every URL issued, for owners and guests alike.
const TTL = common.SignedURLTTLSeconds * time.Second

// Signer is the blob store primitive the issuer delegates to.
type Signer interface {
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}

// Capability is the outcome for one path of a batch. URL is set only when
// Available; Err is set only for failures other than a missing blob.
type Capability struct {
	Path      string
	URL       string
	Available bool
	Err       error
}

type Issuer struct {
	signer  Signer
	logger  logging.Logger
	metrics *metrics.Metrics
	limit   int
}

// NewIssuer returns an Issuer over s. limit caps concurrent signing calls
// within one batch; zero or less means one goroutine per path.
func NewIssuer(s Signer, logger logging.Logger, m *metrics.Metrics, limit int) *Issuer {
	return &Issuer{
		signer:  s,
		logger:  logger.With("module", "capability"),
		metrics: m,
		limit:   limit,
	}
}

// IssueReadURL signs path for TTL. A blob that no longer exists yields
// common.ErrUnavailable.
func (i *Issuer) IssueReadURL(ctx context.Context, path string) (string, error) {
	u, err := i.signer.SignedURL(ctx, path, TTL)
	switch {
	case err == nil:
		i.metrics.CapabilityResult(metrics.CapabilityIssued)
		return u, nil
	case errors.Is(err, common.ErrUnavailable):
		i.metrics.CapabilityResult(metrics.CapabilityUnavailable)
		i.logger.Warn(ctx, "blob missing, rendering placeholder", "path", path)
		return "", common.ErrUnavailable
	default:
		i.metrics.CapabilityResult(metrics.CapabilityFailed)
		i.logger.Error(ctx, "capability request failed", "path", path, "error", err)
		return "", err
	}
}

// IssueAll signs every path concurrently and waits for all of them. One
// failure never affects the others: the result has one entry per path, in
// input order.
func (i *Issuer) IssueAll(ctx context.Context, paths []string) []Capability {
	out := make([]Capability, len(paths))

	var g errgroup.Group
	if i.limit > 0 {
		g.SetLimit(i.limit)
	}

	for idx, p := range paths {
		g.Go(func() error {
			u, err := i.IssueReadURL(ctx, p)
			c := Capability{Path: p}
			switch {
			case err == nil:
				c.URL, c.Available = u, true
			case !errors.Is(err, common.ErrUnavailable):
				c.Err = err
			}
			out[idx] = c
			return nil
		})
	}
	_ = g.Wait()

	return out
}
