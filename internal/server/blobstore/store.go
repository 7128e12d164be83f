// Package blobstore holds artwork binaries in a single private bucket and
// hands out time-limited read URLs for them.
package blobstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is the blob collaborator used by the artwork services.
type Store interface {
	// Put writes data under path, replacing nothing: paths are never reused.
	Put(ctx context.Context, path string, data []byte, contentType string) error
	// Remove deletes the object at path. Removing a missing object succeeds.
	Remove(ctx context.Context, path string) error
	// Exists reports whether an object is stored at path.
	Exists(ctx context.Context, path string) (bool, error)
	// SignedURL returns a read URL valid for ttl, or common.ErrUnavailable
	// when nothing is stored at path.
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}

// NewArtworkPath returns a fresh object path for one upload of owner. The
// owner id is the first segment so bucket policies can match on prefix.
func NewArtworkPath(owner string, now time.Time) string {
	return fmt.Sprintf("%s/%d-%s.jpg", owner, now.UnixMilli(), uuid.NewString())
}

// OwnsPath reports whether path lies under owner's prefix.
func OwnsPath(owner, path string) bool {
	rest, ok := strings.CutPrefix(path, owner+"/")
	return ok && owner != "" && rest != "" && !strings.Contains(rest, "..")
}
