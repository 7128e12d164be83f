package client

import (
	"context"

	pb "github.com/dmitrijs2005/atelier/internal/proto"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error
	// Resume restores a session from a stored refresh token.
	Resume(ctx context.Context, refreshToken string) error
	// RefreshToken returns the current refresh token, rotated on every refresh.
	RefreshToken() string
	Logout()

	UploadArtwork(ctx context.Context, image []byte, meta *pb.ArtworkMeta) (*pb.Artwork, error)
	RetryArtworkRow(ctx context.Context, path string, meta *pb.ArtworkMeta) (*pb.Artwork, error)
	DeleteArtwork(ctx context.Context, id string) error
	ListGallery(ctx context.Context, childID string) ([]*pb.GalleryItem, error)

	CreateChild(ctx context.Context, name, birthDate, color string) (*pb.Child, error)
	ListChildren(ctx context.Context) ([]*pb.Child, error)
	DeleteChild(ctx context.Context, id string) error

	// GetShareLink returns nil when no link is active.
	GetShareLink(ctx context.Context) (*pb.ShareLink, error)
	RotateShareLink(ctx context.Context, label string) (*pb.ShareLink, error)
	RevokeShareLink(ctx context.Context) (int64, error)
	ListShareHistory(ctx context.Context) ([]*pb.ShareLink, error)
}
