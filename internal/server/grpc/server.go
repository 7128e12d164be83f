// Package grpc exposes the Atelier services over gRPC: authenticated owner
// operations plus the anonymous shared gallery.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/atelier/internal/logging"
	pb "github.com/dmitrijs2005/atelier/internal/proto"
	"github.com/dmitrijs2005/atelier/internal/server/models"
	"github.com/dmitrijs2005/atelier/internal/server/services"
)

// UserService is the account collaborator.
type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type ArtworkService interface {
	Create(ctx context.Context, owner string, payload []byte, meta services.ArtworkMeta) (*models.Artwork, error)
	CommitPending(ctx context.Context, owner, path string, meta services.ArtworkMeta) (*models.Artwork, error)
	Delete(ctx context.Context, owner, id string) error
}

type GalleryService interface {
	List(ctx context.Context, owner string, childID *string) ([]services.GalleryItem, error)
	ListShared(ctx context.Context, token string) ([]services.SharedItem, error)
}

type ShareService interface {
	GetActive(ctx context.Context, owner string) (*models.ShareLink, error)
	Rotate(ctx context.Context, owner, label string) (*models.ShareLink, error)
	Revoke(ctx context.Context, owner string) (int64, error)
	History(ctx context.Context, owner string) ([]models.ShareLink, error)
}

type ChildService interface {
	Create(ctx context.Context, owner, name string, birthDate *time.Time, color string) (*models.Child, error)
	List(ctx context.Context, owner string) ([]models.Child, error)
	Delete(ctx context.Context, owner, id string) error
}

// Services groups the collaborators a GRPCServer dispatches to.
type Services struct {
	Users    UserService
	Artworks ArtworkService
	Gallery  GalleryService
	Shares   ShareService
	Children ChildService
}

type GRPCServer struct {
	pb.UnimplementedAtelierServiceServer
	address        string
	logger         logging.Logger
	users          UserService
	artworks       ArtworkService
	gallery        GalleryService
	shares         ShareService
	children       ChildService
	jwtSecret      []byte
	maxRecvMsgSize int
}

// NewGRPCServer builds a server bound to address. maxUploadBytes sizes the
// largest accepted message; the image travels base64 encoded inside it.
func NewGRPCServer(address string, l logging.Logger, secretKey string, maxUploadBytes int, svc Services) *GRPCServer {
	s := &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		users:     svc.Users,
		artworks:  svc.Artworks,
		gallery:   svc.Gallery,
		shares:    svc.Shares,
		children:  svc.Children,
		jwtSecret: []byte(secretKey),
	}
	if maxUploadBytes > 0 {
		s.maxRecvMsgSize = maxUploadBytes/3*4 + 1<<20
	}
	return s
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	opts := []grpc.ServerOption{grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor)}
	if s.maxRecvMsgSize > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(s.maxRecvMsgSize))
	}

	// creates gRPC-server
	srv := grpc.NewServer(opts...)

	// registers services
	pb.RegisterAtelierServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
