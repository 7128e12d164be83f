package client

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/atelier/internal/common"
	pb "github.com/dmitrijs2005/atelier/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AtelierServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken, s.refreshToken = access, refresh
	s.mu.Unlock()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := s.tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || method == pb.AtelierService_RefreshToken_FullMethodName {
		return err
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	if rerr := s.refresh(ctx, refresh); rerr != nil {
		return err
	}

	access, _ = s.tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

func (s *GRPCClient) refresh(ctx context.Context, refreshToken string) error {
	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return err
	}
	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

func NewAtelierClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAtelierServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, email, password string) error {
	_, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password})
	return s.mapError(err)
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) Resume(ctx context.Context, refreshToken string) error {
	if err := s.refresh(ctx, refreshToken); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) RefreshToken() string {
	_, refresh := s.tokens()
	return refresh
}

func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) UploadArtwork(ctx context.Context, image []byte, meta *pb.ArtworkMeta) (*pb.Artwork, error) {
	resp, err := s.client.UploadArtwork(ctx, &pb.UploadArtworkRequest{Image: image, Meta: meta})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Artwork, nil
}

func (s *GRPCClient) RetryArtworkRow(ctx context.Context, path string, meta *pb.ArtworkMeta) (*pb.Artwork, error) {
	resp, err := s.client.RetryArtworkRow(ctx, &pb.RetryArtworkRowRequest{StoragePath: path, Meta: meta})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Artwork, nil
}

func (s *GRPCClient) DeleteArtwork(ctx context.Context, id string) error {
	_, err := s.client.DeleteArtwork(ctx, &pb.DeleteArtworkRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) ListGallery(ctx context.Context, childID string) ([]*pb.GalleryItem, error) {
	resp, err := s.client.ListGallery(ctx, &pb.ListGalleryRequest{ChildId: childID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Items, nil
}

func (s *GRPCClient) CreateChild(ctx context.Context, name, birthDate, color string) (*pb.Child, error) {
	resp, err := s.client.CreateChild(ctx, &pb.CreateChildRequest{Name: name, BirthDate: birthDate, Color: color})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Child, nil
}

func (s *GRPCClient) ListChildren(ctx context.Context) ([]*pb.Child, error) {
	resp, err := s.client.ListChildren(ctx, &pb.ListChildrenRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Children, nil
}

func (s *GRPCClient) DeleteChild(ctx context.Context, id string) error {
	_, err := s.client.DeleteChild(ctx, &pb.DeleteChildRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) GetShareLink(ctx context.Context) (*pb.ShareLink, error) {
	resp, err := s.client.GetShareLink(ctx, &pb.GetShareLinkRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetLink(), nil
}

func (s *GRPCClient) RotateShareLink(ctx context.Context, label string) (*pb.ShareLink, error) {
	resp, err := s.client.RotateShareLink(ctx, &pb.RotateShareLinkRequest{Label: label})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetLink(), nil
}

func (s *GRPCClient) RevokeShareLink(ctx context.Context) (int64, error) {
	resp, err := s.client.RevokeShareLink(ctx, &pb.RevokeShareLinkRequest{})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Revoked, nil
}

func (s *GRPCClient) ListShareHistory(ctx context.Context) ([]*pb.ShareLink, error) {
	resp, err := s.client.ListShareHistory(ctx, &pb.ListShareHistoryRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Links, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		if st.Message() == common.ErrUploadRejected.Error() {
			return common.ErrUploadRejected
		}
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.FailedPrecondition:
		return common.ErrDeletionBlocked
	case codes.Aborted:
		if path, ok := pb.PendingPathFromMessage(st.Message()); ok {
			return &PartialFailureError{Path: path}
		}
		return fmt.Errorf("rpc error: %w", err)
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
