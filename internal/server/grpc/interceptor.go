package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/atelier/internal/common"
	pb "github.com/dmitrijs2005/atelier/internal/proto"
	"github.com/dmitrijs2005/atelier/internal/server/auth"
)

// publicMethods are served without an access token. The shared gallery is
// authorised by its share token alone.
var publicMethods = map[string]struct{}{
	pb.AtelierService_Ping_FullMethodName:              {},
	pb.AtelierService_Register_FullMethodName:          {},
	pb.AtelierService_Login_FullMethodName:             {},
	pb.AtelierService_RefreshToken_FullMethodName:      {},
	pb.AtelierService_ListSharedGallery_FullMethodName: {},
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		// the client refreshes its tokens when it sees this exact message
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	return handler(auth.WithUserID(ctx, userID), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "rpc failed", append(args, "error", err)...)
	} else {
		s.logger.Debug(ctx, "rpc", args...)
	}
	return resp, err
}

// currentUser returns the account the access token was issued to, or ""
// for anonymous calls. Services turn "" into common.ErrorUnauthenticated.
func currentUser(ctx context.Context) string {
	id, _ := auth.UserIDFromContext(ctx)
	return id
}
