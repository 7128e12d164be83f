package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/atelier/internal/common"
	pb "github.com/dmitrijs2005/atelier/internal/proto"
	"github.com/dmitrijs2005/atelier/internal/server/services"
)

// mapError converts a service error into a gRPC status. Not-found answers
// never say what was missing.
func (s *GRPCServer) mapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var pf *services.PartialFailureError
	switch {
	case errors.As(err, &pf):
		return status.Error(codes.Aborted, pb.PartialFailureMessage(pf.Pending.StoragePath))
	case errors.Is(err, common.ErrorUnauthenticated), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrUploadRejected):
		return status.Error(codes.Unavailable, common.ErrUploadRejected.Error())
	case errors.Is(err, common.ErrDeletionBlocked):
		return status.Error(codes.FailedPrecondition, common.ErrDeletionBlocked.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	}

	s.logger.Error(ctx, "internal error", "error", err)
	return status.Error(codes.Internal, "internal error")
}
