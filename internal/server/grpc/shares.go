package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/atelier/internal/proto"
)

func (s *GRPCServer) GetShareLink(ctx context.Context, req *pb.GetShareLinkRequest) (*pb.GetShareLinkResponse, error) {
	link, err := s.shares.GetActive(ctx, currentUser(ctx))
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.GetShareLinkResponse{Link: shareLinkToPB(link)}, nil
}

func (s *GRPCServer) RotateShareLink(ctx context.Context, req *pb.RotateShareLinkRequest) (*pb.RotateShareLinkResponse, error) {
	link, err := s.shares.Rotate(ctx, currentUser(ctx), req.Label)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.RotateShareLinkResponse{Link: shareLinkToPB(link)}, nil
}

func (s *GRPCServer) RevokeShareLink(ctx context.Context, req *pb.RevokeShareLinkRequest) (*pb.RevokeShareLinkResponse, error) {
	n, err := s.shares.Revoke(ctx, currentUser(ctx))
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.RevokeShareLinkResponse{Revoked: n}, nil
}

func (s *GRPCServer) ListShareHistory(ctx context.Context, req *pb.ListShareHistoryRequest) (*pb.ListShareHistoryResponse, error) {
	links, err := s.shares.History(ctx, currentUser(ctx))
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	resp := &pb.ListShareHistoryResponse{Links: make([]*pb.ShareLink, 0, len(links))}
	for i := range links {
		resp.Links = append(resp.Links, shareLinkToPB(&links[i]))
	}
	return resp, nil
}
