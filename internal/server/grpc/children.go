package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/atelier/internal/proto"
)

func (s *GRPCServer) CreateChild(ctx context.Context, req *pb.CreateChildRequest) (*pb.CreateChildResponse, error) {
	birth, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	c, err := s.children.Create(ctx, currentUser(ctx), req.Name, birth, req.Color)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.CreateChildResponse{Child: childToPB(c)}, nil
}

func (s *GRPCServer) ListChildren(ctx context.Context, req *pb.ListChildrenRequest) (*pb.ListChildrenResponse, error) {
	list, err := s.children.List(ctx, currentUser(ctx))
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	resp := &pb.ListChildrenResponse{Children: make([]*pb.Child, 0, len(list))}
	for i := range list {
		resp.Children = append(resp.Children, childToPB(&list[i]))
	}
	return resp, nil
}

func (s *GRPCServer) DeleteChild(ctx context.Context, req *pb.DeleteChildRequest) (*pb.DeleteChildResponse, error) {
	if err := s.children.Delete(ctx, currentUser(ctx), req.Id); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.DeleteChildResponse{}, nil
}
