package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/atelier/internal/proto"
)

func (s *GRPCServer) UploadArtwork(ctx context.Context, req *pb.UploadArtworkRequest) (*pb.UploadArtworkResponse, error) {
	meta, err := metaFromPB(req.GetMeta())
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	a, err := s.artworks.Create(ctx, currentUser(ctx), req.Image, meta)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.UploadArtworkResponse{Artwork: artworkToPB(a)}, nil
}

func (s *GRPCServer) RetryArtworkRow(ctx context.Context, req *pb.RetryArtworkRowRequest) (*pb.RetryArtworkRowResponse, error) {
	meta, err := metaFromPB(req.GetMeta())
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	a, err := s.artworks.CommitPending(ctx, currentUser(ctx), req.StoragePath, meta)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.RetryArtworkRowResponse{Artwork: artworkToPB(a)}, nil
}

func (s *GRPCServer) DeleteArtwork(ctx context.Context, req *pb.DeleteArtworkRequest) (*pb.DeleteArtworkResponse, error) {
	if err := s.artworks.Delete(ctx, currentUser(ctx), req.Id); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.DeleteArtworkResponse{}, nil
}

func (s *GRPCServer) ListGallery(ctx context.Context, req *pb.ListGalleryRequest) (*pb.ListGalleryResponse, error) {
	var childID *string
	if req.ChildId != "" {
		childID = &req.ChildId
	}

	items, err := s.gallery.List(ctx, currentUser(ctx), childID)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	resp := &pb.ListGalleryResponse{Items: make([]*pb.GalleryItem, 0, len(items))}
	for i := range items {
		it := &items[i]
		resp.Items = append(resp.Items, &pb.GalleryItem{
			Artwork:    artworkToPB(&it.Artwork),
			ChildName:  it.ChildName,
			ChildColor: it.ChildColor,
			ChildKnown: it.ChildKnown,
			Url:        it.URL,
			Available:  it.Available,
		})
	}
	return resp, nil
}

func (s *GRPCServer) ListSharedGallery(ctx context.Context, req *pb.ListSharedGalleryRequest) (*pb.ListSharedGalleryResponse, error) {
	items, err := s.gallery.ListShared(ctx, req.Token)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.ListSharedGalleryResponse{Items: SharedToPB(items)}, nil
}
