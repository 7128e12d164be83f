package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/atelier/internal/client/client"
	"github.com/dmitrijs2005/atelier/internal/client/models"
	"github.com/dmitrijs2005/atelier/internal/client/repositories/pending"
	"github.com/dmitrijs2005/atelier/internal/imagex"
	"github.com/dmitrijs2005/atelier/internal/logging"
	pb "github.com/dmitrijs2005/atelier/internal/proto"
)

// Compressor prepares an image for transfer in the background.
type Compressor interface {
	CompressAsync(ctx context.Context, raw []byte) <-chan imagex.Result
}

// UploadOutcome describes a finished upload attempt. Exactly one of Artwork
// and Pending is set.
type UploadOutcome struct {
	Artwork *pb.Artwork
	// Pending is the journal entry created when the image was stored but
	// its record was not.
	Pending *models.PendingUpload
	// Fallback reports that the original bytes were sent uncompressed.
	Fallback bool
}

type ArtworkService interface {
	Prepare(ctx context.Context, raw []byte) <-chan imagex.Result
	Upload(ctx context.Context, prepared imagex.Result, meta *pb.ArtworkMeta) (*UploadOutcome, error)
	List(ctx context.Context, childID string) ([]*pb.GalleryItem, error)
	Delete(ctx context.Context, id string) error
	Pending(ctx context.Context) ([]models.PendingUpload, error)
	Retry(ctx context.Context, id int64) (*pb.Artwork, error)
}

type artworkService struct {
	client     client.Client
	journal    pending.Repository
	compressor Compressor
	logger     logging.Logger
}

func NewArtworkService(c client.Client, journal pending.Repository, compressor Compressor, l logging.Logger) ArtworkService {
	return &artworkService{client: c, journal: journal, compressor: compressor, logger: l.With("module", "artworks")}
}

func (s *artworkService) Prepare(ctx context.Context, raw []byte) <-chan imagex.Result {
	return s.compressor.CompressAsync(ctx, raw)
}

func (s *artworkService) Upload(ctx context.Context, prepared imagex.Result, meta *pb.ArtworkMeta) (*UploadOutcome, error) {
	out := &UploadOutcome{Fallback: prepared.Fallback}
	if prepared.Fallback {
		s.logger.Warn(ctx, "compression skipped, sending original", "error", prepared.Err, "bytes", len(prepared.Data))
	}

	artwork, err := s.client.UploadArtwork(ctx, prepared.Data, meta)
	if err == nil {
		out.Artwork = artwork
		return out, nil
	}

	var partial *client.PartialFailureError
	if !errors.As(err, &partial) {
		return nil, err
	}

	p := pendingFromMeta(partial.Path, meta)
	p.Reason = err.Error()

	// journal the path even when the caller has given up
	p, jerr := s.journal.Add(context.WithoutCancel(ctx), p)
	if jerr != nil {
		s.logger.Error(ctx, "journal write failed", "path", partial.Path, "error", jerr)
		return nil, errors.Join(err, fmt.Errorf("journal error: %w", jerr))
	}
	out.Pending = p
	return out, nil
}

func (s *artworkService) List(ctx context.Context, childID string) ([]*pb.GalleryItem, error) {
	return s.client.ListGallery(ctx, childID)
}

func (s *artworkService) Delete(ctx context.Context, id string) error {
	return s.client.DeleteArtwork(ctx, id)
}

func (s *artworkService) Pending(ctx context.Context) ([]models.PendingUpload, error) {
	return s.journal.List(ctx)
}

// Retry re-commits the record of a journaled upload and drops the entry once
// the server accepts it.
func (s *artworkService) Retry(ctx context.Context, id int64) (*pb.Artwork, error) {
	p, err := s.journal.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	artwork, err := s.client.RetryArtworkRow(ctx, p.StoragePath, metaFromPending(p))
	if err != nil {
		return nil, err
	}

	if err := s.journal.Delete(ctx, id); err != nil {
		s.logger.Warn(ctx, "journal cleanup failed", "id", id, "error", err)
	}
	return artwork, nil
}

func pendingFromMeta(path string, meta *pb.ArtworkMeta) *models.PendingUpload {
	p := &models.PendingUpload{StoragePath: path}
	if meta != nil {
		p.ShotAtDate = meta.ShotAtDate
		p.ChildID = meta.ChildId
		p.BirthDate = meta.BirthDate
		p.Memo = meta.Memo
		p.Tags = meta.Tags
	}
	return p
}

func metaFromPending(p *models.PendingUpload) *pb.ArtworkMeta {
	return &pb.ArtworkMeta{
		ShotAtDate: p.ShotAtDate,
		ChildId:    p.ChildID,
		BirthDate:  p.BirthDate,
		Memo:       p.Memo,
		Tags:       p.Tags,
	}
}
