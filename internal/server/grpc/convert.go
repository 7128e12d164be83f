package grpc

import (
	"time"

	"github.com/dmitrijs2005/atelier/internal/agecalc"
	pb "github.com/dmitrijs2005/atelier/internal/proto"
	"github.com/dmitrijs2005/atelier/internal/server/models"
	"github.com/dmitrijs2005/atelier/internal/server/services"
)

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := agecalc.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(agecalc.DateLayout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func metaFromPB(m *pb.ArtworkMeta) (services.ArtworkMeta, error) {
	shot, err := parseDate(m.ShotAtDate)
	if err != nil {
		return services.ArtworkMeta{}, err
	}
	birth, err := parseDate(m.BirthDate)
	if err != nil {
		return services.ArtworkMeta{}, err
	}

	meta := services.ArtworkMeta{ShotAtDate: shot, BirthDate: birth, Tags: m.Tags}
	if m.ChildId != "" {
		meta.ChildID = &m.ChildId
	}
	if m.Memo != "" {
		meta.Memo = &m.Memo
	}
	return meta, nil
}

func artworkToPB(a *models.Artwork) *pb.Artwork {
	return &pb.Artwork{
		Id:            a.ID,
		StoragePath:   a.StoragePath,
		ShotAtDate:    formatDate(a.ShotAtDate),
		AgeAtCreation: deref(a.AgeAtCreation),
		ChildId:       deref(a.ChildID),
		Memo:          deref(a.Memo),
		Tags:          a.Tags,
		CreatedAt:     a.CreatedAt,
	}
}

// SharedToPB renders a guest gallery. The HTTP share route returns the same
// shape.
func SharedToPB(items []services.SharedItem) []*pb.SharedArtwork {
	out := make([]*pb.SharedArtwork, 0, len(items))
	for _, it := range items {
		out = append(out, &pb.SharedArtwork{
			Id:            it.ID,
			Url:           it.URL,
			Available:     it.Available,
			ShotAtDate:    formatDate(it.ShotAtDate),
			AgeAtCreation: deref(it.AgeAtCreation),
			Memo:          deref(it.Memo),
			Tags:          it.Tags,
			CreatedAt:     it.CreatedAt,
		})
	}
	return out
}

func shareLinkToPB(l *models.ShareLink) *pb.ShareLink {
	return &pb.ShareLink{
		Token:     l.Token,
		Label:     deref(l.Label),
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
	}
}

func childToPB(c *models.Child) *pb.Child {
	return &pb.Child{
		Id:        c.ID,
		Name:      c.Name,
		BirthDate: formatDate(c.BirthDate),
		Color:     c.Color,
	}
}
