package blobstore

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/atelier/internal/common"
	"github.com/dmitrijs2005/atelier/internal/server/metrics"
)

type instrumented struct {
	next    Store
	metrics *metrics.Metrics
}

// Instrument wraps next so every call is timed in m.
func Instrument(next Store, m *metrics.Metrics) Store {
	return &instrumented{next: next, metrics: m}
}

func (s *instrumented) Put(ctx context.Context, path string, data []byte, contentType string) error {
	start := time.Now()
	err := s.next.Put(ctx, path, data, contentType)
	s.metrics.ObserveBlobOp("put", start, err)
	if err == nil {
		s.metrics.AddUploadedBytes(len(data))
	}
	return err
}

func (s *instrumented) Remove(ctx context.Context, path string) error {
	start := time.Now()
	err := s.next.Remove(ctx, path)
	s.metrics.ObserveBlobOp("remove", start, err)
	return err
}

func (s *instrumented) Exists(ctx context.Context, path string) (bool, error) {
	start := time.Now()
	ok, err := s.next.Exists(ctx, path)
	s.metrics.ObserveBlobOp("head", start, err)
	return ok, err
}

func (s *instrumented) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	start := time.Now()
	u, err := s.next.SignedURL(ctx, path, ttl)
	// A missing blob is an answer, not a failed call.
	if errors.Is(err, common.ErrUnavailable) {
		s.metrics.ObserveBlobOp("sign", start, nil)
	} else {
		s.metrics.ObserveBlobOp("sign", start, err)
	}
	return u, err
}
