// Package imagex turns an arbitrary raster image into the bounded JPEG
// payload stored for an artwork.
package imagex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	// Formats imaging does not register on its own.
	_ "golang.org/x/image/webp"
)

// ErrUnsupported is returned for input that no registered decoder accepts.
var ErrUnsupported = errors.New("unsupported image")

// ContentType of every payload produced by Compress.
const ContentType = "image/jpeg"

// Policy bounds the output of a Compressor.
type Policy struct {
	MaxBytes     int     // target upper bound for the encoded payload
	MaxEdge      int     // longest output edge, in pixels
	StartQuality int     // first JPEG quality tried
	MinQuality   int     // lowest JPEG quality tried before shrinking
	QualityStep  int     // quality decrement between attempts
	ScaleStep    float64 // edge multiplier applied when no quality fits
	MaxRounds    int     // number of shrink rounds before giving up on the target
}

// DefaultPolicy is the fixed policy used for uploads.
var DefaultPolicy = Policy{
	MaxBytes:     300 * 1024,
	MaxEdge:      1200,
	StartQuality: 90,
	MinQuality:   40,
	QualityStep:  10,
	ScaleStep:    0.8,
	MaxRounds:    8,
}

// Result is the outcome of CompressOrOriginal. When Fallback is set, Data is
// the untouched input and Err tells why compression was skipped.
type Result struct {
	Data     []byte
	Fallback bool
	Err      error
}

// Compressor applies one Policy. It holds no mutable state and is safe for
// concurrent use.
type Compressor struct {
	policy Policy
}

func NewCompressor(p Policy) *Compressor {
	return &Compressor{policy: p}
}

func NewDefaultCompressor() *Compressor {
	return NewCompressor(DefaultPolicy)
}

// Compress returns a JPEG no larger than MaxEdge on either side. The quality
// is lowered step by step and the image is then shrunk until the payload fits
// MaxBytes; if MaxRounds are exhausted the smallest attempt is returned.
//
// A JPEG that already satisfies both bounds is returned unchanged.
func (c *Compressor) Compress(ctx context.Context, raw []byte) ([]byte, error) {
	p := c.policy

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	if format == "jpeg" && len(raw) <= p.MaxBytes && cfg.Width <= p.MaxEdge && cfg.Height <= p.MaxEdge {
		return raw, nil
	}

	src, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	var img image.Image = imaging.Fit(src, p.MaxEdge, p.MaxEdge, imaging.Lanczos)

	var best []byte
	for round := 0; round <= p.MaxRounds; round++ {
		for q := p.StartQuality; q >= p.MinQuality; q -= p.QualityStep {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			var buf bytes.Buffer
			if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(q)); err != nil {
				return nil, fmt.Errorf("encode jpeg: %w", err)
			}
			if best == nil || buf.Len() < len(best) {
				best = buf.Bytes()
			}
			if buf.Len() <= p.MaxBytes {
				return buf.Bytes(), nil
			}
		}

		b := img.Bounds()
		w := int(float64(b.Dx()) * p.ScaleStep)
		h := int(float64(b.Dy()) * p.ScaleStep)
		if w < 1 || h < 1 {
			break
		}
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	return best, nil
}

// CompressOrOriginal never fails: on any compression error the original
// bytes come back with Fallback set.
func (c *Compressor) CompressOrOriginal(ctx context.Context, raw []byte) Result {
	out, err := c.Compress(ctx, raw)
	if err != nil {
		return Result{Data: raw, Fallback: true, Err: err}
	}
	return Result{Data: out}
}

// CompressAsync runs CompressOrOriginal on its own goroutine. The returned
// channel receives exactly one Result and is then closed.
func (c *Compressor) CompressAsync(ctx context.Context, raw []byte) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		ch <- c.CompressOrOriginal(ctx, raw)
	}()
	return ch
}
