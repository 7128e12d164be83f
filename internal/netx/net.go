// Package netx fetches objects through capability URLs.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultClient is used by Fetch; tests may point it at an httptest server.
var DefaultClient = &http.Client{}

// Fetch downloads the object behind a signed URL. Bodies larger than
// maxBytes are rejected; maxBytes <= 0 means no limit.
func Fetch(ctx context.Context, url string, maxBytes int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}

	body := io.Reader(resp.Body)
	if maxBytes > 0 {
		body = io.LimitReader(resp.Body, maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("download failed: object exceeds %d bytes", maxBytes)
	}
	return data, nil
}
