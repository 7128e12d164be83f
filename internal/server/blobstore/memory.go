package blobstore

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/atelier/internal/common"
)

// MemoryStore keeps blobs in process memory. Its signed URLs point at
// BaseURL and are verified by Open, so the server can serve them itself.
// It is meant for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string
	secret  []byte
	now     func() time.Time
}

func NewMemoryStore(baseURL string, secret []byte) *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
		baseURL: baseURL,
		secret:  secret,
		now:     time.Now,
	}
}

func (m *MemoryStore) Put(ctx context.Context, path string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	m.objects[path] = buf
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.objects, path)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !m.has(path) {
		return "", common.ErrUnavailable
	}

	expires := strconv.FormatInt(m.now().Add(ttl).Unix(), 10)
	q := url.Values{}
	q.Set("expires", expires)
	q.Set("signature", m.sign(path, expires))
	return fmt.Sprintf("%s/%s?%s", m.baseURL, path, q.Encode()), nil
}

func (m *MemoryStore) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return m.has(path), nil
}

func (m *MemoryStore) has(path string) bool {
	m.mu.RLock()
	_, ok := m.objects[path]
	m.mu.RUnlock()
	return ok
}

// Open returns the blob named by a URL issued by SignedURL. A bad signature,
// an expired URL and a missing object are all common.ErrorNotFound.
func (m *MemoryStore) Open(path, expires, signature string) ([]byte, error) {
	exp, err := strconv.ParseInt(expires, 10, 64)
	if err != nil || m.now().Unix() > exp {
		return nil, common.ErrorNotFound
	}
	if !hmac.Equal([]byte(signature), []byte(m.sign(path, expires))) {
		return nil, common.ErrorNotFound
	}

	m.mu.RLock()
	data, ok := m.objects[path]
	m.mu.RUnlock()
	if !ok {
		return nil, common.ErrorNotFound
	}
	return data, nil
}

func (m *MemoryStore) sign(path, expires string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(path))
	mac.Write([]byte{0})
	mac.Write([]byte(expires))
	return hex.EncodeToString(mac.Sum(nil))
}
