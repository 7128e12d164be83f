package blobstore

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/atelier/internal/common"
)

func parseSigned(t *testing.T, raw, base string) (path, expires, sig string) {
	t.Helper()
	require.True(t, strings.HasPrefix(raw, base+"/"), raw)
	p, q, _ := strings.Cut(strings.TrimPrefix(raw, base+"/"), "?")
	vals, err := url.ParseQuery(q)
	require.NoError(t, err)
	return p, vals.Get("expires"), vals.Get("signature")
}

func TestMemoryStore_PutSignOpen(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore("http://localhost:8080/blobs", []byte("k"))

	require.NoError(t, m.Put(ctx, "u1/a.jpg", []byte("jpeg"), "image/jpeg"))
	ok, err := m.Exists(ctx, "u1/a.jpg")
	require.NoError(t, err)
	assert.True(t, ok)

	raw, err := m.SignedURL(ctx, "u1/a.jpg", time.Hour)
	require.NoError(t, err)

	p, exp, sig := parseSigned(t, raw, "http://localhost:8080/blobs")
	assert.Equal(t, "u1/a.jpg", p)

	data, err := m.Open(p, exp, sig)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)

	_, err = m.Open("u1/other.jpg", exp, sig)
	assert.ErrorIs(t, err, common.ErrorNotFound, "signature is bound to the path")
}

func TestMemoryStore_PutCopiesInput(t *testing.T) {
	m := NewMemoryStore("http://x", []byte("k"))
	buf := []byte("abc")
	require.NoError(t, m.Put(context.Background(), "u1/a.jpg", buf, "image/jpeg"))
	buf[0] = 'z'

	raw, err := m.SignedURL(context.Background(), "u1/a.jpg", time.Minute)
	require.NoError(t, err)
	p, exp, sig := parseSigned(t, raw, "http://x")
	data, err := m.Open(p, exp, sig)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)
}

func TestMemoryStore_ExpiredURL(t *testing.T) {
	m := NewMemoryStore("http://x", []byte("k"))
	now := time.Unix(1_700_000_000, 0)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Put(context.Background(), "u1/a.jpg", []byte("x"), "image/jpeg"))
	raw, err := m.SignedURL(context.Background(), "u1/a.jpg", time.Hour)
	require.NoError(t, err)
	u, _ := url.Parse(raw)
	exp, sig := u.Query().Get("expires"), u.Query().Get("signature")

	now = now.Add(59 * time.Minute)
	_, err = m.Open("u1/a.jpg", exp, sig)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = m.Open("u1/a.jpg", exp, sig)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryStore_RemoveThenUnavailable(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore("http://x", []byte("k"))

	require.NoError(t, m.Put(ctx, "u1/a.jpg", []byte("x"), "image/jpeg"))
	raw, err := m.SignedURL(ctx, "u1/a.jpg", time.Hour)
	require.NoError(t, err)

	require.NoError(t, m.Remove(ctx, "u1/a.jpg"))
	require.NoError(t, m.Remove(ctx, "u1/a.jpg"), "removing twice is fine")

	_, err = m.SignedURL(ctx, "u1/a.jpg", time.Hour)
	assert.ErrorIs(t, err, common.ErrUnavailable)

	u, _ := url.Parse(raw)
	_, err = m.Open("u1/a.jpg", u.Query().Get("expires"), u.Query().Get("signature"))
	assert.ErrorIs(t, err, common.ErrorNotFound, "old URLs stop resolving once the blob is gone")
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMemoryStore("http://x", []byte("k"))

	assert.ErrorIs(t, m.Put(ctx, "p", nil, ""), context.Canceled)
	assert.ErrorIs(t, m.Remove(ctx, "p"), context.Canceled)
	_, err := m.SignedURL(ctx, "p", time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore_BadExpires(t *testing.T) {
	m := NewMemoryStore("http://x", []byte("k"))
	_, err := m.Open("p", "soon", "sig")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
