package server

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/atelier/internal/server/blobstore"
	"github.com/dmitrijs2005/atelier/internal/server/config"
)

func TestNewBlobStore_Memory(t *testing.T) {
	c := &config.Config{BlobBackend: config.BlobBackendMemory, PublicBaseURL: "http://localhost:8080/", SecretKey: "k"}

	store, opener, err := newBlobStore(context.Background(), c)
	require.NoError(t, err)
	require.NotNil(t, opener)

	ms, ok := store.(*blobstore.MemoryStore)
	require.True(t, ok)

	require.NoError(t, ms.Put(context.Background(), "u/1.jpg", []byte{1}, "image/jpeg"))
	url, err := ms.SignedURL(context.Background(), "u/1.jpg", 0)
	require.NoError(t, err)
	assert.Contains(t, url, "http://localhost:8080/blobs/u/1.jpg?")
}

func TestNewBlobStore_Unknown(t *testing.T) {
	_, _, err := newBlobStore(context.Background(), &config.Config{BlobBackend: "ftp"})
	assert.ErrorContains(t, err, "unknown blob backend")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, parseLevel("chatty"))
}

func TestNewApp_DBOpenError(t *testing.T) {
	old := openDB
	t.Cleanup(func() { openDB = old })
	openDB = func(string) (*sql.DB, error) { return nil, errors.New("boom") }

	_, err := NewApp(context.Background(), &config.Config{})
	assert.ErrorContains(t, err, "db init error")
}
