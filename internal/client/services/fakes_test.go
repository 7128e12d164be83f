package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/atelier/internal/client/client"
	"github.com/dmitrijs2005/atelier/internal/imagex"
	pb "github.com/dmitrijs2005/atelier/internal/proto"
)

var errBoom = errors.New("boom")

// fakeClient implements the methods the services use; anything else panics
// on the nil embedded interface.
type fakeClient struct {
	client.Client

	loginErr    error
	resumeErr   error
	refresh     string
	resumedWith string
	closed      bool
	loggedOut   bool

	uploadArtwork *pb.Artwork
	uploadErr     error
	uploadedData  []byte
	uploadedMeta  *pb.ArtworkMeta

	retryArtwork *pb.Artwork
	retryErr     error
	retriedPath  string
	retriedMeta  *pb.ArtworkMeta
}

func (f *fakeClient) Register(ctx context.Context, email, password string) error { return nil }

func (f *fakeClient) Login(ctx context.Context, email, password string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.refresh = "R1"
	return nil
}

func (f *fakeClient) Resume(ctx context.Context, refreshToken string) error {
	f.resumedWith = refreshToken
	if f.resumeErr != nil {
		return f.resumeErr
	}
	f.refresh = refreshToken + "+"
	return nil
}

func (f *fakeClient) RefreshToken() string { return f.refresh }

func (f *fakeClient) Logout() {
	f.loggedOut = true
	f.refresh = ""
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func (f *fakeClient) UploadArtwork(ctx context.Context, image []byte, meta *pb.ArtworkMeta) (*pb.Artwork, error) {
	f.uploadedData, f.uploadedMeta = image, meta
	return f.uploadArtwork, f.uploadErr
}

func (f *fakeClient) RetryArtworkRow(ctx context.Context, path string, meta *pb.ArtworkMeta) (*pb.Artwork, error) {
	f.retriedPath, f.retriedMeta = path, meta
	return f.retryArtwork, f.retryErr
}

type fakeCompressor struct {
	result imagex.Result
}

func (f fakeCompressor) CompressAsync(ctx context.Context, raw []byte) <-chan imagex.Result {
	ch := make(chan imagex.Result, 1)
	ch <- f.result
	close(ch)
	return ch
}

func openJournal(t *testing.T) *client.Repositories {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return client.NewRepositories(db)
}
