package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/atelier/internal/common"
	"github.com/dmitrijs2005/atelier/internal/dbx"
	"github.com/dmitrijs2005/atelier/internal/logging"
	"github.com/dmitrijs2005/atelier/internal/server/capability"
	"github.com/dmitrijs2005/atelier/internal/server/models"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/artworks"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/children"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/sharelinks"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

// fakeStore is an in-memory stand-in for every repository. Setting an entry
// of fail makes the named method return that error.
type fakeStore struct {
	mu       sync.Mutex
	clock    time.Time
	users    map[string]*models.User
	tokens   map[string]*models.RefreshToken
	children map[string]*models.Child
	artworks map[string]*models.Artwork
	links    []*models.ShareLink
	fail     map[string]error
	calls    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:    map[string]*models.User{},
		tokens:   map[string]*models.RefreshToken{},
		children: map[string]*models.Child{},
		artworks: map[string]*models.Artwork{},
		fail:     map[string]error{},
	}
}

// tick advances the fake clock so created_at values are distinct.
func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeStore) enter(method string) error {
	f.calls = append(f.calls, method)
	return f.fail[method]
}

func (f *fakeStore) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeStore) Users(dbx.DBTX) users.Repository              { return fakeUsers{f} }
func (f *fakeStore) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return fakeTokens{f}
}
func (f *fakeStore) Children(dbx.DBTX) children.Repository     { return fakeChildren{f} }
func (f *fakeStore) Artworks(dbx.DBTX) artworks.Repository     { return fakeArtworks{f} }
func (f *fakeStore) ShareLinks(dbx.DBTX) sharelinks.Repository { return fakeLinks{f} }

type fakeUsers struct{ f *fakeStore }

func (r fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("users.Create"); err != nil {
		return nil, err
	}
	for _, existing := range r.f.users {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	c := *u
	c.ID = uuid.NewString()
	c.CreatedAt = r.f.tick()
	r.f.users[c.ID] = &c
	return &c, nil
}

func (r fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("users.GetByEmail"); err != nil {
		return nil, err
	}
	for _, u := range r.f.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeTokens struct{ f *fakeStore }

func (r fakeTokens) Create(_ context.Context, userID, token string, expiresAt time.Time) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("tokens.Create"); err != nil {
		return err
	}
	r.f.tokens[token] = &models.RefreshToken{ID: uuid.NewString(), UserID: userID, Token: token, Expires: expiresAt}
	return nil
}

func (r fakeTokens) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("tokens.Find"); err != nil {
		return nil, err
	}
	t, ok := r.f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (r fakeTokens) Delete(_ context.Context, token string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("tokens.Delete"); err != nil {
		return err
	}
	delete(r.f.tokens, token)
	return nil
}

func (r fakeTokens) DeleteExpired(_ context.Context, userID string, now time.Time) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("tokens.DeleteExpired"); err != nil {
		return err
	}
	for k, t := range r.f.tokens {
		if t.UserID == userID && t.Expires.Before(now) {
			delete(r.f.tokens, k)
		}
	}
	return nil
}

type fakeChildren struct{ f *fakeStore }

func (r fakeChildren) Create(_ context.Context, c *models.Child) (*models.Child, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("children.Create"); err != nil {
		return nil, err
	}
	n := *c
	n.ID = uuid.NewString()
	n.CreatedAt = r.f.tick()
	r.f.children[n.ID] = &n
	return &n, nil
}

func (r fakeChildren) Get(_ context.Context, userID, id string) (*models.Child, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("children.Get"); err != nil {
		return nil, err
	}
	c, ok := r.f.children[id]
	if !ok || c.UserID != userID {
		return nil, common.ErrorNotFound
	}
	n := *c
	return &n, nil
}

func (r fakeChildren) List(_ context.Context, userID string) ([]models.Child, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("children.List"); err != nil {
		return nil, err
	}
	var out []models.Child
	for _, c := range r.f.children {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return laterFirst(out[i].BirthDate, out[j].BirthDate, out[i].CreatedAt, out[j].CreatedAt)
	})
	return out, nil
}

func (r fakeChildren) Delete(_ context.Context, userID, id string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("children.Delete"); err != nil {
		return err
	}
	c, ok := r.f.children[id]
	if !ok || c.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.f.children, id)
	return nil
}

type fakeArtworks struct{ f *fakeStore }

func (r fakeArtworks) Create(_ context.Context, a *models.Artwork) (*models.Artwork, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("artworks.Create"); err != nil {
		return nil, err
	}
	for _, existing := range r.f.artworks {
		if existing.StoragePath == a.StoragePath {
			return nil, common.ErrorAlreadyExists
		}
	}
	n := *a
	n.ID = uuid.NewString()
	n.CreatedAt = r.f.tick()
	r.f.artworks[n.ID] = &n
	c := n
	return &c, nil
}

func (r fakeArtworks) Get(_ context.Context, userID, id string) (*models.Artwork, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("artworks.Get"); err != nil {
		return nil, err
	}
	a, ok := r.f.artworks[id]
	if !ok || a.UserID != userID {
		return nil, common.ErrorNotFound
	}
	c := *a
	return &c, nil
}

func (r fakeArtworks) GetByPath(_ context.Context, userID, path string) (*models.Artwork, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("artworks.GetByPath"); err != nil {
		return nil, err
	}
	for _, a := range r.f.artworks {
		if a.UserID == userID && a.StoragePath == path {
			c := *a
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r fakeArtworks) ListWithChildren(_ context.Context, userID string, childID *string) ([]models.ArtworkWithChild, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("artworks.ListWithChildren"); err != nil {
		return nil, err
	}
	var out []models.ArtworkWithChild
	for _, a := range r.f.sortedArtworks(userID) {
		if childID != nil && (a.ChildID == nil || *a.ChildID != *childID) {
			continue
		}
		row := models.ArtworkWithChild{Artwork: a}
		if a.ChildID != nil {
			if c, ok := r.f.children[*a.ChildID]; ok && c.UserID == userID {
				name, color := c.Name, c.Color
				row.ChildName, row.ChildColor = &name, &color
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r fakeArtworks) ListShared(_ context.Context, token string) ([]models.Artwork, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("artworks.ListShared"); err != nil {
		return nil, err
	}
	for _, l := range r.f.links {
		if l.Token == token && l.IsActive {
			return r.f.sortedArtworks(l.UserID), nil
		}
	}
	return nil, nil
}

func (r fakeArtworks) Delete(_ context.Context, userID, id string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("artworks.Delete"); err != nil {
		return err
	}
	a, ok := r.f.artworks[id]
	if !ok || a.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.f.artworks, id)
	return nil
}

func (f *fakeStore) sortedArtworks(userID string) []models.Artwork {
	var out []models.Artwork
	for _, a := range f.artworks {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return laterFirst(out[i].ShotAtDate, out[j].ShotAtDate, out[i].CreatedAt, out[j].CreatedAt)
	})
	return out
}

// laterFirst orders by a nullable date descending with nils last, then by
// creation time descending.
func laterFirst(a, b *time.Time, ca, cb time.Time) bool {
	switch {
	case a != nil && b == nil:
		return true
	case a == nil && b != nil:
		return false
	case a != nil && b != nil && !a.Equal(*b):
		return a.After(*b)
	}
	return ca.After(cb)
}

type fakeLinks struct{ f *fakeStore }

func (r fakeLinks) Create(_ context.Context, l *models.ShareLink) (*models.ShareLink, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("links.Create"); err != nil {
		return nil, err
	}
	n := *l
	n.IsActive = true
	n.CreatedAt = r.f.tick()
	r.f.links = append(r.f.links, &n)
	c := n
	return &c, nil
}

func (r fakeLinks) GetActive(_ context.Context, userID string) (*models.ShareLink, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("links.GetActive"); err != nil {
		return nil, err
	}
	for i := len(r.f.links) - 1; i >= 0; i-- {
		if l := r.f.links[i]; l.UserID == userID && l.IsActive {
			c := *l
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r fakeLinks) FindActive(_ context.Context, token string) (*models.ShareLink, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("links.FindActive"); err != nil {
		return nil, err
	}
	for _, l := range r.f.links {
		if l.Token == token && l.IsActive {
			c := *l
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r fakeLinks) DeactivateAll(_ context.Context, userID string) (int64, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("links.DeactivateAll"); err != nil {
		return 0, err
	}
	var n int64
	for _, l := range r.f.links {
		if l.UserID == userID && l.IsActive {
			l.IsActive = false
			n++
		}
	}
	return n, nil
}

func (r fakeLinks) List(_ context.Context, userID string) ([]models.ShareLink, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.enter("links.List"); err != nil {
		return nil, err
	}
	var out []models.ShareLink
	for i := len(r.f.links) - 1; i >= 0; i-- {
		if l := r.f.links[i]; l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeStore) activeCount(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, l := range f.links {
		if l.UserID == userID && l.IsActive {
			n++
		}
	}
	return n
}

// fakeBlobs records blob calls and can fail them. Stored objects live in
// objects; SignedURL answers ErrUnavailable for missing ones.
type fakeBlobs struct {
	mu        sync.Mutex
	objects   map[string][]byte
	putErr    error
	removeErr error
	existsErr error
	ctxErrs   []error
	calls     []string
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: map[string][]byte{}}
}

func (b *fakeBlobs) Put(ctx context.Context, path string, data []byte, _ string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, "Put")
	b.ctxErrs = append(b.ctxErrs, ctx.Err())
	if b.putErr != nil {
		return b.putErr
	}
	b.objects[path] = append([]byte(nil), data...)
	return nil
}

func (b *fakeBlobs) Remove(ctx context.Context, path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, "Remove")
	b.ctxErrs = append(b.ctxErrs, ctx.Err())
	if b.removeErr != nil {
		return b.removeErr
	}
	delete(b.objects, path)
	return nil
}

func (b *fakeBlobs) Exists(_ context.Context, path string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, "Exists")
	if b.existsErr != nil {
		return false, b.existsErr
	}
	_, ok := b.objects[path]
	return ok, nil
}

func (b *fakeBlobs) SignedURL(_ context.Context, path string, _ time.Duration) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.objects[path]; !ok {
		return "", common.ErrUnavailable
	}
	return "https://blobs.test/" + path + "?sig=x", nil
}

func (b *fakeBlobs) has(path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.objects[path]
	return ok
}

// harness wires every service over one fakeStore and one fakeBlobs.
type harness struct {
	repos    *fakeStore
	blobs    *fakeBlobs
	issuer   *capability.Issuer
	artworks *ArtworkService
	children *ChildService
	shares   *ShareService
	gallery  *GalleryService
}

func newHarness() *harness {
	h := &harness{repos: newFakeStore(), blobs: newFakeBlobs()}
	logger := logging.NewNopLogger()
	h.issuer = capability.NewIssuer(h.blobs, logger, nil, 4)
	h.artworks = NewArtworkService(nil, h.repos, h.blobs, logger, 1<<20)
	h.children = NewChildService(nil, h.repos)
	h.shares = NewShareService(nil, h.repos, logger, nil)
	h.gallery = NewGalleryService(nil, h.repos, h.issuer, h.shares)
	return h
}

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
