package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/atelier/internal/common"
	"github.com/dmitrijs2005/atelier/internal/cryptox"
	"github.com/dmitrijs2005/atelier/internal/server/auth"
	"github.com/dmitrijs2005/atelier/internal/server/config"
	"github.com/dmitrijs2005/atelier/internal/server/models"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newUserService(db *sql.DB, repos *fakeStore) *UserService {
	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
	return NewUserService(db, repos, cfg)
}

func TestRegister(t *testing.T) {
	repos := newFakeStore()
	s := newUserService(nil, repos)
	ctx := context.Background()

	u, err := s.Register(ctx, "  Parent@Example.com ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "parent@example.com", u.Email)
	assert.Len(t, u.Salt, cryptox.SaltSize)
	assert.True(t, cryptox.CheckPassword([]byte("correct horse"), u.Salt, u.PasswordHash))

	_, err = s.Register(ctx, "parent@example.com", "another one")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	s := newUserService(nil, newFakeStore())

	tests := []struct {
		name, email, password string
	}{
		{"no at sign", "parent.example.com", "long enough"},
		{"display name", "Parent <p@example.com>", "long enough"},
		{"empty email", "", "long enough"},
		{"short password", "p@example.com", "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestLogin(t *testing.T) {
	repos := newFakeStore()
	s := newUserService(nil, repos)
	ctx := context.Background()

	u, err := s.Register(ctx, "p@example.com", "correct horse")
	require.NoError(t, err)

	pair, err := s.Login(ctx, "P@example.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, pair.RefreshToken)

	userID, err := auth.GetUserIDFromToken(pair.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Contains(t, repos.tokens, pair.RefreshToken)

	_, err = s.Login(ctx, "p@example.com", "wrong horse")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(ctx, "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(ctx, "not an email", "correct horse")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_RepoError(t *testing.T) {
	repos := newFakeStore()
	repos.fail["users.GetByEmail"] = errBoom
	s := newUserService(nil, repos)

	_, err := s.Login(context.Background(), "p@example.com", "correct horse")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestRefreshToken_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repos := newFakeStore()
	repos.tokens["old"] = &models.RefreshToken{UserID: "u1", Token: "old", Expires: time.Now().Add(10 * time.Minute)}
	repos.tokens["stale"] = &models.RefreshToken{UserID: "u1", Token: "stale", Expires: time.Now().Add(-time.Minute)}
	s := newUserService(db, repos)

	pair, err := s.RefreshToken(context.Background(), "old")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotContains(t, repos.tokens, "old")
	assert.NotContains(t, repos.tokens, "stale")
	assert.Contains(t, repos.tokens, pair.RefreshToken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_Expired(t *testing.T) {
	repos := newFakeStore()
	repos.tokens["r"] = &models.RefreshToken{UserID: "u1", Token: "r", Expires: time.Now().Add(-time.Minute)}
	s := newUserService(nil, repos)

	_, err := s.RefreshToken(context.Background(), "r")
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestRefreshToken_Unknown(t *testing.T) {
	s := newUserService(nil, newFakeStore())

	_, err := s.RefreshToken(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRefreshToken_RollsBackOnCreateError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repos := newFakeStore()
	repos.tokens["old"] = &models.RefreshToken{UserID: "u1", Token: "old", Expires: time.Now().Add(time.Minute)}
	repos.fail["tokens.Create"] = errBoom
	s := newUserService(db, repos)

	_, err := s.RefreshToken(context.Background(), "old")
	assert.ErrorIs(t, err, common.ErrorInternal)
	require.NoError(t, mock.ExpectationsWereMet())
}
