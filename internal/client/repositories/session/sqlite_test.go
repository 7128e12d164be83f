package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/atelier/internal/client/migrations"
	"github.com/dmitrijs2005/atelier/internal/client/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(db, "."))
	return db
}

func TestLoad_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	s, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSaveLoadClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, models.Session{Email: "a@example.com", RefreshToken: "r1"}))
	require.NoError(t, r.Save(ctx, models.Session{Email: "a@example.com", RefreshToken: "r2"}))

	s, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.Session{Email: "a@example.com", RefreshToken: "r2"}, s)

	require.NoError(t, r.Clear(ctx))
	s, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Load(ctx)
	assert.ErrorContains(t, err, "failed to load session")
	assert.ErrorContains(t, r.Save(ctx, models.Session{RefreshToken: "x"}), "failed to save session")
	assert.ErrorContains(t, r.Clear(ctx), "failed to clear session")
}
