package client

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/atelier/internal/client/migrations"
	"github.com/dmitrijs2005/atelier/internal/client/repositories/pending"
	"github.com/dmitrijs2005/atelier/internal/client/repositories/session"
)

// Repositories bundles the journal repositories over one database.
type Repositories struct {
	Session session.Repository
	Pending pending.Repository
}

func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Session: session.NewSQLiteRepository(db),
		Pending: pending.NewSQLiteRepository(db),
	}
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite journal at dsn and
// migrates it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
