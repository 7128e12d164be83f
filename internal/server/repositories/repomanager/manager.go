package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/atelier/internal/dbx"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/artworks"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/children"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/sharelinks"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a pool or a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Children(db dbx.DBTX) children.Repository
	Artworks(db dbx.DBTX) artworks.Repository
	ShareLinks(db dbx.DBTX) sharelinks.Repository
}
