package repomanager

import (
	"context"
	"database/sql"

	"github.com/basharkhan/brainly/internal/dbx"
	"github.com/basharkhan/brainly/internal/server/repositories/contents"
	"github.com/basharkhan/brainly/internal/server/repositories/sharelinks"
	"github.com/basharkhan/brainly/internal/server/repositories/users"
)

// RepositoryManager vends per-entity repositories bound to an arbitrary DBTX
// (*sql.DB or *sql.Tx), plus a schema migration hook.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Contents(db dbx.DBTX) contents.Repository
	ShareLinks(db dbx.DBTX) sharelinks.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
