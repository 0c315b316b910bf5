package repomanager

import (
	"context"
	"database/sql"

	"github.com/fgclabs/combovault/internal/dbx"
	"github.com/fgclabs/combovault/internal/server/repositories/combos"
	"github.com/fgclabs/combovault/internal/server/repositories/events"
	"github.com/fgclabs/combovault/internal/server/repositories/refreshtokens"
	"github.com/fgclabs/combovault/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, letting services
// obtain transaction-scoped repositories inside dbx.WithTx and plain ones
// outside it. It also owns schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Combos(db dbx.DBTX) combos.Repository
	Events(db dbx.DBTX) events.Repository
}
