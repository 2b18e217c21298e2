// Package repomanager wires the chat board's repositories to a concrete
// storage engine. A RepositoryManager is injected into the business layer at
// construction time, which keeps the storage choice swappable in tests.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mborg/chatboard/internal/dbx"
	"github.com/mborg/chatboard/internal/server/repositories/msgs"
	"github.com/mborg/chatboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	// RunMigrations idempotently ensures the schema exists; existing tables
	// and their data are never touched.
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Msgs(db dbx.DBTX) msgs.Repository
}
