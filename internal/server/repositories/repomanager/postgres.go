package repomanager

import (
	"context"
	"database/sql"

	"github.com/mborg/chatboard/internal/common"
	"github.com/mborg/chatboard/internal/dbx"
	"github.com/mborg/chatboard/internal/server/migrations"
	"github.com/mborg/chatboard/internal/server/repositories/msgs"
	"github.com/mborg/chatboard/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Msgs returns a msgs.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Msgs(db dbx.DBTX) msgs.Repository {
	return msgs.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection. Already-applied versions are
// skipped, so calling this on every startup is safe.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return common.NewStorageError("repomanager.RunMigrations", nil, err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return common.NewStorageError("repomanager.RunMigrations", nil, err)
	}
	return nil
}
