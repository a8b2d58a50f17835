package db

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

// The resume aggregate and analysis history schemas ship inside the
// binary so cmd/migrate and the server startup path apply the same set.
//
//go:embed migrations/*.sql
var migrationFS embed.FS

// RunMigrations brings the schema up to date with goose. A nil handle
// is a no-op so the memory-backed configuration can share the startup path.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return nil
	}
	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, database, "migrations")
}
