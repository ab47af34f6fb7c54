package postgrestore

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

func Migrate(db *sqlx.DB) error {
	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFS,
		Root:       "migrations",
	}

	if _, err := migrate.Exec(db.DB, "postgres", source, migrate.Up); err != nil {
		return fmt.Errorf("cannot run migrations: %w", err)
	}

	return nil
}
