package db

import (
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrations returns the embedded schema migrations
func Migrations() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// Migrate applies (or rolls back) the embedded migrations and returns how many ran
func (db *DB) Migrate(direction migrate.MigrationDirection) (int, error) {
	n, err := migrate.Exec(db.DB, "postgres", Migrations(), direction)
	if err != nil {
		return n, fmt.Errorf("failed to run migrations: %w", err)
	}

	db.logger.Info("migrations applied", "count", n, "direction", directionName(direction))
	return n, nil
}

func directionName(direction migrate.MigrationDirection) string {
	if direction == migrate.Down {
		return "down"
	}
	return "up"
}
