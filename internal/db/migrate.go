package db

import (
	"errors"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrateSQL applies the versioned SQL migrations in ./migrations against a
// PostgreSQL DSN. Used when MIGRATIONS=1; AutoMigrate remains the dev path.
func MigrateSQL(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
