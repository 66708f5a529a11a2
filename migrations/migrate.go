// Package migrations applies the embedded schema migrations for the library
// database.
//
// One migration directory is kept per supported dialect because the two
// engines differ in boolean representation and upsert syntax. Both create the
// same three relations (books, users, borrow_records) and idempotently seed
// the default administrator account (admin001/admin), so running Migrate on
// an already initialised database is a no-op.
//
// Borrow and return dates are stored as TEXT in ISO calendar-date form
// (YYYY-MM-DD) in both dialects; this matches the on-disk format the schema
// is compatible with and keeps row scanning driver-agnostic.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// dialects maps a database/sql driver name to the goose dialect and the
// embedded migration directory for it.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"sqlite3": {goose: "sqlite3", dir: "sqlite"},
	"pgx":     {goose: "postgres", dir: "postgres"},
}

// Migrate brings the database schema up to date for the given driver.
func Migrate(db *sql.DB, driver string) error {
	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
