package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/migrations"
)

// DB is the gateway to the durable store. It owns the long-lived connection
// pool shared by every repository: database/sql reopens pooled connections
// transparently when one is absent or closed, which is the acquire/release
// contract the repositories rely on.
type DB struct {
	*sql.DB

	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// Migrate creates the schema and seeds the default administrator account.
// Idempotent: safe to call on an already initialised database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Close releases the underlying connection pool. Safe to call more than
// once; subsequent calls return the same nil-or-cached error without
// failing the caller.
func (db *DB) Close() error {
	return db.DB.Close()
}

// placeholderFor returns the squirrel statement builder configured with the
// placeholder format of the given driver: `$n` for pgx, `?` otherwise.
func placeholderFor(driver string) sq.StatementBuilderType {
	if driver == "pgx" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
