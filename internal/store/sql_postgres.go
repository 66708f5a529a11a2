package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mkhalinin/go-library-manager/internal/config"
	"github.com/mkhalinin/go-library-manager/internal/logger"
)

// NewConnectPostgres connects to a PostgreSQL server using the pgx stdlib
// driver and returns the ready gateway. Used when the library database lives
// on a client-server store instead of the embedded default.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:      conn,
		driver:  "pgx",
		builder: placeholderFor("pgx"),
		logger:  log,
	}

	return db, nil
}

// Connect opens the gateway for the configured driver.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}
