package config

import (
	"errors"
	"fmt"
)

// Drivers accepted by the storage layer.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

var errUnsupportedDriver = errors.New("unsupported database driver")

// validate checks the merged configuration for values the application cannot
// start with. Called as the final step of the builder.
func (c *StructuredConfig) validate() error {
	if c.Storage.DB.Driver != DriverSQLite && c.Storage.DB.Driver != DriverPostgres {
		return fmt.Errorf("%w: %q (want %q or %q)",
			errUnsupportedDriver, c.Storage.DB.Driver, DriverSQLite, DriverPostgres)
	}

	if c.Storage.DB.DSN == "" {
		return errors.New("database DSN must not be empty")
	}

	if c.Server.HTTPAddress == "" {
		return errors.New("server address must not be empty")
	}

	if c.Server.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}

	return nil
}
