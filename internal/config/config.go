package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the library
// manager. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file, with built-in defaults filling anything left unset.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds the logging sink settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database driver: "sqlite3" for the embedded store
	// (the default) or "pgx" for PostgreSQL.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name understood by the selected driver:
	// a file path for sqlite3 (e.g. "library.db") or a PostgreSQL
	// connection string for pgx.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds the logging sink settings.
type Log struct {
	// Path is the location of the append-only log file mirrored to stdout.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

// Default configuration values applied when no other source sets a field.
const (
	DefaultDriver         = "sqlite3"
	DefaultDSN            = "library.db"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogPath        = "library.log"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
