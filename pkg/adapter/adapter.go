// Package adapter provides the database connection contract consumed by
// query builders, plus a database/sql base implementation.
//
// The builder core never performs I/O itself; a Connection executes
// rendered statements and supplies the driver's own string escaping.
// Concrete connections live in pkg/adapters/ subdirectories and register
// themselves from init().
package adapter

import (
	"context"

	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

// Config is an alias for core.AdapterConfig.
type Config = core.AdapterConfig

// Connection defines the interface that all database connections must implement.
type Connection interface {
	// Connect establishes a connection to the database using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the database connection and releases resources.
	Close() error

	// Query executes a statement and loads every returned row.
	Query(ctx context.Context, sql string) (*ResultSet, error)

	// Exec executes a statement and reports the number of affected rows.
	Exec(ctx context.Context, sql string) (int64, error)

	// Quote escapes s as a string literal. A non-empty escape appends an
	// ESCAPE clause naming the LIKE escape character.
	Quote(s, escape string) string

	// Dialect returns the SQL dialect statements must be rendered in.
	Dialect() *dialect.Dialect
}
