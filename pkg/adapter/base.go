package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/sqlforge/pkg/dialect"
	"github.com/leapstack-labs/sqlforge/pkg/prepare"
)

// ErrNotConnected is returned when a statement is sent before Connect.
var ErrNotConnected = errors.New("database connection not established")

// BaseSQLAdapter provides common database/sql functionality for connections.
// Embed this struct in concrete implementations to get standard
// Close, Exec, Query, Quote and Dialect implementations.
type BaseSQLAdapter struct {
	DB         *sql.DB
	Cfg        Config
	Logger     *slog.Logger
	SQLDialect *dialect.Dialect
}

// NewBase returns a base bound to d. If logger is nil, a discard logger is used.
func NewBase(d *dialect.Dialect, logger *slog.Logger) BaseSQLAdapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return BaseSQLAdapter{SQLDialect: d, Logger: logger}
}

// Open opens driverName with dsn, pings it and stores the handle.
func (b *BaseSQLAdapter) Open(ctx context.Context, driverName, dsn string, cfg Config) error {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s connection: %w", driverName, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping %s: %w", driverName, err)
	}
	b.DB = db
	b.Cfg = cfg
	return nil
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.DB != nil {
		b.logger().Debug("closing database connection")
		err := b.DB.Close()
		b.DB = nil
		return err
	}
	return nil
}

// Exec executes a SQL statement that doesn't return rows.
func (b *BaseSQLAdapter) Exec(ctx context.Context, sqlStr string) (int64, error) {
	if b.DB == nil {
		return 0, ErrNotConnected
	}
	b.logger().Debug("executing statement", slog.String("sql", sqlStr))
	res, err := b.DB.ExecContext(ctx, sqlStr)
	if err != nil {
		return 0, fmt.Errorf("failed to execute SQL: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		// Some drivers cannot report a count for every statement kind.
		return 0, nil
	}
	return n, nil
}

// Query executes a SQL statement that returns rows and loads all of them.
func (b *BaseSQLAdapter) Query(ctx context.Context, sqlStr string) (*ResultSet, error) {
	if b.DB == nil {
		return nil, ErrNotConnected
	}
	b.logger().Debug("executing query", slog.String("sql", sqlStr))
	rows, err := b.DB.QueryContext(ctx, sqlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return Load(rows)
}

// Quote escapes s with the dialect's literal rules.
func (b *BaseSQLAdapter) Quote(s, escape string) string {
	return prepare.QuoteLiteral(b.SQLDialect, s, escape)
}

// Dialect returns the dialect the connection was built for.
func (b *BaseSQLAdapter) Dialect() *dialect.Dialect {
	return b.SQLDialect
}

// IsConnected returns true if the database connection is established.
func (b *BaseSQLAdapter) IsConnected() bool {
	return b.DB != nil
}

func (b *BaseSQLAdapter) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.Logger
}
