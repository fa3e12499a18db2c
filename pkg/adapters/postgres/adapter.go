package postgres

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/leapstack-labs/sqlforge/pkg/adapter"
	pgdialect "github.com/leapstack-labs/sqlforge/pkg/dialects/postgres"
	"github.com/lib/pq"
)

// Driver names accepted in the "driver" option.
const (
	DriverPgx = "pgx"
	DriverPq  = "postgres" // lib/pq
)

// Adapter implements adapter.Connection for PostgreSQL.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new PostgreSQL connection instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{
		BaseSQLAdapter: adapter.NewBase(pgdialect.Postgres, logger),
	}
}

// Connect establishes a connection to PostgreSQL.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	dsn := buildPostgresDSN(cfg)
	driver := driverName(cfg)

	a.Logger.Debug("connecting to postgres",
		slog.String("host", cfg.Host),
		slog.String("database", cfg.Database),
		slog.String("driver", driver))

	return a.Open(ctx, driver, dsn, cfg)
}

// Quote escapes s using lib/pq's literal quoting, which switches to the
// escape-string form when s contains backslashes.
func (a *Adapter) Quote(s, escape string) string {
	out := pq.QuoteLiteral(s)
	if escape != "" {
		out += " ESCAPE " + pq.QuoteLiteral(escape)
	}
	return out
}

func driverName(cfg adapter.Config) string {
	if cfg.Options["driver"] == "pq" {
		return DriverPq
	}
	return DriverPgx
}

// buildPostgresDSN constructs a PostgreSQL connection string.
func buildPostgresDSN(cfg adapter.Config) string {
	// Build key=value format: host=localhost port=5432 user=postgres ...
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}

	port := cfg.Port
	if port == 0 {
		port = 5432
	}

	sslmode := "disable"
	if mode, ok := cfg.Options["sslmode"]; ok {
		sslmode = mode
	}

	dsn := fmt.Sprintf("host=%s port=%d dbname=%s sslmode=%s",
		host, port, cfg.Database, sslmode)

	if cfg.Username != "" {
		dsn += fmt.Sprintf(" user=%s", cfg.Username)
	}
	if cfg.Password != "" {
		dsn += fmt.Sprintf(" password=%s", cfg.Password)
	}

	return dsn
}

// Ensure Adapter implements adapter.Connection interface
var _ adapter.Connection = (*Adapter)(nil)
