package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/url"
	"slices"

	"github.com/leapstack-labs/sqlforge/pkg/adapter"
	sqlitedialect "github.com/leapstack-labs/sqlforge/pkg/dialects/sqlite"

	_ "modernc.org/sqlite" // sqlite driver
)

// Adapter implements adapter.Connection for SQLite.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new SQLite connection instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{
		BaseSQLAdapter: adapter.NewBase(sqlitedialect.SQLite, logger),
	}
}

// Connect opens the database file at cfg.Path.
// Use ":memory:" or an empty path for an in-memory database.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	a.Logger.Debug("connecting to sqlite", slog.String("path", cfg.Path))
	return a.Open(ctx, "sqlite", buildSQLiteDSN(cfg), cfg)
}

// buildSQLiteDSN appends every option as a _pragma parameter, in key order.
func buildSQLiteDSN(cfg adapter.Config) string {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}
	if len(cfg.Options) == 0 {
		return path
	}
	q := url.Values{}
	for _, k := range slices.Sorted(maps.Keys(cfg.Options)) {
		q.Add("_pragma", fmt.Sprintf("%s(%s)", k, cfg.Options[k]))
	}
	return path + "?" + q.Encode()
}

// Ensure Adapter implements adapter.Connection interface
var _ adapter.Connection = (*Adapter)(nil)
