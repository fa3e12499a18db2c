package duckdb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/sqlforge/pkg/adapter"
	duckdialect "github.com/leapstack-labs/sqlforge/pkg/dialects/duckdb"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// Adapter implements adapter.Connection for DuckDB.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new DuckDB connection instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{
		BaseSQLAdapter: adapter.NewBase(duckdialect.DuckDB, logger),
	}
}

// Connect establishes a connection to DuckDB and applies extensions and
// settings from cfg.Options.
// Use ":memory:" as the path for an in-memory database.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	a.Logger.Debug("connecting to duckdb", slog.String("path", path))
	if err := a.Open(ctx, "duckdb", path, cfg); err != nil {
		return err
	}

	for _, stmt := range a.sessionSQL(ParseParams(cfg.Options)) {
		if _, err := a.Exec(ctx, stmt); err != nil {
			_ = a.Close()
			return fmt.Errorf("failed to configure duckdb: %w", err)
		}
	}
	return nil
}

// sessionSQL returns the statements that install extensions and apply
// settings, in that order.
func (a *Adapter) sessionSQL(p *Params) []string {
	var stmts []string
	for _, ext := range p.Extensions {
		name := settingName(ext)
		stmts = append(stmts, "INSTALL "+name, "LOAD "+name)
	}
	for _, k := range p.SettingNames() {
		stmts = append(stmts, fmt.Sprintf("SET %s = %s", settingName(k), a.Quote(p.Settings[k], "")))
	}
	return stmts
}

// settingName keeps only characters valid in an unquoted DuckDB name.
func settingName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '_':
			return r
		}
		return -1
	}, s)
}

// Ensure Adapter implements adapter.Connection interface
var _ adapter.Connection = (*Adapter)(nil)
