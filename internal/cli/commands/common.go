package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/sqlforge/internal/config"
	"github.com/leapstack-labs/sqlforge/pkg/adapter"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

// errNoConnection is returned by commands that execute SQL when no
// connection is configured.
var errNoConnection = errors.New("no connection configured\nHint: set connection.type in sqlforge.yaml or pass --db-type")

// DialectNames returns the registered dialect names, optionally followed by "all".
func DialectNames(includeAll bool) []string {
	names := dialect.List()
	if includeAll {
		names = append(names, config.AllDialects)
	}
	return names
}

// resolveDialects returns the configured dialect, or every registered one
// when the config selects "all".
func resolveDialects(cfg *config.Config) ([]*dialect.Dialect, error) {
	if cfg.Dialect != config.AllDialects {
		d, err := dialect.Lookup(cfg.Dialect)
		if err != nil {
			return nil, err
		}
		return []*dialect.Dialect{d}, nil
	}
	var out []*dialect.Dialect
	for _, name := range dialect.List() {
		d, _ := dialect.Get(name)
		out = append(out, d)
	}
	return out, nil
}

// singleDialect resolves the configured dialect and rejects "all".
func singleDialect(cfg *config.Config) (*dialect.Dialect, error) {
	if cfg.Dialect == config.AllDialects {
		return nil, fmt.Errorf("this command needs a single dialect, not %q", config.AllDialects)
	}
	return dialect.Lookup(cfg.Dialect)
}

// openConnection creates and connects the configured connection.
func openConnection(ctx context.Context, cfg *config.Config, logger *slog.Logger) (adapter.Connection, error) {
	if cfg.Connection == nil {
		return nil, errNoConnection
	}
	conn, err := adapter.New(*cfg.Connection, logger)
	if err != nil {
		return nil, err
	}
	if err := conn.Connect(ctx, *cfg.Connection); err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	logger.Debug("connected", slog.String("type", cfg.Connection.Type), slog.String("dialect", conn.Dialect().Name))
	return conn, nil
}
