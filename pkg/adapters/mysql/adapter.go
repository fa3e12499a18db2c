package mysql

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/leapstack-labs/sqlforge/pkg/adapter"
	mysqldialect "github.com/leapstack-labs/sqlforge/pkg/dialects/mysql"
)

// Adapter implements adapter.Connection for MySQL. String escaping comes
// from the dialect's backslash rules, matching the server's default
// sql_mode.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new MySQL connection instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{
		BaseSQLAdapter: adapter.NewBase(mysqldialect.MySQL, logger),
	}
}

// Connect establishes a connection to MySQL.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	a.Logger.Debug("connecting to mysql", slog.String("host", cfg.Host), slog.String("database", cfg.Database))
	return a.Open(ctx, "mysql", buildMySQLDSN(cfg), cfg)
}

// buildMySQLDSN formats cfg with the driver's own DSN writer. Options other
// than "tls" are passed through as connection parameters.
func buildMySQLDSN(cfg adapter.Config) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 3306
	}

	mc := mysql.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	mc.DBName = cfg.Database
	mc.ParseTime = true

	for k, v := range cfg.Options {
		if k == "tls" {
			mc.TLSConfig = v
			continue
		}
		if mc.Params == nil {
			mc.Params = make(map[string]string)
		}
		mc.Params[k] = v
	}
	return mc.FormatDSN()
}

// Ensure Adapter implements adapter.Connection interface
var _ adapter.Connection = (*Adapter)(nil)
