// Package mysql provides a MySQL connection built on go-sql-driver/mysql.
//
// Import this package with a blank identifier to register it:
//
//	import _ "github.com/leapstack-labs/sqlforge/pkg/adapters/mysql"
package mysql

import (
	"log/slog"

	"github.com/leapstack-labs/sqlforge/pkg/adapter"
)

func init() {
	adapter.Register("mysql", func(l *slog.Logger) adapter.Connection { return New(l) })
}
