// Package sqlite provides an SQLite connection built on the pure-Go
// modernc.org/sqlite driver.
//
// Import this package with a blank identifier to register it:
//
//	import _ "github.com/leapstack-labs/sqlforge/pkg/adapters/sqlite"
package sqlite

import (
	"log/slog"

	"github.com/leapstack-labs/sqlforge/pkg/adapter"
)

func init() {
	adapter.Register("sqlite", func(l *slog.Logger) adapter.Connection { return New(l) })
}
