// Package all registers every built-in dialect. Import it for side effects:
//
//	import _ "github.com/leapstack-labs/sqlforge/pkg/dialects/all"
package all

import (
	_ "github.com/leapstack-labs/sqlforge/pkg/dialects/ansi"     // Register ANSI dialect
	_ "github.com/leapstack-labs/sqlforge/pkg/dialects/db2"      // Register Db2 dialect
	_ "github.com/leapstack-labs/sqlforge/pkg/dialects/duckdb"   // Register DuckDB dialect
	_ "github.com/leapstack-labs/sqlforge/pkg/dialects/firebird" // Register Firebird dialect
	_ "github.com/leapstack-labs/sqlforge/pkg/dialects/mssql"    // Register SQL Server dialect
	_ "github.com/leapstack-labs/sqlforge/pkg/dialects/mysql"    // Register MySQL dialect
	_ "github.com/leapstack-labs/sqlforge/pkg/dialects/oracle"   // Register Oracle dialect
	_ "github.com/leapstack-labs/sqlforge/pkg/dialects/postgres" // Register PostgreSQL dialect
	_ "github.com/leapstack-labs/sqlforge/pkg/dialects/sqlite"   // Register SQLite dialect
)

// Names lists the dialects registered by this package.
var Names = []string{
	"ansi", "db2", "duckdb", "firebird", "mssql", "mysql", "oracle", "postgres", "sqlite",
}
