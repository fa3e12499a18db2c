package duckdb

import "github.com/leapstack-labs/sqlforge/pkg/dialect"

func init() {
	dialect.Register(DuckDB)
}

// DuckDB is the DuckDB dialect.
var DuckDB = dialect.New(Config).
	Operators(dialect.ANSIOperators...).
	JoinTypes(dialect.ANSIJoinTypes...).
	Connectors(dialect.ANSIConnectors...).
	Build()
