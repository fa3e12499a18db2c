package mssql

import "github.com/leapstack-labs/sqlforge/pkg/dialect"

func init() {
	dialect.Register(MSSQL)
}

// MSSQL is the SQL Server dialect.
var MSSQL = dialect.New(Config).
	Operators(dialect.ANSIOperators...).
	SetOperators(dialect.ANSISetOperators...).
	JoinTypes(dialect.ANSIJoinTypes...).
	Connectors(dialect.ANSIConnectors...).
	Build()
