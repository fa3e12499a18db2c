package db2

import "github.com/leapstack-labs/sqlforge/pkg/dialect"

func init() {
	dialect.Register(DB2)
}

// DB2 is the Db2 dialect.
var DB2 = dialect.New(Config).
	Operators(dialect.ANSIOperators...).
	JoinTypes(dialect.ANSIJoinTypes...).
	Connectors(dialect.ANSIConnectors...).
	Build()
