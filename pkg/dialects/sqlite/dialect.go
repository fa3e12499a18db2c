package sqlite

import "github.com/leapstack-labs/sqlforge/pkg/dialect"

func init() {
	dialect.Register(SQLite)
}

// SQLite is the SQLite dialect.
var SQLite = dialect.New(Config).
	Operators(dialect.ANSIOperators...).
	SetOperators(dialect.ANSISetOperators...).
	JoinTypes(dialect.ANSIJoinTypes...). // RIGHT and FULL since 3.39
	Connectors(dialect.ANSIConnectors...).
	Build()
