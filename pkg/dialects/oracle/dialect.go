package oracle

import "github.com/leapstack-labs/sqlforge/pkg/dialect"

func init() {
	dialect.Register(Oracle)
}

// Oracle is the Oracle dialect.
var Oracle = dialect.New(Config).
	Operators(dialect.ANSIOperators...).
	SetOperators(dialect.ANSISetOperators...).
	JoinTypes(dialect.ANSIJoinTypes...).
	Connectors(dialect.ANSIConnectors...).
	Build()
