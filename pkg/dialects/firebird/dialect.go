package firebird

import "github.com/leapstack-labs/sqlforge/pkg/dialect"

func init() {
	dialect.Register(Firebird)
}

// Firebird is the Firebird dialect.
var Firebird = dialect.New(Config).
	Operators(dialect.ANSIOperators...).
	SetOperators(dialect.ANSISetOperators...).
	JoinTypes(dialect.ANSIJoinTypes...).
	Connectors(dialect.ANSIConnectors...).
	Build()
