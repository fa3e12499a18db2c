package mysql

import "github.com/leapstack-labs/sqlforge/pkg/dialect"

func init() {
	dialect.Register(MySQL)
}

// MySQL is the MySQL dialect.
var MySQL = dialect.New(Config).
	Operators(dialect.ANSIOperators...).
	SetOperators(dialect.ANSISetOperators...).
	Connectors(dialect.ANSIConnectors...).
	Build()
