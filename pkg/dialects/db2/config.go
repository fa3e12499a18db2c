// Package db2 provides the IBM Db2 SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package db2

import (
	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

// Config is the Db2 dialect configuration.
var Config = &core.DialectConfig{
	Name: "db2",
	Identifiers: core.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
	},
	Literals: core.LiteralConfig{
		True:  "1",
		False: "0",
		Hex:   "X'%s'",
	},

	Comparison:   dialect.DistinctFromOperators,
	SetOperators: dialect.SetOperatorsAll,

	SupportsNullsOrdering: true,
	TableAliasAs:          true,
	Paging:                core.PagingOffsetFetch,
}
