// Package firebird provides the Firebird SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package firebird

import (
	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

// Config is the Firebird dialect configuration.
var Config = &core.DialectConfig{
	Name: "firebird",
	Identifiers: core.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
	},
	Literals: core.LiteralConfig{
		True:  "1",
		False: "0",
		Hex:   "X'%s'",
	},

	Comparison: []core.Operator{
		core.OpStartingWith, core.OpNotStartingWith,
		core.OpContaining, core.OpNotContaining,
		core.OpSimilarTo, core.OpNotSimilarTo,
		core.OpIsDistinctFrom, core.OpIsNotDistinctFrom,
	},
	SetOperators: []core.SetOperator{core.SetUnionDistinct},
	JoinTypes:    dialect.NaturalJoinTypes,

	SupportsNullsOrdering: true,
	TableAliasAs:          true,
	Paging:                core.PagingOffsetFetch, // 3.0+
}
