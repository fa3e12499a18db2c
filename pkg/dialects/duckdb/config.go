// Package duckdb provides the DuckDB SQL dialect definition.
// This package is pure Go with no database driver dependencies,
// making it suitable for use in tools that need dialect information
// without the overhead of database connections.
package duckdb

import (
	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

// Config is the DuckDB dialect configuration.
var Config = &core.DialectConfig{
	Name: "duckdb",
	Identifiers: core.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
	},
	Literals: core.LiteralConfig{
		True:  "TRUE",
		False: "FALSE",
		Hex:   "from_hex('%s')",
		Bits:  "'%s'::BITSTRING",
	},

	Comparison: []core.Operator{
		core.OpILike, core.OpNotILike,
		core.OpSimilarTo, core.OpNotSimilarTo,
		core.OpGlob, core.OpNotGlob,
		core.OpIsDistinctFrom, core.OpIsNotDistinctFrom,
	},
	SetOperators: dialect.SetOperatorsAll,
	JoinTypes:    dialect.NaturalJoinTypes,

	SupportsNullsOrdering: true,
	TableAliasAs:          true,
	Paging:                core.PagingLimitOffset,
}
