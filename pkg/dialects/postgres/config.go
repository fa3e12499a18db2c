// Package postgres provides the PostgreSQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import (
	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

// Config is the PostgreSQL dialect configuration.
// This is pure data - accessible by both Adapter and Builder.
var Config = &core.DialectConfig{
	Name: "postgres",
	Identifiers: core.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
	},
	Literals: core.LiteralConfig{
		True:   "'t'",
		False:  "'f'",
		Hex:    `'\x%s'::bytea`,
		Bits:   "B'%s'",
		Escape: core.EscapeStandard, // standard_conforming_strings = on
	},

	// PostgreSQL-specific comparisons on top of dialect.ANSIOperators
	Comparison: []core.Operator{
		core.OpILike, core.OpNotILike,
		core.OpSimilarTo, core.OpNotSimilarTo,
		core.OpRegexMatch, core.OpRegexIMatch, core.OpNotRegexMatch, core.OpNotRegexIMatch,
		core.OpIsDistinctFrom, core.OpIsNotDistinctFrom,
	},
	SetOperators: dialect.SetOperatorsAll,
	JoinTypes:    dialect.NaturalJoinTypes,

	SupportsNullsOrdering: true,
	TableAliasAs:          true,
	Paging:                core.PagingLimitOffset,
}
