// Package sqlite provides the SQLite SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package sqlite

import (
	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

// Config is the SQLite dialect configuration.
var Config = &core.DialectConfig{
	Name: "sqlite",
	Identifiers: core.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
	},
	// SQLite has no binary literal; bit fields render as integers.
	Literals: core.LiteralConfig{
		True:  "1",
		False: "0",
		Hex:   "X'%s'",
	},

	Comparison: []core.Operator{
		core.OpGlob, core.OpNotGlob,
		core.OpRegexp, core.OpNotRegexp,
		core.OpIsDistinctFrom, core.OpIsNotDistinctFrom, // 3.39+
	},
	SetOperators: []core.SetOperator{core.SetIntersect, core.SetExcept},
	JoinTypes:    dialect.NaturalJoinTypes,

	SupportsNullsOrdering: true, // 3.30+
	TableAliasAs:          true,
	Paging:                core.PagingLimitOffset,
}
