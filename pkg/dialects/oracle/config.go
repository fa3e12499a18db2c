// Package oracle provides the Oracle Database SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package oracle

import (
	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

// Config is the Oracle dialect configuration.
var Config = &core.DialectConfig{
	Name: "oracle",
	Identifiers: core.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
	},
	Literals: core.LiteralConfig{
		True:  "1",
		False: "0",
		Hex:   "HEXTORAW('%s')",
	},

	SetOperators: []core.SetOperator{core.SetIntersect, core.SetMinus},
	JoinTypes:    dialect.NaturalJoinTypes,

	SupportsNullsOrdering: true,
	TableAliasAs:          false, // FROM users u; AS is a syntax error on tables
	Paging:                core.PagingOffsetFetch,
}
