// Package ansi provides the base ANSI SQL dialect.
//
// It carries the SQL:1992 reserved words, double-quoted identifiers and the
// full standard vocabulary. Callers with no better knowledge of their target
// database render through this dialect.
package ansi

import (
	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// Config is the ANSI dialect configuration.
var Config = &core.DialectConfig{
	Name: "ansi",
	Identifiers: core.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
	},
	Literals: core.LiteralConfig{
		True:  "1",
		False: "0",
		Hex:   "X'%s'",
		Bits:  "B'%s'",
	},
	Comparison:            dialect.DistinctFromOperators,
	SetOperators:          dialect.SetOperatorsAll,
	JoinTypes:             dialect.NaturalJoinTypes,
	SupportsNullsOrdering: true,
	TableAliasAs:          true,
	Paging:                core.PagingLimitOffset,
}

// ANSI is the base ANSI SQL dialect.
var ANSI = dialect.New(Config).
	Operators(dialect.ANSIOperators...).
	JoinTypes(dialect.ANSIJoinTypes...).
	Connectors(dialect.ANSIConnectors...).
	Build()
