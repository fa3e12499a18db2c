// Package mysql provides the MySQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package mysql

import "github.com/leapstack-labs/sqlforge/pkg/core"

// Config is the MySQL dialect configuration.
var Config = &core.DialectConfig{
	Name: "mysql",
	Identifiers: core.IdentifierConfig{
		Quote:    "`",
		QuoteEnd: "`",
	},
	Literals: core.LiteralConfig{
		True:   "1",
		False:  "0",
		Hex:    "x'%s'",
		Bits:   "b'%s'",
		Escape: core.EscapeBackslash, // NO_BACKSLASH_ESCAPES is off by default
	},

	Comparison: []core.Operator{
		core.OpNullSafeEQ,
		core.OpRegexp, core.OpNotRegexp,
		core.OpRLike, core.OpNotRLike,
	},
	SetOperators: []core.SetOperator{
		core.SetUnionDistinct,
		core.SetIntersect, core.SetExcept, // 8.0.31+
	},
	// MySQL has no FULL [OUTER] JOIN
	JoinTypes: []core.JoinType{
		core.JoinInner, core.JoinCross,
		core.JoinLeft, core.JoinLeftOuter,
		core.JoinRight, core.JoinRightOuter,
		core.JoinNatural,
		core.JoinNaturalLeft, core.JoinNaturalLeftOuter,
		core.JoinNaturalRight, core.JoinNaturalRightOuter,
		core.JoinNaturalInner,
	},
	Connectors: []core.Connector{core.ConnectorXor},

	TableAliasAs: true,
	Paging:       core.PagingLimitOffset,
}
