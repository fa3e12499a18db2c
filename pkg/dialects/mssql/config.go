// Package mssql provides the Microsoft SQL Server (Transact-SQL) dialect definition.
// This package is pure Go with no database driver dependencies.
package mssql

import (
	"github.com/leapstack-labs/sqlforge/pkg/core"
)

// Config is the SQL Server dialect configuration.
var Config = &core.DialectConfig{
	Name: "mssql",
	Identifiers: core.IdentifierConfig{
		Quote:    "[",
		QuoteEnd: "]",
	},
	Literals: core.LiteralConfig{
		True:  "1",
		False: "0",
		Hex:   "0x%s",
	},

	Comparison: []core.Operator{
		core.OpNotLT, core.OpNotGT,
		core.OpIsDistinctFrom, core.OpIsNotDistinctFrom, // 2022+
	},
	SetOperators: []core.SetOperator{core.SetIntersect, core.SetExcept},

	TableAliasAs:        true,
	Paging:              core.PagingOffsetFetch,
	PagingRequiresOrder: true, // OFFSET/FETCH is only valid after ORDER BY
}
