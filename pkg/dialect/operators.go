// Package dialect provides SQL dialect runtime rules.
//
// This file contains vocabulary definitions that form the "toolbox" of
// reusable operator configurations. These can be composed into any dialect.
package dialect

import (
	"cmp"
	"maps"
	"slices"

	"github.com/leapstack-labs/sqlforge/pkg/core"
)

// ANSIOperators contains the comparison operators every supported dialect accepts.
var ANSIOperators = []core.Operator{
	core.OpEQ, core.OpNE, core.OpLT, core.OpLE, core.OpGT, core.OpGE,
	core.OpLike, core.OpNotLike,
	core.OpIn, core.OpNotIn,
	core.OpBetween, core.OpNotBetween,
	core.OpIs, core.OpIsNot,
}

// DistinctFromOperators are the SQL:1999 null-safe comparisons.
var DistinctFromOperators = []core.Operator{
	core.OpIsDistinctFrom, core.OpIsNotDistinctFrom,
}

// ANSISetOperators contains the set operators every supported dialect accepts.
var ANSISetOperators = []core.SetOperator{
	core.SetUnion, core.SetUnionAll,
}

// SetOperatorsAll contains the full SQL:2003 set operator family.
var SetOperatorsAll = []core.SetOperator{
	core.SetUnion, core.SetUnionAll, core.SetUnionDistinct,
	core.SetIntersect, core.SetIntersectAll,
	core.SetExcept, core.SetExceptAll,
}

// ANSIConnectors contains the standard predicate connectors.
var ANSIConnectors = []core.Connector{
	core.ConnectorAnd, core.ConnectorOr,
}

func sortedKeys[K cmp.Ordered](m map[K]struct{}) []K {
	return slices.Sorted(maps.Keys(m))
}
