// Package dialect provides SQL dialect runtime rules.
//
// This file contains join type definitions that form the "toolbox" of
// reusable join configurations. These can be composed into any dialect.
package dialect

import "github.com/leapstack-labs/sqlforge/pkg/core"

// ANSIJoinTypes contains standard SQL join types.
var ANSIJoinTypes = core.ANSIJoinTypes

// NaturalJoinTypes contains the NATURAL join family.
var NaturalJoinTypes = []core.JoinType{
	core.JoinNatural,
	core.JoinNaturalLeft, core.JoinNaturalLeftOuter,
	core.JoinNaturalRight, core.JoinNaturalRightOuter,
	core.JoinNaturalFull,
	core.JoinNaturalInner,
}
