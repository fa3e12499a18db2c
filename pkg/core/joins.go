package core

// JoinType names the kind of a JOIN clause.
type JoinType string

// Join types. Each dialect allows a subset of these.
const (
	JoinInner             JoinType = "INNER"
	JoinLeft              JoinType = "LEFT"
	JoinLeftOuter         JoinType = "LEFT OUTER"
	JoinRight             JoinType = "RIGHT"
	JoinRightOuter        JoinType = "RIGHT OUTER"
	JoinFull              JoinType = "FULL"
	JoinFullOuter         JoinType = "FULL OUTER"
	JoinCross             JoinType = "CROSS"
	JoinNatural           JoinType = "NATURAL"
	JoinNaturalLeft       JoinType = "NATURAL LEFT"
	JoinNaturalLeftOuter  JoinType = "NATURAL LEFT OUTER"
	JoinNaturalRight      JoinType = "NATURAL RIGHT"
	JoinNaturalRightOuter JoinType = "NATURAL RIGHT OUTER"
	JoinNaturalFull       JoinType = "NATURAL FULL"
	JoinNaturalInner      JoinType = "NATURAL INNER"
)

var joinTypes = map[JoinType]struct{}{
	JoinInner: {}, JoinLeft: {}, JoinLeftOuter: {}, JoinRight: {}, JoinRightOuter: {},
	JoinFull: {}, JoinFullOuter: {}, JoinCross: {},
	JoinNatural: {}, JoinNaturalLeft: {}, JoinNaturalLeftOuter: {},
	JoinNaturalRight: {}, JoinNaturalRightOuter: {}, JoinNaturalFull: {}, JoinNaturalInner: {},
}

// ParseJoinType normalizes s and reports whether it names a join type.
func ParseJoinType(s string) (JoinType, bool) {
	jt := JoinType(Normalize(s))
	_, ok := joinTypes[jt]
	return jt, ok
}

// ANSIJoinTypes contains the join types every supported dialect accepts.
var ANSIJoinTypes = []JoinType{
	JoinInner, JoinLeft, JoinLeftOuter, JoinRight, JoinRightOuter,
	JoinFull, JoinFullOuter, JoinCross,
}
