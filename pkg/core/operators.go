package core

import "strings"

// Operator is a comparison operator usable in WHERE, HAVING and ON predicates.
type Operator string

// Comparison operators. Each dialect allows a subset of these.
const (
	OpEQ                Operator = "="
	OpNE                Operator = "<>"
	OpLT                Operator = "<"
	OpLE                Operator = "<="
	OpGT                Operator = ">"
	OpGE                Operator = ">="
	OpNullSafeEQ        Operator = "<=>"
	OpNotLT             Operator = "!<"
	OpNotGT             Operator = "!>"
	OpLike              Operator = "LIKE"
	OpNotLike           Operator = "NOT LIKE"
	OpILike             Operator = "ILIKE"
	OpNotILike          Operator = "NOT ILIKE"
	OpSimilarTo         Operator = "SIMILAR TO"
	OpNotSimilarTo      Operator = "NOT SIMILAR TO"
	OpRegexMatch        Operator = "~"
	OpRegexIMatch       Operator = "~*"
	OpNotRegexMatch     Operator = "!~"
	OpNotRegexIMatch    Operator = "!~*"
	OpRegexp            Operator = "REGEXP"
	OpNotRegexp         Operator = "NOT REGEXP"
	OpRLike             Operator = "RLIKE"
	OpNotRLike          Operator = "NOT RLIKE"
	OpGlob              Operator = "GLOB"
	OpNotGlob           Operator = "NOT GLOB"
	OpStartingWith      Operator = "STARTING WITH"
	OpNotStartingWith   Operator = "NOT STARTING WITH"
	OpContaining        Operator = "CONTAINING"
	OpNotContaining     Operator = "NOT CONTAINING"
	OpIn                Operator = "IN"
	OpNotIn             Operator = "NOT IN"
	OpBetween           Operator = "BETWEEN"
	OpNotBetween        Operator = "NOT BETWEEN"
	OpIs                Operator = "IS"
	OpIsNot             Operator = "IS NOT"
	OpIsDistinctFrom    Operator = "IS DISTINCT FROM"
	OpIsNotDistinctFrom Operator = "IS NOT DISTINCT FROM"
)

var operators = map[Operator]struct{}{
	OpEQ: {}, OpNE: {}, OpLT: {}, OpLE: {}, OpGT: {}, OpGE: {},
	OpNullSafeEQ: {}, OpNotLT: {}, OpNotGT: {},
	OpLike: {}, OpNotLike: {}, OpILike: {}, OpNotILike: {},
	OpSimilarTo: {}, OpNotSimilarTo: {},
	OpRegexMatch: {}, OpRegexIMatch: {}, OpNotRegexMatch: {}, OpNotRegexIMatch: {},
	OpRegexp: {}, OpNotRegexp: {}, OpRLike: {}, OpNotRLike: {},
	OpGlob: {}, OpNotGlob: {},
	OpStartingWith: {}, OpNotStartingWith: {}, OpContaining: {}, OpNotContaining: {},
	OpIn: {}, OpNotIn: {}, OpBetween: {}, OpNotBetween: {},
	OpIs: {}, OpIsNot: {}, OpIsDistinctFrom: {}, OpIsNotDistinctFrom: {},
}

// operatorAliases maps alternative spellings to their canonical operator.
var operatorAliases = map[string]Operator{
	"!=": OpNE,
	"==": OpEQ,
}

// ParseOperator normalizes s and reports whether it names a known operator.
func ParseOperator(s string) (Operator, bool) {
	n := Normalize(s)
	if op, ok := operatorAliases[n]; ok {
		return op, true
	}
	op := Operator(n)
	_, ok := operators[op]
	return op, ok
}

// IsRange reports whether op takes a two-element range operand.
func (op Operator) IsRange() bool {
	return op == OpBetween || op == OpNotBetween
}

// IsMembership reports whether op takes a list operand.
func (op Operator) IsMembership() bool {
	return op == OpIn || op == OpNotIn
}

// IsPattern reports whether op is a LIKE-style pattern match.
func (op Operator) IsPattern() bool {
	return op == OpLike || op == OpNotLike
}

// SetOperator combines two SELECT statements.
type SetOperator string

// Set operators.
const (
	SetUnion         SetOperator = "UNION"
	SetUnionAll      SetOperator = "UNION ALL"
	SetUnionDistinct SetOperator = "UNION DISTINCT"
	SetIntersect     SetOperator = "INTERSECT"
	SetIntersectAll  SetOperator = "INTERSECT ALL"
	SetExcept        SetOperator = "EXCEPT"
	SetExceptAll     SetOperator = "EXCEPT ALL"
	SetMinus         SetOperator = "MINUS"
)

var setOperators = map[SetOperator]struct{}{
	SetUnion: {}, SetUnionAll: {}, SetUnionDistinct: {},
	SetIntersect: {}, SetIntersectAll: {},
	SetExcept: {}, SetExceptAll: {}, SetMinus: {},
}

// ParseSetOperator normalizes s and reports whether it names a set operator.
func ParseSetOperator(s string) (SetOperator, bool) {
	op := SetOperator(Normalize(s))
	_, ok := setOperators[op]
	return op, ok
}

// Connector joins two predicates.
type Connector string

// Connectors.
const (
	ConnectorAnd Connector = "AND"
	ConnectorOr  Connector = "OR"
	ConnectorXor Connector = "XOR"
)

// ParseConnector normalizes s and reports whether it names a connector.
func ParseConnector(s string) (Connector, bool) {
	switch c := Connector(Normalize(s)); c {
	case ConnectorAnd, ConnectorOr, ConnectorXor:
		return c, true
	default:
		return c, false
	}
}

// Parenthesis opens or closes an explicit predicate group.
type Parenthesis string

// Parentheses.
const (
	ParenOpen  Parenthesis = "("
	ParenClose Parenthesis = ")"
)

// ParseParenthesis reports whether s is a grouping parenthesis.
func ParseParenthesis(s string) (Parenthesis, bool) {
	switch p := Parenthesis(strings.TrimSpace(s)); p {
	case ParenOpen, ParenClose:
		return p, true
	default:
		return p, false
	}
}

// Direction is an ORDER BY direction.
type Direction string

// Directions.
const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection returns the direction named by s, defaulting to Asc.
func ParseDirection(s string) Direction {
	if Direction(Normalize(s)) == Desc {
		return Desc
	}
	return Asc
}

// NullsPosition places NULLs in an ORDER BY.
type NullsPosition string

// Nulls positions. NullsDefault leaves placement to the database.
const (
	NullsDefault NullsPosition = "DEFAULT"
	NullsFirst   NullsPosition = "FIRST"
	NullsLast    NullsPosition = "LAST"
)

// ParseNullsPosition returns the position named by s. Unrecognized input
// yields NullsDefault.
func ParseNullsPosition(s string) NullsPosition {
	n := strings.TrimPrefix(Normalize(s), "NULLS ")
	switch p := NullsPosition(n); p {
	case NullsFirst, NullsLast:
		return p
	default:
		return NullsDefault
	}
}

// Normalize uppercases s and collapses whitespace runs into single spaces.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}
