package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlforge/pkg/core"
)

// condition is one parsed --where or --having argument. A condition with a
// paren is a block marker and has no column.
type condition struct {
	connector string
	paren     string
	column    string
	op        string
	value     any
}

// maxOperatorWords is the longest operator spelling, IS NOT DISTINCT FROM.
const maxOperatorWords = 4

// parseCondition parses "[AND|OR|XOR] <column> <operator> <value>" or a
// block marker "[AND|OR|XOR] (" / ")". Words are separated by whitespace.
func parseCondition(s string) (condition, error) {
	var c condition
	rest := strings.TrimSpace(s)

	if head, tail := cutWords(rest, 1); len(head) == 1 {
		if conn, ok := core.ParseConnector(head[0]); ok {
			c.connector = string(conn)
			rest = tail
		}
	}

	if p, ok := core.ParseParenthesis(rest); ok {
		c.paren = string(p)
		return c, nil
	}

	head, tail := cutWords(rest, 1)
	if len(head) == 0 {
		return c, fmt.Errorf("empty condition %q", s)
	}
	c.column = head[0]

	for n := maxOperatorWords; n > 0; n-- {
		words, value := cutWords(tail, n)
		if len(words) < n {
			continue
		}
		op, ok := core.ParseOperator(strings.Join(words, " "))
		if !ok {
			continue
		}
		c.op = string(op)
		v, err := parseOperand(op, value)
		if err != nil {
			return c, fmt.Errorf("condition %q: %w", s, err)
		}
		c.value = v
		return c, nil
	}
	return c, fmt.Errorf("condition %q: no known operator after %q", s, c.column)
}

// parseOperand reads the value side of a condition for op.
func parseOperand(op core.Operator, s string) (any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("missing value")
	}
	switch {
	case op.IsRange():
		words := strings.Fields(s)
		var parts []string
		if len(words) == 3 && strings.EqualFold(words[1], "AND") {
			parts = []string{words[0], words[2]}
		} else {
			parts = splitList(s)
		}
		if len(parts) != 2 {
			return nil, fmt.Errorf("%s needs two values, got %d", op, len(parts))
		}
		return []any{parseValue(parts[0]), parseValue(parts[1])}, nil
	case op.IsMembership():
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
		parts := splitList(s)
		values := make([]any, len(parts))
		for i, p := range parts {
			values[i] = parseValue(p)
		}
		return values, nil
	default:
		return parseValue(s), nil
	}
}

// parseValue converts a command line word into a Go value: NULL, booleans,
// integers and floats are typed, 'quoted' text has its quotes removed, and
// anything else is a string.
func parseValue(s string) any {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}
	switch strings.ToUpper(s) {
	case "NULL":
		return nil
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// cutWords splits the first n whitespace separated words off s and returns
// them with the untouched remainder.
func cutWords(s string, n int) ([]string, string) {
	var words []string
	for len(words) < n {
		s = strings.TrimLeft(s, " \t\r\n")
		if s == "" {
			break
		}
		end := strings.IndexAny(s, " \t\r\n")
		if end < 0 {
			end = len(s)
		}
		words = append(words, s[:end])
		s = s[end:]
	}
	return words, strings.TrimSpace(s)
}

// joinSpec is one parsed --join argument.
type joinSpec struct {
	joinType string
	table    string
	alias    string
	on       [][3]string
	using    []string
}

var joinWords = map[string]bool{
	"INNER": true, "LEFT": true, "RIGHT": true, "FULL": true,
	"OUTER": true, "CROSS": true, "NATURAL": true,
}

// parseJoin parses "[TYPE...] <table> [alias] [ON a = b [AND c = d] | USING x,y]".
// The join type defaults to INNER.
func parseJoin(s string) (joinSpec, error) {
	var j joinSpec
	fields := strings.Fields(s)
	i := 0
	for i < len(fields) && joinWords[strings.ToUpper(fields[i])] {
		i++
	}
	j.joinType = strings.Join(fields[:i], " ")
	if j.joinType == "" {
		j.joinType = string(core.JoinInner)
	}
	if i >= len(fields) {
		return j, fmt.Errorf("join %q: missing table", s)
	}
	j.table = fields[i]
	i++
	if i < len(fields) && !isConstraintWord(fields[i]) {
		j.alias = fields[i]
		i++
	}
	if i >= len(fields) {
		return j, nil
	}

	kind := strings.ToUpper(fields[i])
	rest := fields[i+1:]
	switch kind {
	case "ON":
		for _, part := range splitOnAnd(rest) {
			if len(part) < 3 {
				return j, fmt.Errorf("join %q: ON needs <column> <operator> <column>", s)
			}
			j.on = append(j.on, [3]string{part[0], strings.Join(part[1:len(part)-1], " "), part[len(part)-1]})
		}
	case "USING":
		j.using = splitList(strings.Join(rest, ","))
		if len(j.using) == 0 {
			return j, fmt.Errorf("join %q: USING needs at least one column", s)
		}
	default:
		return j, fmt.Errorf("join %q: unexpected %q", s, fields[i])
	}
	return j, nil
}

func isConstraintWord(s string) bool {
	u := strings.ToUpper(s)
	return u == "ON" || u == "USING"
}

func splitOnAnd(words []string) [][]string {
	var parts [][]string
	var cur []string
	for _, w := range words {
		if strings.EqualFold(w, "AND") {
			parts = append(parts, cur)
			cur = nil
			continue
		}
		cur = append(cur, w)
	}
	return append(parts, cur)
}

// parseCombine parses "<set operator> <SELECT statement>", matching the
// longest operator spelling first.
func parseCombine(s string) (string, string, error) {
	for n := 2; n > 0; n-- {
		words, rest := cutWords(s, n)
		if len(words) < n {
			continue
		}
		if op, ok := core.ParseSetOperator(strings.Join(words, " ")); ok {
			return string(op), rest, nil
		}
	}
	return "", "", fmt.Errorf("combine %q: expected a set operator such as UNION ALL", s)
}

// parseOrder parses "column[:direction[:nulls]]".
func parseOrder(s string) (column, direction, nulls string) {
	parts := strings.SplitN(s, ":", 3)
	column = parts[0]
	if len(parts) > 1 {
		direction = parts[1]
	}
	if len(parts) > 2 {
		nulls = parts[2]
	}
	return column, direction, nulls
}
