package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  condition
	}{
		{"simple", "age >= 18", condition{column: "age", op: ">=", value: int64(18)}},
		{"connector", "or name = 'O''Brien'", condition{connector: "OR", column: "name", op: "=", value: "O'Brien"}},
		{"null", "deleted_at IS NULL", condition{column: "deleted_at", op: "IS", value: nil}},
		{"multi word operator", "a is not distinct from b", condition{column: "a", op: "IS NOT DISTINCT FROM", value: "b"}},
		{"alias operator", "a != 1.5", condition{column: "a", op: "<>", value: 1.5}},
		{"bool", "active = true", condition{column: "active", op: "=", value: true}},
		{"between and", "x BETWEEN 1 AND 10", condition{column: "x", op: "BETWEEN", value: []any{int64(1), int64(10)}}},
		{"between comma", "x not between 'a', 'b'", condition{column: "x", op: "NOT BETWEEN", value: []any{"a", "b"}}},
		{"in list", "status IN (paid, 'shipped')", condition{column: "status", op: "IN", value: []any{"paid", "shipped"}}},
		{"spaces kept in quotes", "title = 'a  b'", condition{column: "title", op: "=", value: "a  b"}},
		{"open block", "OR (", condition{connector: "OR", paren: "("}},
		{"close block", ")", condition{paren: ")"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCondition(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCondition_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", "  "},
		{"no operator", "age"},
		{"unknown operator", "age ~~ 1"},
		{"missing value", "age ="},
		{"between one value", "x BETWEEN 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCondition(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"NULL", nil},
		{"null", nil},
		{"TRUE", true},
		{"false", false},
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"3.5", 3.5},
		{"'42'", "42"},
		{"''", ""},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseValue(tt.input))
		})
	}
}

func TestParseJoin(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  joinSpec
	}{
		{"default inner", "orders", joinSpec{joinType: "INNER", table: "orders"}},
		{"cross alias", "CROSS regions r", joinSpec{joinType: "CROSS", table: "regions", alias: "r"}},
		{
			"on",
			"left outer orders o ON u.id = o.user_id AND o.status <> u.status",
			joinSpec{joinType: "left outer", table: "orders", alias: "o", on: [][3]string{
				{"u.id", "=", "o.user_id"},
				{"o.status", "<>", "u.status"},
			}},
		},
		{"using", "INNER accounts USING account_id, region", joinSpec{joinType: "INNER", table: "accounts", using: []string{"account_id", "region"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseJoin(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"LEFT", "orders ON a", "orders o USING", "orders o WHERE x"} {
		_, err := parseJoin(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseCombine(t *testing.T) {
	op, stmt, err := parseCombine("union all SELECT * FROM b")
	require.NoError(t, err)
	assert.Equal(t, "UNION ALL", op)
	assert.Equal(t, "SELECT * FROM b", stmt)

	op, stmt, err = parseCombine("EXCEPT SELECT 1")
	require.NoError(t, err)
	assert.Equal(t, "EXCEPT", op)
	assert.Equal(t, "SELECT 1", stmt)

	_, _, err = parseCombine("JOIN SELECT 1")
	assert.Error(t, err)
}

func TestParseOrder(t *testing.T) {
	col, dir, nulls := parseOrder("created_at:desc:last")
	assert.Equal(t, []string{"created_at", "desc", "last"}, []string{col, dir, nulls})

	col, dir, nulls = parseOrder("id")
	assert.Equal(t, []string{"id", "", ""}, []string{col, dir, nulls})
}

func TestCutWords(t *testing.T) {
	words, rest := cutWords("  a  b 'c  d' ", 2)
	assert.Equal(t, []string{"a", "b"}, words)
	assert.Equal(t, "'c  d'", rest)

	words, rest = cutWords("a", 3)
	assert.Equal(t, []string{"a"}, words)
	assert.Empty(t, rest)
}
