package dialect

import (
	"testing"

	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDialect() *Dialect {
	return NewDialect("test").
		Operators(ANSIOperators...).
		SetOperators(ANSISetOperators...).
		JoinTypes(ANSIJoinTypes...).
		Connectors(ANSIConnectors...).
		WithKeywords("select", "FROM", "Where").
		Build()
}

func TestIsKeyword(t *testing.T) {
	d := testDialect()

	tests := []struct {
		word string
		want bool
	}{
		{"SELECT", true},
		{"select", true}, // case insensitive
		{"from", true},
		{"WHERE", true},
		{"users", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, d.IsKeyword(tt.word))
		})
	}
}

func TestIsKeyword_EmbeddedList(t *testing.T) {
	d := NewDialect("postgres").Build()
	assert.True(t, d.IsKeyword("ilike"))
	assert.True(t, d.IsKeyword("TABLESAMPLE"))

	old := NewDialect("postgres").KeywordVersion("9.4").Build()
	assert.False(t, old.IsKeyword("TABLESAMPLE"))
}

func TestKeywords_BadVersion(t *testing.T) {
	d := NewDialect("postgres").KeywordVersion("6.0").Build()

	_, err := d.Keywords()
	require.Error(t, err)
	assert.False(t, d.IsKeyword("SELECT"))
}

func TestOperator(t *testing.T) {
	d := testDialect()

	tests := []struct {
		in      string
		want    core.Operator
		wantErr bool
	}{
		{"=", core.OpEQ, false},
		{"!=", core.OpNE, false},
		{"not  like", core.OpNotLike, false},
		{"between", core.OpBetween, false},
		{"ILIKE", "", true}, // known operator, not in this dialect
		{"DROP", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := d.Operator(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, core.ErrInvalidEnumerationMember)
				var enumErr *core.EnumerationError
				require.ErrorAs(t, err, &enumErr)
				assert.Equal(t, "COMPARISON", enumErr.Group)
				assert.Equal(t, "test", enumErr.Dialect)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVocabulary(t *testing.T) {
	d := testDialect()

	op, err := d.SetOperator("union all")
	require.NoError(t, err)
	assert.Equal(t, core.SetUnionAll, op)
	_, err = d.SetOperator("MINUS")
	require.ErrorIs(t, err, core.ErrInvalidEnumerationMember)

	jt, err := d.JoinType("left outer")
	require.NoError(t, err)
	assert.Equal(t, core.JoinLeftOuter, jt)
	_, err = d.JoinType("NATURAL")
	require.ErrorIs(t, err, core.ErrInvalidEnumerationMember)

	c, err := d.Connector("or")
	require.NoError(t, err)
	assert.Equal(t, core.ConnectorOr, c)
	_, err = d.Connector("XOR")
	require.ErrorIs(t, err, core.ErrInvalidEnumerationMember)

	p, err := d.Parenthesis(" ( ")
	require.NoError(t, err)
	assert.Equal(t, core.ParenOpen, p)
	_, err = d.Parenthesis("[")
	require.ErrorIs(t, err, core.ErrInvalidEnumerationMember)
}

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		quote, end string
		in         string
		want       string
	}{
		{"double quote", `"`, `"`, "users", `"users"`},
		{"backtick", "`", "`", "users", "`users`"},
		{"brackets", "[", "]", "users", "[users]"},
		{"escape end", "[", "]", "a]b", "[a]]b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDialect("test").Identifiers(tt.quote, tt.end).Build()
			assert.Equal(t, tt.want, d.QuoteIdentifier(tt.in))
		})
	}
}

func TestQuoteString(t *testing.T) {
	std := NewDialect("test").Build()
	assert.Equal(t, `'it''s'`, std.QuoteString("it's"))
	assert.Equal(t, `'a\b'`, std.QuoteString(`a\b`))

	mysql := NewDialect("test").Literals(core.LiteralConfig{Escape: core.EscapeBackslash}).Build()
	assert.Equal(t, `'it\'s'`, mysql.QuoteString("it's"))
	assert.Equal(t, `'a\\b\n'`, mysql.QuoteString("a\\b\n"))
}

func TestLiterals(t *testing.T) {
	d := New(&core.DialectConfig{
		Name: "test",
		Literals: core.LiteralConfig{
			True:  "'t'",
			False: "'f'",
			Hex:   `'\x%s'::bytea`,
			Bits:  "B'%s'",
		},
	}).Build()

	assert.Equal(t, "'t'", d.Boolean(true))
	assert.Equal(t, "'f'", d.Boolean(false))
	assert.Equal(t, `'\xDEAD'::bytea`, d.HexLiteral([]byte{0xde, 0xad}))
	assert.Equal(t, "B'00101'", d.BitLiteral(5, 5))
	assert.Equal(t, "B'01'", d.BitLiteral(5, 2))
	assert.Equal(t, "B'101'", d.BitLiteral(5, 0))

	plain := NewDialect("plain").Build()
	assert.Equal(t, "1", plain.Boolean(true))
	assert.Equal(t, "X'0A'", plain.HexLiteral([]byte{10}))
	assert.Equal(t, "5", plain.BitLiteral(5, 8))
}

func TestNullsOrdering(t *testing.T) {
	with := NewDialect("test").NullsOrdering(true).Build()
	without := NewDialect("test").Build()

	assert.Equal(t, "NULLS FIRST", with.NullsOrdering(core.NullsFirst))
	assert.Equal(t, "NULLS LAST", with.NullsOrdering(core.NullsLast))
	assert.Empty(t, with.NullsOrdering(core.NullsDefault))
	assert.Empty(t, without.NullsOrdering(core.NullsLast))
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := &core.DialectConfig{
		Name:                  "rt",
		Identifiers:           core.IdentifierConfig{Quote: "`"},
		Comparison:            []core.Operator{core.OpEQ, core.OpRegexp},
		SetOperators:          []core.SetOperator{core.SetUnion},
		JoinTypes:             []core.JoinType{core.JoinInner},
		Connectors:            []core.Connector{core.ConnectorAnd, core.ConnectorXor},
		SupportsNullsOrdering: true,
		Paging:                core.PagingOffsetFetch,
		PagingRequiresOrder:   true,
	}
	d := New(cfg).Build()

	got := d.Config()
	assert.Equal(t, "`", got.Identifiers.QuoteEnd)
	assert.Equal(t, []core.Operator{core.OpEQ, core.OpRegexp}, got.Comparison)
	assert.Equal(t, []core.Connector{core.ConnectorAnd, core.ConnectorXor}, got.Connectors)
	assert.True(t, got.SupportsNullsOrdering)
	assert.False(t, got.TableAliasAs)
	assert.Equal(t, core.PagingOffsetFetch, got.Paging)
	assert.True(t, got.PagingRequiresOrder)
}

func TestRegistry(t *testing.T) {
	d := NewDialect("Registry_Test").Build()
	Register(d)

	got, ok := Get("registry_test")
	require.True(t, ok)
	assert.Same(t, d, got)
	assert.Contains(t, List(), "registry_test")

	_, err := Lookup("")
	require.ErrorIs(t, err, ErrDialectRequired)

	_, err = Lookup("nope")
	require.ErrorIs(t, err, ErrUnknownDialect)
	assert.Contains(t, err.Error(), "registry_test")
}
