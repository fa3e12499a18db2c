package query_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/leapstack-labs/sqlforge/internal/testutil"
	"github.com/leapstack-labs/sqlforge/pkg/adapter"
	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
	"github.com/leapstack-labs/sqlforge/pkg/dialects/all"
	"github.com/leapstack-labs/sqlforge/pkg/dialects/mssql"
	"github.com/leapstack-labs/sqlforge/pkg/dialects/mysql"
	"github.com/leapstack-labs/sqlforge/pkg/dialects/oracle"
	"github.com/leapstack-labs/sqlforge/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlforge/pkg/prepare"
	"github.com/leapstack-labs/sqlforge/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_EndToEnd(t *testing.T) {
	s := query.New(postgres.Postgres)
	require.NoError(t, s.Column("id", ""))
	require.NoError(t, s.From("users", ""))
	require.NoError(t, s.Where("age", ">=", 18))
	require.NoError(t, s.OrderBy("id", "ASC", ""))
	s.Limit(10)

	assert.Equal(t, `SELECT "id" FROM "users" WHERE "age" >= 18 ORDER BY "id" ASC LIMIT 10;`, s.Statement(true))
}

func TestSelect_IdempotentRender(t *testing.T) {
	s := query.New(postgres.Postgres)
	require.NoError(t, s.From("users", "u"))
	require.NoError(t, s.Where("name", "LIKE", "a%"))

	first := s.Statement(true)
	assert.Equal(t, first, s.Statement(true))
	assert.Equal(t, first, s.String())
}

func TestSelect_Where(t *testing.T) {
	tests := []struct {
		name     string
		col      any
		op       string
		value    any
		expected string
	}{
		{"null equals", "x", "=", nil, `"x" IS NULL`},
		{"null not equals", "x", "<>", nil, `"x" IS NOT NULL`},
		{"null bang equals", "x", "!=", nil, `"x" IS NOT NULL`},
		{"between", "x", "BETWEEN", []int{1, 10}, `"x" BETWEEN 1 AND 10`},
		{"not between array", "x", "not between", [2]string{"2024-01-01", "2024-12-31"}, `"x" NOT BETWEEN '2024-01-01' AND '2024-12-31'`},
		{"in", "status", "IN", []string{"new", "open"}, `"status" IN ('new', 'open')`},
		{"not in ints", "id", "NOT IN", []any{1, 2, 3}, `"id" NOT IN (1, 2, 3)`},
		{"like escape", "name", "LIKE", `50\%`, `"name" LIKE '50\%' ESCAPE '\'`},
		{"not like", "name", "NOT LIKE", "a%", `"name" NOT LIKE 'a%' ESCAPE '\'`},
		{"string quoted", "name", "=", "o'brien", `"name" = 'o''brien'`},
		{"boolean", "active", "=", true, `"active" = 't'`},
		{"float", "score", ">", 1.5, `"score" > 1.5`},
		{"qualified column", "u.age", "<", 30, `"u"."age" < 30`},
		{"raw value", "created", "<", prepare.Raw("now()"), `"created" < now()`},
		{"injection stripped", "DROP;table", "=", 1, `"DROPtable" = 1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := query.New(postgres.Postgres)
			require.NoError(t, s.From("t", ""))
			require.NoError(t, s.Where(tt.col, tt.op, tt.value))
			assert.Equal(t, `SELECT * FROM "t" WHERE `+tt.expected, s.Statement(false))
		})
	}
}

func TestSelect_WhereErrors(t *testing.T) {
	tests := []struct {
		name      string
		op        string
		value     any
		connector []string
		target    error
	}{
		{"between scalar", "BETWEEN", 5, nil, core.ErrInvalidArgument},
		{"between three", "BETWEEN", []int{1, 2, 3}, nil, core.ErrInvalidArgument},
		{"between nil", "BETWEEN", nil, nil, core.ErrInvalidArgument},
		{"in scalar", "IN", 5, nil, core.ErrInvalidArgument},
		{"in string", "IN", "abc", nil, core.ErrInvalidArgument},
		{"in bytes", "IN", []byte("ab"), nil, core.ErrInvalidArgument},
		{"in empty", "IN", []int{}, nil, core.ErrInvalidArgument},
		{"unknown operator", "DROP", 1, nil, core.ErrInvalidEnumerationMember},
		{"unknown connector", "=", 1, []string{"NAND"}, core.ErrInvalidEnumerationMember},
		{"unsupported value", "=", struct{}{}, nil, core.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := query.New(postgres.Postgres)
			err := s.Where("x", tt.op, tt.value, tt.connector...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Empty(t, s.Document().Where, "failed calls leave the document untouched")
		})
	}
}

func TestSelect_NilSubSelect(t *testing.T) {
	var sub *query.Select

	tests := []struct {
		name string
		call func(s *query.Select) error
	}{
		{"from", func(s *query.Select) error { return s.From(sub, "") }},
		{"column", func(s *query.Select) error { return s.Column(sub, "") }},
		{"where value", func(s *query.Select) error { return s.Where("id", "IN", sub) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := query.New(postgres.Postgres)
			require.NotPanics(t, func() {
				assert.ErrorIs(t, tt.call(s), core.ErrInvalidArgument)
			})
		})
	}
}

func TestSelect_OperatorEnumeration(t *testing.T) {
	for _, name := range all.Names {
		t.Run(name, func(t *testing.T) {
			d, ok := dialect.Get(name)
			require.True(t, ok)
			err := query.New(d).Where("x", "DROP", 1)
			assert.ErrorIs(t, err, core.ErrInvalidEnumerationMember)
		})
	}
}

func TestSelect_Blocks(t *testing.T) {
	s := query.New(postgres.Postgres)
	require.NoError(t, s.From("t", ""))
	require.NoError(t, s.Where("a", "=", 1))
	require.NoError(t, s.WhereBlock("(", "OR"))
	require.NoError(t, s.Where("b", "=", 2))
	require.NoError(t, s.Where("c", "=", 3, "OR"))
	require.NoError(t, s.WhereBlock(")"))

	assert.Equal(t, `SELECT * FROM "t" WHERE "a" = 1 OR ("b" = 2 OR "c" = 3)`, s.Statement(false))

	err := s.WhereBlock("[")
	assert.ErrorIs(t, err, core.ErrInvalidEnumerationMember)
}

func TestSelect_MySQLConnector(t *testing.T) {
	s := query.New(mysql.MySQL)
	require.NoError(t, s.From("t", ""))
	require.NoError(t, s.Where("a", "=", 1))
	require.NoError(t, s.Where("b", "=", "it's", "xor"))

	assert.Equal(t, "SELECT * FROM `t` WHERE `a` = 1 XOR `b` = 'it\\'s'", s.Statement(false))
	assert.ErrorIs(t, query.New(postgres.Postgres).Where("a", "=", 1, "XOR"), core.ErrInvalidEnumerationMember)
}

func TestSelect_Having(t *testing.T) {
	s := query.New(postgres.Postgres)
	require.NoError(t, s.From("orders", ""))

	err := s.Having("x", "=", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBuildOrder)
	assert.ErrorIs(t, s.HavingBlock("("), core.ErrBuildOrder)

	require.NoError(t, s.GroupBy("x"))
	require.NoError(t, s.Having("x", "=", 1))
	require.NoError(t, s.HavingBlock("(", "OR"))
	require.NoError(t, s.Having("y", ">", 2))
	require.NoError(t, s.HavingBlock(")"))

	assert.Equal(t, `SELECT * FROM "orders" GROUP BY "x" HAVING "x" = 1 OR ("y" > 2)`, s.Statement(false))
}

func TestSelect_GroupBy(t *testing.T) {
	s := query.New(postgres.Postgres)
	require.NoError(t, s.GroupBy("a"))
	require.NoError(t, s.GroupBy([]string{"b", "t.c"}, "d"))

	assert.Equal(t, []string{`"a"`, `"b"`, `"t"."c"`, `"d"`}, s.Document().GroupBy)
	assert.ErrorIs(t, s.GroupBy(42), core.ErrInvalidArgument)
}

func TestSelect_Columns(t *testing.T) {
	s := query.New(postgres.Postgres)
	require.NoError(t, s.Column("id", ""))
	require.NoError(t, s.Column("u.name", "user name"))
	require.NoError(t, s.Column("t.*", ""))
	require.NoError(t, s.Column(prepare.Raw("COUNT(*)"), "total"))
	s.Distinct(true)

	assert.Equal(t, `SELECT DISTINCT "id", "u"."name" AS "user name", "t".*, COUNT(*) AS "total"`, s.Statement(false))

	require.NoError(t, s.All("u"))
	s.Distinct(false)
	assert.Equal(t, `SELECT "u".*`, s.Statement(false))

	require.NoError(t, s.Column("id", ""))
	assert.Equal(t, `SELECT "id"`, s.Statement(false), "columns take precedence over the wildcard")

	assert.ErrorIs(t, s.Column(3.14, ""), core.ErrInvalidArgument)
}

func TestSelect_From(t *testing.T) {
	tests := []struct {
		name     string
		d        *dialect.Dialect
		table    any
		alias    string
		expected string
	}{
		{"plain", postgres.Postgres, "users", "", `SELECT * FROM "users"`},
		{"schema", postgres.Postgres, "public.users", "u", `SELECT * FROM "public"."users" AS "u"`},
		{"oracle alias without AS", oracle.Oracle, "users", "u", `SELECT * FROM "users" "u"`},
		{"mssql brackets", mssql.MSSQL, "dbo.users", "", `SELECT * FROM [dbo].[users]`},
		{"sub-select string", postgres.Postgres, "SELECT 1", "one", `SELECT * FROM (SELECT 1) AS "one"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := query.New(tt.d)
			require.NoError(t, s.From(tt.table, tt.alias))
			assert.Equal(t, tt.expected, s.Statement(false))
		})
	}
}

func TestSelect_FromOverwrites(t *testing.T) {
	s := query.New(postgres.Postgres)
	require.NoError(t, s.From("a", ""))
	require.NoError(t, s.From("b", ""))
	assert.Equal(t, `SELECT * FROM "b"`, s.Statement(false))
}

func TestSelect_FromSubStatement(t *testing.T) {
	inner := query.New(postgres.Postgres)
	require.NoError(t, inner.From("users", ""))
	require.NoError(t, inner.Where("active", "=", true))

	outer := query.New(postgres.Postgres)
	require.NoError(t, outer.From(inner, "active_users"))
	require.NoError(t, outer.Where("id", "IN", inner))

	assert.Equal(t,
		`SELECT * FROM (SELECT * FROM "users" WHERE "active" = 't') AS "active_users" WHERE "id" IN (SELECT * FROM "users" WHERE "active" = 't')`,
		outer.Statement(false))
}

func TestSelect_Joins(t *testing.T) {
	s := query.New(postgres.Postgres)
	require.NoError(t, s.From("users", "u"))
	require.NoError(t, s.Join("left", "orders", "o"))
	require.NoError(t, s.On("u.id", "=", "o.user_id"))
	require.NoError(t, s.On("o.status", "<>", "u.status"))
	require.NoError(t, s.Join("INNER", "accounts", ""))
	require.NoError(t, s.Using("account_id"))
	require.NoError(t, s.Using("region"))
	require.NoError(t, s.Join("cross", "regions", ""))

	assert.Equal(t,
		`SELECT * FROM "users" AS "u"`+
			` LEFT JOIN "orders" AS "o" ON "u"."id" = "o"."user_id" AND "o"."status" <> "u"."status"`+
			` INNER JOIN "accounts" USING ("account_id", "region")`+
			` CROSS JOIN "regions"`,
		s.Statement(false))
}

func TestSelect_JoinErrors(t *testing.T) {
	t.Run("on before join", func(t *testing.T) {
		err := query.New(postgres.Postgres).On("a", "=", "b")
		var bo *core.BuildOrderError
		require.ErrorAs(t, err, &bo)
		assert.Equal(t, "ON", bo.Clause)
	})

	t.Run("using before join", func(t *testing.T) {
		assert.ErrorIs(t, query.New(postgres.Postgres).Using("a"), core.ErrBuildOrder)
	})

	t.Run("using after on", func(t *testing.T) {
		s := query.New(postgres.Postgres)
		require.NoError(t, s.Join("INNER", "b", ""))
		require.NoError(t, s.On("a.id", "=", "b.id"))
		err := s.Using("id")
		require.ErrorIs(t, err, core.ErrBuildOrder)
		assert.Contains(t, err.Error(), "must not declare two different types of constraints")
	})

	t.Run("on after using", func(t *testing.T) {
		s := query.New(postgres.Postgres)
		require.NoError(t, s.Join("INNER", "b", ""))
		require.NoError(t, s.Using("id"))
		err := s.On("a.id", "=", "b.id")
		require.ErrorIs(t, err, core.ErrBuildOrder)
		assert.Contains(t, err.Error(), "must not declare two different types of constraints")
	})

	t.Run("unsupported join type", func(t *testing.T) {
		err := query.New(mysql.MySQL).Join("FULL", "b", "")
		assert.ErrorIs(t, err, core.ErrInvalidEnumerationMember)
	})

	t.Run("bad on operator", func(t *testing.T) {
		s := query.New(postgres.Postgres)
		require.NoError(t, s.Join("INNER", "b", ""))
		assert.ErrorIs(t, s.On("a", "DROP", "b"), core.ErrInvalidEnumerationMember)
	})
}

func TestSelect_OrderingAndPaging(t *testing.T) {
	s := query.New(postgres.Postgres)
	require.NoError(t, s.From("t", ""))
	require.NoError(t, s.OrderBy("a", "desc", "last"))
	require.NoError(t, s.OrderBy("b", "", ""))
	s.Page(20, "10")

	assert.Equal(t, `SELECT * FROM "t" ORDER BY "a" DESC NULLS LAST, "b" ASC LIMIT 10 OFFSET 20`, s.Statement(false))

	s.Limit(-5).Offset("junk")
	assert.Equal(t, 5, s.Document().Limit)
	assert.Equal(t, 0, s.Document().Offset)
}

func TestSelect_PagingOffsetFetch(t *testing.T) {
	s := query.New(mssql.MSSQL)
	require.NoError(t, s.From("t", ""))
	require.NoError(t, s.OrderBy("id", "ASC", "FIRST"))
	s.Page(5, 10)

	assert.Equal(t, `SELECT * FROM [t] ORDER BY [id] ASC OFFSET 5 ROWS FETCH NEXT 10 ROWS ONLY`, s.Statement(false))
}

func TestSelect_PagingWithoutOrder(t *testing.T) {
	s := query.New(mssql.MSSQL)
	require.NoError(t, s.From("users", ""))
	s.Limit(10)

	assert.Equal(t, `SELECT * FROM [users] ORDER BY (SELECT NULL) OFFSET 0 ROWS FETCH NEXT 10 ROWS ONLY;`, s.Statement(true))
}

func TestSelect_Combine(t *testing.T) {
	other := query.New(postgres.Postgres)
	require.NoError(t, other.From("archived_users", ""))

	s := query.New(postgres.Postgres)
	require.NoError(t, s.From("users", ""))
	require.NoError(t, s.Combine("UNION", other))
	require.NoError(t, s.Combine("union all", "SELECT * FROM guests;"))

	assert.Equal(t,
		`SELECT * FROM "users" UNION SELECT * FROM "archived_users" UNION ALL SELECT * FROM guests;`,
		s.Statement(true))
}

func TestSelect_CombineErrors(t *testing.T) {
	tests := []struct {
		name   string
		op     string
		stmt   any
		target error
	}{
		{"not a select", "UNION", "DELETE FROM users", core.ErrBuildOrder},
		{"wrong type", "UNION", 42, core.ErrBuildOrder},
		{"other dialect", "UNION", query.New(mysql.MySQL), core.ErrBuildOrder},
		{"bad operator", "JOIN", "SELECT 1", core.ErrInvalidEnumerationMember},
		{"comparison is not a set operator", "=", "SELECT 1", core.ErrInvalidEnumerationMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := query.New(postgres.Postgres).Combine(tt.op, tt.stmt)
			require.ErrorIs(t, err, tt.target)
			if errors.Is(err, core.ErrBuildOrder) {
				assert.Contains(t, err.Error(), "may only combine a SELECT statement")
			}
		})
	}
}

func TestSelect_ResetAndDocument(t *testing.T) {
	s := query.New(postgres.Postgres)
	require.NoError(t, s.From("t", ""))
	require.NoError(t, s.Column("a", ""))

	doc := s.Document()
	doc.Columns[0] = "mutated"
	assert.Equal(t, `SELECT "a" FROM "t"`, s.Statement(false), "Document returns a copy")

	s.Reset()
	assert.Equal(t, "SELECT *", s.Statement(false))
	assert.Equal(t, "postgres", s.Dialect().Name)
}

func TestSelect_Pretty(t *testing.T) {
	s := query.New(postgres.Postgres)
	require.NoError(t, s.Column("id", ""))
	require.NoError(t, s.From("users", ""))
	s.Limit(1)

	assert.Equal(t, "SELECT\n  \"id\"\nFROM \"users\"\nLIMIT 1;\n", s.Pretty(true))
}

func TestSelect_QueryWithoutConnection(t *testing.T) {
	s := query.New(postgres.Postgres)

	_, err := s.Query(context.Background())
	assert.ErrorIs(t, err, query.ErrNoConnection)
	_, err = s.Execute(context.Background())
	assert.ErrorIs(t, err, query.ErrNoConnection)
}

// mockConnection routes a sqlmock database through the base adapter.
type mockConnection struct {
	adapter.BaseSQLAdapter
	quoted []string
}

func (m *mockConnection) Connect(context.Context, adapter.Config) error { return nil }

func (m *mockConnection) Quote(s, escape string) string {
	m.quoted = append(m.quoted, s)
	return m.BaseSQLAdapter.Quote(s, escape)
}

func newMockConnection(t *testing.T) (*mockConnection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	conn := &mockConnection{BaseSQLAdapter: adapter.NewBase(postgres.Postgres, testutil.NewTestLogger(t))}
	conn.DB = db
	return conn, mock
}

func TestSelect_Query(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectQuery(`SELECT "id" FROM "users" WHERE "name" = 'bob';`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	s := query.New(postgres.Postgres, query.WithConnection(conn), query.WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, s.Column("id", ""))
	require.NoError(t, s.From("users", ""))
	require.NoError(t, s.Where("name", "=", "bob"))

	rs, err := s.Query(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Count())
	assert.True(t, rs.IsLoaded())
	assert.Equal(t, []string{"bob"}, conn.quoted, "string values are escaped by the connection")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSelect_Execute(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectExec(`SELECT * FROM "users";`).WillReturnResult(sqlmock.NewResult(0, 0))

	s := query.New(postgres.Postgres, query.WithConnection(conn))
	require.NoError(t, s.From("users", ""))

	n, err := s.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSelect_QueryError(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectQuery(`SELECT * FROM "missing";`).WillReturnError(assert.AnError)

	s := query.New(postgres.Postgres, query.WithConnection(conn))
	require.NoError(t, s.From("missing", ""))

	_, err := s.Query(context.Background())
	require.ErrorIs(t, err, assert.AnError)
}
