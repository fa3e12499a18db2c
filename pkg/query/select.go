package query

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"

	"github.com/leapstack-labs/sqlforge/pkg/adapter"
	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
	"github.com/leapstack-labs/sqlforge/pkg/format"
	"github.com/leapstack-labs/sqlforge/pkg/prepare"
)

// ErrNoConnection is returned by Query and Execute when the builder was
// created without a connection.
var ErrNoConnection = errors.New("no connection configured")

// likeEscape is the escape character passed to LIKE pattern values.
const likeEscape = `\`

// Select builds one SELECT statement.
type Select struct {
	dialect *dialect.Dialect
	prep    *prepare.Preparer
	conn    adapter.Connection
	logger  *slog.Logger
	doc     *core.SelectDocument
}

// Option configures a Select.
type Option func(*Select)

// WithConnection attaches conn for Query and Execute and routes string
// escaping through conn.Quote.
func WithConnection(conn adapter.Connection) Option {
	return func(s *Select) {
		s.conn = conn
	}
}

// WithLogger sets the logger used when statements are sent to the connection.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Select) {
		s.logger = logger
	}
}

// New creates an empty Select for d.
func New(d *dialect.Dialect, opts ...Option) *Select {
	s := &Select{
		dialect: d,
		logger:  slog.New(slog.DiscardHandler),
		doc:     core.NewSelectDocument(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.conn != nil {
		s.prep = prepare.New(d, prepare.WithQuoter(s.conn))
	} else {
		s.prep = prepare.New(d)
	}
	return s
}

// Dialect returns the dialect the statement is built for.
func (s *Select) Dialect() *dialect.Dialect {
	return s.dialect
}

// Document returns a copy of the accumulated document.
func (s *Select) Document() *core.SelectDocument {
	return s.doc.Clone()
}

// Reset discards every clause.
func (s *Select) Reset() *Select {
	s.doc = core.NewSelectDocument()
	return s
}

// ---------- Columns ----------

// Distinct toggles SELECT DISTINCT.
func (s *Select) Distinct(flag bool) *Select {
	s.doc.Distinct = flag
	return s
}

// All drops any explicit columns and selects wildcard instead: "*" or a
// qualified form such as "t" or "t.*".
func (s *Select) All(wildcard string) error {
	w, err := s.prep.Wildcard(wildcard)
	if err != nil {
		return err
	}
	s.doc.Columns = nil
	s.doc.Wildcard = w
	return nil
}

// Column adds expr to the column list, optionally aliased. Strings ending
// in "*" are treated as qualified wildcards.
func (s *Select) Column(expr any, alias string) error {
	var col string
	var err error
	if str, ok := expr.(string); ok && strings.HasSuffix(str, "*") {
		col, err = s.prep.Wildcard(str)
	} else {
		col, err = s.prep.Identifier(expr)
	}
	if err != nil {
		return err
	}
	if alias != "" {
		a, err := s.prep.Alias(alias)
		if err != nil {
			return err
		}
		col += " AS " + a
	}
	s.doc.Columns = append(s.doc.Columns, col)
	return nil
}

// ---------- Sources ----------

// From sets the source table, replacing any earlier one. table may also be
// a sub-statement.
func (s *Select) From(table any, alias string) error {
	t, err := s.table(table, alias)
	if err != nil {
		return err
	}
	s.doc.From = t
	return nil
}

// Join appends "<type> JOIN <table>". Constrain it with On or Using.
func (s *Select) Join(joinType string, table any, alias string) error {
	jt, err := s.prep.Join(joinType)
	if err != nil {
		return err
	}
	t, err := s.table(table, alias)
	if err != nil {
		return err
	}
	s.doc.Joins = append(s.doc.Joins, core.Join{Clause: jt + " JOIN " + t})
	return nil
}

func (s *Select) table(table any, alias string) (string, error) {
	t, err := s.prep.Identifier(table)
	if err != nil {
		return "", err
	}
	if alias == "" {
		return t, nil
	}
	a, err := s.prep.Alias(alias)
	if err != nil {
		return "", err
	}
	if s.dialect.TableAliasAs {
		return t + " AS " + a, nil
	}
	return t + " " + a, nil
}

// On adds "<col0> <op> <col1>" to the most recent join. Repeated calls are
// joined with AND.
func (s *Select) On(col0 any, op string, col1 any) error {
	j, err := s.lastJoin("ON")
	if err != nil {
		return err
	}
	if len(j.Using) > 0 {
		return &core.BuildOrderError{Clause: "ON", Message: "must not declare two different types of constraints"}
	}
	o, err := s.prep.Operator(op, dialect.GroupComparison)
	if err != nil {
		return err
	}
	left, err := s.prep.Identifier(col0)
	if err != nil {
		return err
	}
	right, err := s.prep.Identifier(col1)
	if err != nil {
		return err
	}
	j.On = append(j.On, left+" "+o+" "+right)
	return nil
}

// Using adds col to the USING list of the most recent join.
func (s *Select) Using(col any) error {
	j, err := s.lastJoin("USING")
	if err != nil {
		return err
	}
	if len(j.On) > 0 {
		return &core.BuildOrderError{Clause: "USING", Message: "must not declare two different types of constraints"}
	}
	c, err := s.prep.Identifier(col)
	if err != nil {
		return err
	}
	j.Using = append(j.Using, c)
	return nil
}

func (s *Select) lastJoin(clause string) (*core.Join, error) {
	if len(s.doc.Joins) == 0 {
		return nil, &core.BuildOrderError{Clause: clause, Message: "must be preceded by a JOIN"}
	}
	return &s.doc.Joins[len(s.doc.Joins)-1], nil
}

// ---------- Predicates ----------

// Where appends "<col> <op> <value>" to the WHERE list. connector is AND
// when omitted.
//
// A nil value turns = into IS and <> into IS NOT. BETWEEN takes a
// two-element slice or array, IN takes a slice, array or sub-statement.
// LIKE patterns are escaped with a backslash.
func (s *Select) Where(col any, op string, value any, connector ...string) error {
	pred, err := s.predicate(col, op, value, connector)
	if err != nil {
		return err
	}
	s.doc.Where = append(s.doc.Where, pred)
	return nil
}

// WhereBlock opens or closes a parenthesized group in the WHERE list.
func (s *Select) WhereBlock(paren string, connector ...string) error {
	pred, err := s.block(paren, connector)
	if err != nil {
		return err
	}
	s.doc.Where = append(s.doc.Where, pred)
	return nil
}

// GroupBy appends columns to GROUP BY. Each argument may itself be a
// slice of columns.
func (s *Select) GroupBy(cols ...any) error {
	var prepared []string
	for _, c := range flatten(cols) {
		g, err := s.prep.Identifier(c)
		if err != nil {
			return err
		}
		prepared = append(prepared, g)
	}
	s.doc.GroupBy = append(s.doc.GroupBy, prepared...)
	return nil
}

// Having is Where for the HAVING list. It requires a prior GroupBy.
func (s *Select) Having(col any, op string, value any, connector ...string) error {
	if err := s.requireGroupBy(); err != nil {
		return err
	}
	pred, err := s.predicate(col, op, value, connector)
	if err != nil {
		return err
	}
	s.doc.Having = append(s.doc.Having, pred)
	return nil
}

// HavingBlock is WhereBlock for the HAVING list. It requires a prior GroupBy.
func (s *Select) HavingBlock(paren string, connector ...string) error {
	if err := s.requireGroupBy(); err != nil {
		return err
	}
	pred, err := s.block(paren, connector)
	if err != nil {
		return err
	}
	s.doc.Having = append(s.doc.Having, pred)
	return nil
}

func (s *Select) requireGroupBy() error {
	if len(s.doc.GroupBy) == 0 {
		return &core.BuildOrderError{Clause: "HAVING", Message: "must be preceded by a GROUP BY clause"}
	}
	return nil
}

func (s *Select) connector(connector []string) (core.Connector, error) {
	if len(connector) == 0 || connector[0] == "" {
		return core.ConnectorAnd, nil
	}
	c, err := s.prep.Connector(connector[0])
	return core.Connector(c), err
}

func (s *Select) block(paren string, connector []string) (core.Predicate, error) {
	c, err := s.connector(connector)
	if err != nil {
		return core.Predicate{}, err
	}
	p, err := s.prep.Parenthesis(paren)
	if err != nil {
		return core.Predicate{}, err
	}
	return core.Predicate{Connector: c, Fragment: p, Paren: true}, nil
}

func (s *Select) predicate(col any, op string, value any, connector []string) (core.Predicate, error) {
	c, err := s.connector(connector)
	if err != nil {
		return core.Predicate{}, err
	}
	o, err := s.prep.Operator(op, dialect.GroupComparison)
	if err != nil {
		return core.Predicate{}, err
	}
	column, err := s.prep.Identifier(col)
	if err != nil {
		return core.Predicate{}, err
	}

	operator := core.Operator(o)
	var rhs string
	switch {
	case operator.IsRange():
		rhs, err = s.between(value)
	case operator.IsMembership():
		rhs, err = s.membership(value)
	case value == nil:
		switch operator {
		case core.OpEQ:
			operator = core.OpIs
		case core.OpNE:
			operator = core.OpIsNot
		}
		rhs = "NULL"
	case operator.IsPattern():
		rhs, err = s.prep.Value(value, likeEscape)
	default:
		rhs, err = s.prep.Value(value, "")
	}
	if err != nil {
		return core.Predicate{}, err
	}
	return core.Predicate{Connector: c, Fragment: column + " " + string(operator) + " " + rhs}, nil
}

func (s *Select) between(value any) (string, error) {
	rv := reflect.ValueOf(value)
	if !isSequence(rv) || rv.Len() != 2 {
		return "", &core.InvalidArgumentError{Op: "between", Value: value, Message: "expected a sequence of two values"}
	}
	lo, err := s.prep.Value(rv.Index(0).Interface(), "")
	if err != nil {
		return "", err
	}
	hi, err := s.prep.Value(rv.Index(1).Interface(), "")
	if err != nil {
		return "", err
	}
	return lo + " AND " + hi, nil
}

func (s *Select) membership(value any) (string, error) {
	if _, ok := value.(prepare.Statement); ok {
		return s.prep.Value(value, "")
	}
	if !isSequence(reflect.ValueOf(value)) {
		return "", &core.InvalidArgumentError{Op: "in", Value: value, Message: "expected a sequence"}
	}
	return s.prep.Value(value, "")
}

// isSequence reports whether rv is a slice or array other than a byte buffer.
func isSequence(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}

func flatten(cols []any) []any {
	var out []any
	for _, c := range cols {
		switch v := c.(type) {
		case []string:
			for _, s := range v {
				out = append(out, s)
			}
		case []any:
			out = append(out, flatten(v)...)
		default:
			out = append(out, c)
		}
	}
	return out
}

// ---------- Ordering and paging ----------

// OrderBy appends an ordering term. direction defaults to ASC; nulls is
// FIRST, LAST or empty and is dropped by dialects without NULLS ordering.
func (s *Select) OrderBy(col any, direction, nulls string) error {
	o, err := s.prep.Ordering(col, direction, nulls)
	if err != nil {
		return err
	}
	s.doc.OrderBy = append(s.doc.OrderBy, o)
	return nil
}

// Limit caps the number of rows. Any input is coerced to a natural number;
// 0 removes the limit.
func (s *Select) Limit(n any) *Select {
	s.doc.Limit = s.prep.Natural(n)
	return s
}

// Offset skips the first n rows.
func (s *Select) Offset(n any) *Select {
	s.doc.Offset = s.prep.Natural(n)
	return s
}

// Page sets both offset and limit.
func (s *Select) Page(offset, limit any) *Select {
	return s.Offset(offset).Limit(limit)
}

// ---------- Composition ----------

// Combine appends "<op> <statement>". statement must be a Select of the
// same dialect or a string starting with SELECT.
func (s *Select) Combine(op string, statement any) error {
	o, err := s.prep.Operator(op, dialect.GroupSet)
	if err != nil {
		return err
	}
	var text string
	switch v := statement.(type) {
	case *Select:
		if v == nil || v.dialect.Name != s.dialect.Name {
			return errCombine
		}
		text = v.Statement(false)
	case string:
		if !prepare.IsSelect(v) {
			return errCombine
		}
		text = strings.TrimRight(strings.TrimSpace(v), "; \t\r\n")
	default:
		return errCombine
	}
	s.doc.Combine = append(s.doc.Combine, core.Combination{Operator: core.SetOperator(o), Statement: text})
	return nil
}

var errCombine = &core.BuildOrderError{Clause: "COMBINE", Message: "may only combine a SELECT statement"}

// ---------- Rendering and execution ----------

// Statement renders the statement, appending ";" when terminated.
func (s *Select) Statement(terminated bool) string {
	return format.Select(s.doc, s.dialect, terminated)
}

// Pretty renders the statement with one clause per line.
func (s *Select) Pretty(terminated bool) string {
	return format.Pretty(s.doc, s.dialect, terminated)
}

// String renders the terminated statement.
func (s *Select) String() string {
	return s.Statement(true)
}

// Query sends the statement to the attached connection and returns its rows.
func (s *Select) Query(ctx context.Context) (*adapter.ResultSet, error) {
	if s.conn == nil {
		return nil, ErrNoConnection
	}
	sql := s.Statement(true)
	s.logger.Debug("query", slog.String("dialect", s.dialect.Name), slog.String("sql", sql))
	return s.conn.Query(ctx, sql)
}

// Execute sends the statement to the attached connection and returns the
// affected row count reported by the driver.
func (s *Select) Execute(ctx context.Context) (int64, error) {
	if s.conn == nil {
		return 0, ErrNoConnection
	}
	sql := s.Statement(true)
	s.logger.Debug("execute", slog.String("dialect", s.dialect.Name), slog.String("sql", sql))
	return s.conn.Exec(ctx, sql)
}

var _ prepare.Statement = (*Select)(nil)
