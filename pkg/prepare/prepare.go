// Package prepare converts raw builder input into dialect-safe SQL
// fragments: quoted identifiers, escaped values and validated vocabulary.
package prepare

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

// DateTimeLayout is the layout time.Time values are rendered with.
const DateTimeLayout = "2006-01-02 15:04:05"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}( \d{2}:\d{2}:\d{2})?$`)

// Preparer converts values for one dialect. It holds no mutable state and
// may be shared.
type Preparer struct {
	dialect *dialect.Dialect
	quoter  Quoter
}

// Option configures a Preparer.
type Option func(*Preparer)

// WithQuoter routes string escaping through q instead of the dialect's own
// literal quoting.
func WithQuoter(q Quoter) Option {
	return func(p *Preparer) {
		p.quoter = q
	}
}

// New creates a Preparer for d.
func New(d *dialect.Dialect, opts ...Option) *Preparer {
	p := &Preparer{dialect: d}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dialect returns the dialect the preparer renders for.
func (p *Preparer) Dialect() *dialect.Dialect {
	return p.dialect
}

// IsKeyword reports whether word is reserved in the preparer's dialect.
func (p *Preparer) IsKeyword(word string) bool {
	return p.dialect.IsKeyword(word)
}

// ---------- Identifiers ----------

// Identifier renders a possibly dotted name ("schema.table") with every
// segment quoted. Sub-statements and strings starting with SELECT are
// parenthesized; Literals are emitted verbatim.
func (p *Preparer) Identifier(expr any) (string, error) {
	switch v := expr.(type) {
	case Statement:
		return subStatement("identifier", v)
	case Literal:
		return v.SQL(), nil
	case string:
		if IsSelect(v) {
			return "(" + v + ")", nil
		}
		segments := strings.Split(v, ".")
		for i, s := range segments {
			segments[i] = p.dialect.QuoteIdentifier(sanitize(s))
		}
		return strings.Join(segments, "."), nil
	default:
		return "", &core.InvalidArgumentError{Op: "identifier", Value: expr}
	}
}

// Alias renders expr as one quoted name. Dots are stripped, not split.
func (p *Preparer) Alias(expr any) (string, error) {
	s, ok := expr.(string)
	if !ok {
		return "", &core.InvalidArgumentError{Op: "alias", Value: expr}
	}
	return p.dialect.QuoteIdentifier(sanitize(s)), nil
}

// Wildcard renders a qualified star: "t" becomes "t".* and "*" stays *.
func (p *Preparer) Wildcard(expr any) (string, error) {
	switch v := expr.(type) {
	case Literal:
		return v.SQL(), nil
	case string:
		segments := strings.Split(v, ".")
		for i, s := range segments {
			if s != "*" {
				segments[i] = p.dialect.QuoteIdentifier(sanitize(s))
			}
		}
		if segments[len(segments)-1] != "*" {
			segments = append(segments, "*")
		}
		return strings.Join(segments, "."), nil
	default:
		return "", &core.InvalidArgumentError{Op: "wildcard", Value: expr}
	}
}

// sanitize drops every character outside [A-Za-z0-9$_ ].
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9',
			r == '$', r == '_', r == ' ':
			return r
		}
		return -1
	}, s)
}

// IsSelect reports whether s begins with the SELECT keyword, ignoring case
// and leading whitespace.
func IsSelect(s string) bool {
	s = strings.TrimLeft(s, " \t\r\n")
	if len(s) < 6 || !strings.EqualFold(s[:6], "SELECT") {
		return false
	}
	if len(s) == 6 {
		return true
	}
	c := s[6]
	return !(c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z')
}

// subStatement parenthesizes a nested statement. A typed nil pointer is
// rejected rather than dereferenced.
func subStatement(op string, s Statement) (string, error) {
	if rv := reflect.ValueOf(s); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", &core.InvalidArgumentError{Op: op, Value: s, Message: "nil statement"}
	}
	return "(" + s.Statement(false) + ")", nil
}

// ---------- Values ----------

// Value renders expr as a SQL value. escape, when non-empty, is the escape
// character of a LIKE pattern and is passed to string quoting.
func (p *Preparer) Value(expr any, escape string) (string, error) {
	switch v := expr.(type) {
	case nil:
		return "NULL", nil
	case bool:
		return p.dialect.Boolean(v), nil
	case Statement:
		return subStatement("value", v)
	case Literal:
		return v.SQL(), nil
	case Bytes:
		return p.dialect.HexLiteral(v), nil
	case []byte:
		return p.dialect.HexLiteral(v), nil
	case BitField:
		return p.dialect.BitLiteral(v.Value, v.Width), nil
	case string:
		return p.String(v, escape), nil
	case time.Time:
		return "'" + v.Format(DateTimeLayout) + "'", nil
	case uuid.UUID:
		return "'" + v.String() + "'", nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return formatFloat(v, 64)
	}
	return p.reflectValue(expr, escape)
}

// reflectValue handles named scalar types and sequences.
func (p *Preparer) reflectValue(expr any, escape string) (string, error) {
	rv := reflect.ValueOf(expr)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Bool:
		return p.dialect.Boolean(rv.Bool()), nil
	case reflect.String:
		return p.String(rv.String(), escape), nil
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		if n == 0 {
			return "", &core.InvalidArgumentError{Op: "value", Value: expr, Message: "empty sequence"}
		}
		parts := make([]string, n)
		for i := range n {
			s, err := p.Value(rv.Index(i).Interface(), escape)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "(" + strings.Join(parts, ", ") + ")", nil
	default:
		return "", &core.InvalidArgumentError{Op: "value", Value: expr}
	}
}

func formatFloat(f float64, bits int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", &core.InvalidArgumentError{Op: "value", Value: f, Message: "non-finite number"}
	}
	return strconv.FormatFloat(f, 'f', -1, bits), nil
}

// String renders s as a string literal. Date and date-time strings are
// quoted verbatim; anything else goes through the Quoter when one is set.
func (p *Preparer) String(s, escape string) string {
	switch {
	case s == "":
		return "''"
	case datePattern.MatchString(s):
		return "'" + s + "'"
	case p.quoter != nil:
		return p.quoter.Quote(s, escape)
	default:
		return QuoteLiteral(p.dialect, s, escape)
	}
}

// QuoteLiteral quotes s with the dialect's own rules, appending an ESCAPE
// clause when escape is set. Connections without a native quoting routine
// use it as their Quote implementation.
func QuoteLiteral(d *dialect.Dialect, s, escape string) string {
	if escape == "" {
		return d.QuoteString(s)
	}
	return d.QuoteString(s) + " ESCAPE " + d.QuoteString(escape)
}

// ---------- Vocabulary ----------

// Operator validates expr against group and returns its canonical spelling.
func (p *Preparer) Operator(expr string, group dialect.OperatorGroup) (string, error) {
	switch group {
	case dialect.GroupComparison:
		op, err := p.dialect.Operator(expr)
		return string(op), err
	case dialect.GroupSet:
		op, err := p.dialect.SetOperator(expr)
		return string(op), err
	default:
		return "", &core.InvalidArgumentError{Op: "operator", Value: group, Message: fmt.Sprintf("unknown operator group %q", group)}
	}
}

// Join validates a join type.
func (p *Preparer) Join(expr string) (string, error) {
	jt, err := p.dialect.JoinType(expr)
	return string(jt), err
}

// Connector validates a predicate connector.
func (p *Preparer) Connector(expr string) (string, error) {
	c, err := p.dialect.Connector(expr)
	return string(c), err
}

// Parenthesis validates a grouping parenthesis.
func (p *Preparer) Parenthesis(expr string) (string, error) {
	paren, err := p.dialect.Parenthesis(expr)
	return string(paren), err
}

// ---------- Numbers and ordering ----------

// Natural coerces expr to a non-negative integer: the absolute value of
// numeric input, 0 for anything else.
func Natural(expr any) int {
	var n float64
	switch v := expr.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		n = f
	default:
		rv := reflect.ValueOf(expr)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			n = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			n = rv.Float()
		default:
			return 0
		}
	}
	n = math.Abs(n)
	switch {
	case math.IsNaN(n):
		return 0
	case n >= float64(math.MaxInt):
		return math.MaxInt
	}
	return int(n)
}

// Natural is the method form of the package-level Natural.
func (p *Preparer) Natural(expr any) int {
	return Natural(expr)
}

// Ordering renders "<column> ASC|DESC [NULLS FIRST|LAST]". Unknown
// directions become ASC and unknown or unsupported null placements are
// omitted.
func (p *Preparer) Ordering(column any, direction, nulls string) (string, error) {
	col, err := p.Identifier(column)
	if err != nil {
		return "", err
	}
	out := col + " " + string(core.ParseDirection(direction))
	if suffix := p.dialect.NullsOrdering(core.ParseNullsPosition(nulls)); suffix != "" {
		out += " " + suffix
	}
	return out, nil
}
