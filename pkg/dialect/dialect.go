// Package dialect provides the runtime rules of a SQL dialect: identifier
// quoting, literal spelling, the enumerated vocabulary the preparer accepts,
// and reserved keyword lookup.
//
// The static rule tables live in pkg/dialects/*/ packages, which build a
// Dialect from a core.DialectConfig and register it at init time.
package dialect

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/keywords"
)

// OperatorGroup names the vocabulary an operator is validated against.
type OperatorGroup string

// Operator groups accepted by the preparer.
const (
	GroupComparison OperatorGroup = "COMPARISON"
	GroupSet        OperatorGroup = "SET"
)

// Enumeration groups reported in core.EnumerationError.
const (
	groupJoin        = "JOIN"
	groupConnector   = "CONNECTOR"
	groupParenthesis = "PARENTHESIS"
)

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Name        string
	Identifiers core.IdentifierConfig
	Literals    core.LiteralConfig

	// Grammar quirks
	SupportsNullsOrdering bool
	TableAliasAs          bool
	Paging                core.PagingStyle
	PagingRequiresOrder   bool

	// KeywordVersion selects the reserved word list; empty means newest.
	KeywordVersion string

	comparison   map[core.Operator]struct{}
	setOperators map[core.SetOperator]struct{}
	joinTypes    map[core.JoinType]struct{}
	connectors   map[core.Connector]struct{}

	extraKeywords []string
	keywords      func() (keywords.Set, error)
}

// Config returns the pure data configuration for this dialect.
func (d *Dialect) Config() *core.DialectConfig {
	return &core.DialectConfig{
		Name:                  d.Name,
		Identifiers:           d.Identifiers,
		Literals:              d.Literals,
		KeywordVersion:        d.KeywordVersion,
		Comparison:            d.Operators(),
		SetOperators:          d.SetOperators(),
		JoinTypes:             d.JoinTypes(),
		Connectors:            d.Connectors(),
		SupportsNullsOrdering: d.SupportsNullsOrdering,
		TableAliasAs:          d.TableAliasAs,
		Paging:                d.Paging,
		PagingRequiresOrder:   d.PagingRequiresOrder,
	}
}

// GetName returns the dialect name.
func (d *Dialect) GetName() string {
	return d.Name
}

// ---------- Keywords ----------

// Keywords returns the reserved word set, loading it on first use.
func (d *Dialect) Keywords() (keywords.Set, error) {
	return d.keywords()
}

// IsKeyword reports whether word is reserved in this dialect, ignoring case.
// A keyword list that failed to load reports no keywords.
func (d *Dialect) IsKeyword(word string) bool {
	set, err := d.keywords()
	if err != nil {
		return false
	}
	return set.Contains(word)
}

func (d *Dialect) loadKeywords() (keywords.Set, error) {
	set, err := keywords.Load(d.Name, d.KeywordVersion)
	switch {
	case errors.Is(err, keywords.ErrNotFound) && d.KeywordVersion == "":
		// Dialects without an embedded list rely on their explicit words only.
		set = keywords.NewSet()
	case err != nil:
		return nil, err
	}
	for _, w := range d.extraKeywords {
		set[strings.ToUpper(w)] = struct{}{}
	}
	return set, nil
}

// ---------- Vocabulary ----------

// Operator validates expr as a comparison operator of this dialect.
func (d *Dialect) Operator(expr string) (core.Operator, error) {
	op, ok := core.ParseOperator(expr)
	if ok {
		_, ok = d.comparison[op]
	}
	if !ok {
		return "", d.enumErr(string(GroupComparison), expr)
	}
	return op, nil
}

// SetOperator validates expr as a set operator of this dialect.
func (d *Dialect) SetOperator(expr string) (core.SetOperator, error) {
	op, ok := core.ParseSetOperator(expr)
	if ok {
		_, ok = d.setOperators[op]
	}
	if !ok {
		return "", d.enumErr(string(GroupSet), expr)
	}
	return op, nil
}

// JoinType validates expr as a join type of this dialect.
func (d *Dialect) JoinType(expr string) (core.JoinType, error) {
	jt, ok := core.ParseJoinType(expr)
	if ok {
		_, ok = d.joinTypes[jt]
	}
	if !ok {
		return "", d.enumErr(groupJoin, expr)
	}
	return jt, nil
}

// Connector validates expr as a predicate connector of this dialect.
func (d *Dialect) Connector(expr string) (core.Connector, error) {
	c, ok := core.ParseConnector(expr)
	if ok {
		_, ok = d.connectors[c]
	}
	if !ok {
		return "", d.enumErr(groupConnector, expr)
	}
	return c, nil
}

// Parenthesis validates expr as a grouping parenthesis.
func (d *Dialect) Parenthesis(expr string) (core.Parenthesis, error) {
	p, ok := core.ParseParenthesis(expr)
	if !ok {
		return "", d.enumErr(groupParenthesis, expr)
	}
	return p, nil
}

func (d *Dialect) enumErr(group, value string) error {
	return &core.EnumerationError{Group: group, Value: value, Dialect: d.Name}
}

// Operators returns the allowed comparison operators, sorted.
func (d *Dialect) Operators() []core.Operator { return sortedKeys(d.comparison) }

// SetOperators returns the allowed set operators, sorted.
func (d *Dialect) SetOperators() []core.SetOperator { return sortedKeys(d.setOperators) }

// JoinTypes returns the allowed join types, sorted.
func (d *Dialect) JoinTypes() []core.JoinType { return sortedKeys(d.joinTypes) }

// Connectors returns the allowed connectors, sorted.
func (d *Dialect) Connectors() []core.Connector { return sortedKeys(d.connectors) }

// ---------- Quoting and literals ----------

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Escape any existing quote end characters in the name (e.g., ] -> ]])
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.QuoteEnd+d.Identifiers.QuoteEnd)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// QuoteString renders s as a string literal using the dialect's escape style.
func (d *Dialect) QuoteString(s string) string {
	if d.Literals.Escape == core.EscapeBackslash {
		return "'" + backslashEscaper.Replace(s) + "'"
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

var backslashEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\x00", `\0`,
	"\n", `\n`,
	"\r", `\r`,
	"\x1a", `\Z`,
)

// Boolean returns the dialect's spelling of a boolean literal.
func (d *Dialect) Boolean(v bool) string {
	if v {
		return d.Literals.True
	}
	return d.Literals.False
}

// HexLiteral renders a byte buffer as a hexadecimal literal.
func (d *Dialect) HexLiteral(b []byte) string {
	return fmt.Sprintf(d.Literals.Hex, strings.ToUpper(hex.EncodeToString(b)))
}

// BitLiteral renders the low width bits of v as a binary literal. Dialects
// without binary literals receive the decimal value.
func (d *Dialect) BitLiteral(v uint64, width int) string {
	if d.Literals.Bits == "" {
		return strconv.FormatUint(v, 10)
	}
	digits := strconv.FormatUint(v, 2)
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	} else if width > 0 && len(digits) > width {
		digits = digits[len(digits)-width:]
	}
	return fmt.Sprintf(d.Literals.Bits, digits)
}

// NullsOrdering returns the "NULLS FIRST|LAST" suffix for pos, or "" when the
// dialect cannot express it or pos is the default.
func (d *Dialect) NullsOrdering(pos core.NullsPosition) string {
	if !d.SupportsNullsOrdering || pos == core.NullsDefault {
		return ""
	}
	return "NULLS " + string(pos)
}

// ---------- Builder ----------

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
	config  *core.DialectConfig // Optional config read by Build
}

// NewDialect creates a new dialect builder with the given name and
// ANSI defaults for quoting and literals.
func NewDialect(name string) *Builder {
	return &Builder{dialect: newDialect(name)}
}

// New creates a dialect builder from a DialectConfig.
// The config's vocabulary and literal rules are merged in when Build() is called.
// This is the preferred constructor for dialects in pkg/dialects.
func New(cfg *core.DialectConfig) *Builder {
	return &Builder{config: cfg, dialect: newDialect(cfg.Name)}
}

func newDialect(name string) *Dialect {
	return &Dialect{
		Name: name,
		Identifiers: core.IdentifierConfig{
			Quote:    `"`,
			QuoteEnd: `"`,
		},
		Literals: core.LiteralConfig{
			True:  "1",
			False: "0",
			Hex:   "X'%s'",
		},
		TableAliasAs: true,
		comparison:   make(map[core.Operator]struct{}),
		setOperators: make(map[core.SetOperator]struct{}),
		joinTypes:    make(map[core.JoinType]struct{}),
		connectors:   make(map[core.Connector]struct{}),
	}
}

// Identifiers configures identifier quoting.
func (b *Builder) Identifiers(quote, quoteEnd string) *Builder {
	b.dialect.Identifiers = core.IdentifierConfig{Quote: quote, QuoteEnd: quoteEnd}
	return b
}

// Literals configures literal spelling.
func (b *Builder) Literals(lit core.LiteralConfig) *Builder {
	b.dialect.Literals = lit
	return b
}

// Operators adds comparison operators to the dialect.
func (b *Builder) Operators(ops ...core.Operator) *Builder {
	for _, op := range ops {
		b.dialect.comparison[op] = struct{}{}
	}
	return b
}

// SetOperators adds set operators to the dialect.
func (b *Builder) SetOperators(ops ...core.SetOperator) *Builder {
	for _, op := range ops {
		b.dialect.setOperators[op] = struct{}{}
	}
	return b
}

// JoinTypes adds join types to the dialect.
func (b *Builder) JoinTypes(types ...core.JoinType) *Builder {
	for _, jt := range types {
		b.dialect.joinTypes[jt] = struct{}{}
	}
	return b
}

// Connectors adds predicate connectors to the dialect.
func (b *Builder) Connectors(cs ...core.Connector) *Builder {
	for _, c := range cs {
		b.dialect.connectors[c] = struct{}{}
	}
	return b
}

// NullsOrdering enables ORDER BY ... NULLS FIRST|LAST.
func (b *Builder) NullsOrdering(enabled bool) *Builder {
	b.dialect.SupportsNullsOrdering = enabled
	return b
}

// TableAliasAs selects whether table aliases are introduced with AS.
func (b *Builder) TableAliasAs(enabled bool) *Builder {
	b.dialect.TableAliasAs = enabled
	return b
}

// Paging sets how LIMIT and OFFSET are spelled.
func (b *Builder) Paging(style core.PagingStyle) *Builder {
	b.dialect.Paging = style
	return b
}

// KeywordVersion selects the version of the embedded reserved word list.
func (b *Builder) KeywordVersion(version string) *Builder {
	b.dialect.KeywordVersion = version
	return b
}

// WithKeywords registers reserved keywords in addition to the embedded list.
func (b *Builder) WithKeywords(kws ...string) *Builder {
	b.dialect.extraKeywords = append(b.dialect.extraKeywords, kws...)
	return b
}

// Build returns the constructed dialect.
// If the builder was created with New(cfg), the config's rules are applied
// on top of anything added through the fluent methods.
func (b *Builder) Build() *Dialect {
	d := b.dialect
	if cfg := b.config; cfg != nil {
		if cfg.Identifiers.Quote != "" {
			d.Identifiers = cfg.Identifiers
			if d.Identifiers.QuoteEnd == "" {
				d.Identifiers.QuoteEnd = d.Identifiers.Quote
			}
		}
		mergeLiterals(&d.Literals, cfg.Literals)
		d.KeywordVersion = cfg.KeywordVersion
		d.SupportsNullsOrdering = d.SupportsNullsOrdering || cfg.SupportsNullsOrdering
		d.TableAliasAs = cfg.TableAliasAs
		d.Paging = cfg.Paging
		d.PagingRequiresOrder = cfg.PagingRequiresOrder

		b.Operators(cfg.Comparison...)
		b.SetOperators(cfg.SetOperators...)
		b.JoinTypes(cfg.JoinTypes...)
		b.Connectors(cfg.Connectors...)
	}
	d.keywords = sync.OnceValues(d.loadKeywords)
	return d
}

// mergeLiterals overwrites dst with every non-empty field of src.
func mergeLiterals(dst *core.LiteralConfig, src core.LiteralConfig) {
	if src.True != "" {
		dst.True = src.True
	}
	if src.False != "" {
		dst.False = src.False
	}
	if src.Hex != "" {
		dst.Hex = src.Hex
	}
	if src.Bits != "" {
		dst.Bits = src.Bits
	}
	dst.Escape = src.Escape
}
