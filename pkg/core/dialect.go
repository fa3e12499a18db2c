package core

// DialectConfig holds the static rule table for a SQL dialect.
// This is pure data — no handler functions.
//
// The runtime behavior (keyword lookup, vocabulary validation) lives in
// pkg/dialect.Dialect, which is built from this config.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "postgres", "mysql")
	Name string

	// Identifiers defines identifier quoting
	Identifiers IdentifierConfig

	// Literals defines how non-string values are spelled
	Literals LiteralConfig

	// KeywordVersion selects the reserved word list from pkg/keywords
	KeywordVersion string

	// Vocabulary accepted by the preparer
	Comparison   []Operator
	SetOperators []SetOperator
	JoinTypes    []JoinType
	Connectors   []Connector

	// Grammar quirks
	SupportsNullsOrdering bool        // ORDER BY ... NULLS FIRST|LAST
	TableAliasAs          bool        // FROM t AS a (false renders FROM t a)
	Paging                PagingStyle // LIMIT/OFFSET spelling
	PagingRequiresOrder   bool        // paging without ORDER BY gets ORDER BY (SELECT NULL)
}

// IdentifierConfig defines how identifiers are quoted.
type IdentifierConfig struct {
	Quote    string // Quote character: ", `, [
	QuoteEnd string // End quote character (usually same as Quote, ] for [)
}

// EscapeStyle defines how string literals escape embedded quotes.
type EscapeStyle int

const (
	// EscapeStandard doubles embedded single quotes ('it''s').
	EscapeStandard EscapeStyle = iota
	// EscapeBackslash backslash-escapes quotes and backslashes ('it\'s'), as MySQL does.
	EscapeBackslash
)

// LiteralConfig defines the spelling of literal values.
type LiteralConfig struct {
	True   string // boolean true, e.g. 1, TRUE, 't'
	False  string // boolean false
	Hex    string // fmt template for byte buffers, one %s receiving upper-case hex digits
	Bits   string // fmt template for bit fields, one %s receiving binary digits; empty renders the decimal value
	Escape EscapeStyle
}

// PagingStyle selects how LIMIT and OFFSET are rendered.
type PagingStyle int

const (
	// PagingLimitOffset renders LIMIT n OFFSET m.
	PagingLimitOffset PagingStyle = iota
	// PagingOffsetFetch renders OFFSET m ROWS FETCH NEXT n ROWS ONLY (SQL:2008).
	PagingOffsetFetch
)

// String returns the string representation of PagingStyle.
func (p PagingStyle) String() string {
	switch p {
	case PagingLimitOffset:
		return "limit-offset"
	case PagingOffsetFetch:
		return "offset-fetch"
	default:
		return "unknown"
	}
}
