// Package token defines the token kinds produced by the SQL tokenizer.
//
// The named kinds below are a closed set. Any other single character is
// reported with a kind equal to the character itself, e.g. Kind("(").
package token

// Kind classifies a lexical token.
type Kind string

// Token kinds.
const (
	Error      Kind = "ERROR"      // unterminated string, identifier or comment
	Hex        Kind = "HEX"        // 0xFF
	Identifier Kind = "IDENTIFIER" // name, "quoted", `quoted`, [quoted]
	Integer    Kind = "INTEGER"    // 42
	Keyword    Kind = "KEYWORD"    // reserved word of the dialect
	Literal    Kind = "LITERAL"    // 'string'
	Operator   Kind = "OPERATOR"   // = <> <= || + * ...
	Parameter  Kind = "PARAMETER"  // ?
	Real       Kind = "REAL"       // 3.14
	Terminal   Kind = "TERMINAL"   // ;
	Whitespace Kind = "WHITESPACE" // spaces, newlines and comments
)

// IsNamed reports whether k is one of the named kinds rather than a
// single-character kind.
func (k Kind) IsNamed() bool {
	switch k {
	case Error, Hex, Identifier, Integer, Keyword, Literal,
		Operator, Parameter, Real, Terminal, Whitespace:
		return true
	default:
		return false
	}
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Token represents a lexical token with position information.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position
}

// Is reports whether the token has any of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}
