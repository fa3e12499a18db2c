package prepare

// Literal is any value that renders itself as SQL text. The preparer emits
// it verbatim, so it must never carry caller input.
type Literal interface {
	SQL() string
}

// Raw is SQL text emitted verbatim, e.g. Raw("COUNT(*)").
type Raw string

// SQL returns r unchanged.
func (r Raw) SQL() string { return string(r) }

// Bytes is a byte buffer rendered as the dialect's hexadecimal literal.
type Bytes []byte

// BitField is an integer rendered as the dialect's binary literal, padded
// or truncated to Width digits.
type BitField struct {
	Value uint64
	Width int
}

// Statement is a composable sub-statement, typically a query.Select. Its
// un-terminated text is parenthesized wherever it is embedded.
type Statement interface {
	Statement(terminated bool) string
}

// Quoter escapes string values. Database connections implement it so the
// driver's own escaping routine is used when one is attached.
type Quoter interface {
	Quote(s, escape string) string
}
