package core

// DefaultWildcard is the column list used when no column was selected.
const DefaultWildcard = "*"

// SelectDocument is the structured form of one SELECT statement.
//
// Every string held here has already been prepared for the owning dialect;
// the document never stores raw caller input.
type SelectDocument struct {
	Distinct bool
	Wildcard string
	Columns  []string
	From     string
	Joins    []Join
	Where    []Predicate
	GroupBy  []string
	Having   []Predicate
	OrderBy  []string
	Limit    int // 0 means unbounded
	Offset   int
	Combine  []Combination
}

// NewSelectDocument returns an empty document selecting the default wildcard.
func NewSelectDocument() *SelectDocument {
	return &SelectDocument{Wildcard: DefaultWildcard}
}

// Join is one JOIN clause with its optional constraint.
// At most one of On and Using is non-empty.
type Join struct {
	Clause string   // "<TYPE> JOIN <table> [alias]"
	On     []string // "<col0> <op> <col1>", rendered joined by AND
	Using  []string // prepared column names
}

// HasConstraint reports whether an ON or USING constraint was declared.
func (j *Join) HasConstraint() bool {
	return len(j.On) > 0 || len(j.Using) > 0
}

// Predicate is one entry of a WHERE or HAVING list.
type Predicate struct {
	Connector Connector
	Fragment  string // boolean expression, or "(" / ")" when Paren is set
	Paren     bool
}

// Combination appends a set operation to the statement.
type Combination struct {
	Operator  SetOperator
	Statement string // un-terminated SELECT text
}

// Clone returns a deep copy of the document.
func (d *SelectDocument) Clone() *SelectDocument {
	c := *d
	c.Columns = append([]string(nil), d.Columns...)
	c.GroupBy = append([]string(nil), d.GroupBy...)
	c.OrderBy = append([]string(nil), d.OrderBy...)
	c.Where = append([]Predicate(nil), d.Where...)
	c.Having = append([]Predicate(nil), d.Having...)
	c.Combine = append([]Combination(nil), d.Combine...)
	c.Joins = make([]Join, len(d.Joins))
	for i, j := range d.Joins {
		c.Joins[i] = Join{
			Clause: j.Clause,
			On:     append([]string(nil), j.On...),
			Using:  append([]string(nil), j.Using...),
		}
	}
	return &c
}
