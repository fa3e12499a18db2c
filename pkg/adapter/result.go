package adapter

import (
	"database/sql"
	"fmt"

	"github.com/leapstack-labs/sqlforge/pkg/core"
)

// Record is one result row. Values are ordered like the result set's columns.
type Record struct {
	columns []string
	Values  []any
}

// Get returns the value of the named column.
func (r Record) Get(column string) (any, bool) {
	for i, c := range r.columns {
		if c == column {
			return r.Values[i], true
		}
	}
	return nil, false
}

// Map returns the record keyed by column name.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.columns))
	for i, c := range r.columns {
		m[c] = r.Values[i]
	}
	return m
}

// ResultSet is a fully loaded query result with a forward cursor that can
// be repositioned.
type ResultSet struct {
	columns []string
	records []Record
	pos     int // index of the current record, -1 before the first Next
}

// NewResultSet builds a result set from already materialized rows.
func NewResultSet(columns []string, rows [][]any) *ResultSet {
	rs := &ResultSet{columns: columns, pos: -1}
	for _, values := range rows {
		rs.records = append(rs.records, Record{columns: columns, Values: values})
	}
	return rs
}

// Load drains rows into a ResultSet. Byte slices are converted to strings
// since drivers hand text columns back as []byte.
func Load(rows *sql.Rows) (*ResultSet, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}
	var data [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		data = append(data, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return NewResultSet(columns, data), nil
}

// Columns returns the column names in result order.
func (rs *ResultSet) Columns() []string {
	return rs.columns
}

// Count returns the number of records.
func (rs *ResultSet) Count() int {
	return len(rs.records)
}

// IsLoaded reports whether the query returned at least one record.
func (rs *ResultSet) IsLoaded() bool {
	return len(rs.records) > 0
}

// Records returns every record in order.
func (rs *ResultSet) Records() []Record {
	return rs.records
}

// Next advances the cursor and reports whether a record is available.
func (rs *ResultSet) Next() bool {
	if rs.pos+1 >= len(rs.records) {
		rs.pos = len(rs.records)
		return false
	}
	rs.pos++
	return true
}

// Record returns the record under the cursor.
func (rs *ResultSet) Record() (Record, error) {
	if rs.pos < 0 || rs.pos >= len(rs.records) {
		return Record{}, &core.OutOfBoundsError{Index: rs.pos, Len: len(rs.records)}
	}
	return rs.records[rs.pos], nil
}

// Seek positions the cursor so the next call to Next yields record i.
func (rs *ResultSet) Seek(i int) error {
	if i < 0 || i >= len(rs.records) {
		return &core.OutOfBoundsError{Index: i, Len: len(rs.records)}
	}
	rs.pos = i - 1
	return nil
}

// Rewind moves the cursor before the first record.
func (rs *ResultSet) Rewind() {
	rs.pos = -1
}
