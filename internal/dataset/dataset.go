// Package dataset defines the in-memory tabular data model consumed by the
// profiling engine. A Table is produced by a loader (CSV, XLSX, Parquet)
// and borrowed read-only by the engine; absent cells are represented by an
// explicit null marker rather than mixed empty-string conventions.
package dataset

import (
	"fmt"
	"strings"
)

// Value is a single cell: a raw string plus an explicit null marker.
type Value struct {
	Raw  string
	Null bool
}

// Null returns the null cell value.
func Null() Value {
	return Value{Null: true}
}

// String returns a non-null cell holding s.
func String(s string) Value {
	return Value{Raw: s}
}

// Column is a named, ordered sequence of values.
type Column struct {
	Name   string
	Values []Value
}

// Table is an ordered sequence of named columns of equal length.
type Table struct {
	Columns []Column
}

// StructuralError reports a column whose length disagrees with the rest of
// the table. Profiling aborts entirely on this condition.
type StructuralError struct {
	Column string
	Len    int
	Want   int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("column %q has %d values, want %d", e.Column, e.Len, e.Want)
}

// NumRows returns the row count, taken from the first column.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// NumCols returns the column count.
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// Validate checks that all columns have equal length.
func (t *Table) Validate() error {
	if len(t.Columns) == 0 {
		return nil
	}
	want := len(t.Columns[0].Values)
	for _, c := range t.Columns[1:] {
		if len(c.Values) != want {
			return &StructuralError{Column: c.Name, Len: len(c.Values), Want: want}
		}
	}
	return nil
}

// rowSep is an unlikely-in-data separator used to build row tuple keys.
const rowSep = "\x1f"

// nullToken distinguishes a null cell from a literal empty string in tuples.
const nullToken = "\x00null\x00"

// RowKey builds a string key identifying the full value tuple of row i.
// Two rows have equal keys iff every cell (including nullness) matches.
func (t *Table) RowKey(i int) string {
	parts := make([]string, len(t.Columns))
	for j, c := range t.Columns {
		v := c.Values[i]
		if v.Null {
			parts[j] = nullToken
		} else {
			parts[j] = v.Raw
		}
	}
	return strings.Join(parts, rowSep)
}
