package entities

import (
	"reflect"
	"sort"
)

// Table is the measurement list: an ordered sequence of rows plus the
// column order used when the table is written out. Row order is
// insertion order (file order, then within-file record order).
type Table struct {
	columns []string
	known   map[string]bool
	rows    []Row
}

// NewTable creates an empty table with the given initial column order,
// normally the default-row template's columns.
func NewTable(columns []string) *Table {
	t := &Table{known: make(map[string]bool, len(columns))}
	for _, c := range columns {
		if !t.known[c] {
			t.known[c] = true
			t.columns = append(t.columns, c)
		}
	}
	return t
}

// Append adds a row to the end of the table. Columns not yet tracked
// are appended to the column order sorted by name, so the layout stays
// deterministic regardless of map iteration order.
func (t *Table) Append(row Row) {
	var extra []string
	for col := range row {
		if !t.known[col] {
			extra = append(extra, col)
		}
	}
	sort.Strings(extra)
	for _, col := range extra {
		t.known[col] = true
		t.columns = append(t.columns, col)
	}
	t.rows = append(t.rows, row)
}

// Columns returns the column order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Rows returns all rows in order.
func (t *Table) Rows() []Row {
	return t.rows
}

// Equal reports whether two tables have the same columns and the same
// rows in the same order.
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.rows) != len(other.rows) || !reflect.DeepEqual(t.columns, other.columns) {
		return false
	}
	for i := range t.rows {
		if !reflect.DeepEqual(t.rows[i], other.rows[i]) {
			return false
		}
	}
	return true
}
