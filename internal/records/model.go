// Package records loads and saves flat, header-defined tables from delimited
// text files. Every field is kept as text; typing is left to the caller.
package records

// Row is one data line keyed by column name.
type Row map[string]string

// Get returns the value for col, or "" when the row has no such field.
func (r Row) Get(col string) string {
	if r == nil {
		return ""
	}
	return r[col]
}

// Table is an ordered collection of rows sharing one header.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable returns an empty table with the given header.
func NewTable(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...), Rows: []Row{}}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Append adds a row at the end of the table.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// HasColumn reports whether col is part of the header.
func (t *Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// EnsureColumns appends any of cols missing from the header, keeping the
// existing order intact.
func (t *Table) EnsureColumns(cols ...string) {
	for _, c := range cols {
		if !t.HasColumn(c) {
			t.Columns = append(t.Columns, c)
		}
	}
}
