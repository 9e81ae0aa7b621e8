// Package table provides the in-memory tabular dataset model for dataprep.
//
// A Table is an ordered sequence of rows over a fixed, named, ordered column
// set. Cells are tagged Values (missing, string, or number); missing-ness is
// a first-class case rather than a NaN sentinel. Rows carry the positional
// index they had in the table they were originally constructed in, and every
// filtering operation preserves that index, so callers can correlate cleaned
// output with metadata keyed by original position.
//
// Tables are immutable from the outside: cell maps are unexported, and the
// Filter/MapColumn helpers return deep, independent copies. No operation in
// this module mutates a caller's table.
package table

import (
	"github.com/dataforge-io/dataprep/pkg/errors"
	jsonpool "github.com/dataforge-io/dataprep/pkg/json"
)

// Domain is the inferred value domain of a column, determined by inspecting
// the non-missing values actually present
type Domain int

const (
	// DomainEmpty means the column holds only missing values
	DomainEmpty Domain = iota
	// DomainText means all non-missing values are strings
	DomainText
	// DomainNumeric means all non-missing values are numbers
	DomainNumeric
	// DomainMixed means the column holds both strings and numbers
	DomainMixed
)

// String returns a short name for the domain
func (d Domain) String() string {
	switch d {
	case DomainText:
		return "text"
	case DomainNumeric:
		return "numeric"
	case DomainMixed:
		return "mixed"
	default:
		return "empty"
	}
}

// Row is a single table row: its original positional index plus the cells
// keyed by column name. The cell map is unexported so rows handed out by a
// Table cannot be used to mutate it.
type Row struct {
	index int
	cells map[string]Value
}

// Index returns the row's position in the table it was originally built in.
// Filtering never renumbers indices, so gaps appear where rows were dropped.
func (r Row) Index() int {
	return r.index
}

// Value returns the cell for the named column and whether the column exists
func (r Row) Value(column string) (Value, bool) {
	v, ok := r.cells[column]
	return v, ok
}

// Cells returns a copy of the row's cells keyed by column name
func (r Row) Cells() map[string]Value {
	out := make(map[string]Value, len(r.cells))
	for k, v := range r.cells {
		out[k] = v
	}
	return out
}

// Table is an ordered sequence of rows sharing a fixed, ordered column set
type Table struct {
	columns []string
	rows    []Row
}

// New builds a table from an ordered column list and row cell maps. Column
// names must be non-empty and unique. A row may omit columns (omitted cells
// become the missing marker) but must not name columns outside the set.
func New(columns []string, rows []map[string]Value) (*Table, error) {
	if len(columns) == 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "table requires at least one column")
	}

	colSet := make(map[string]struct{}, len(columns))
	for _, name := range columns {
		if name == "" {
			return nil, errors.New(errors.ErrorTypeValidation, "column names must be non-empty")
		}
		if _, dup := colSet[name]; dup {
			return nil, errors.Newf(errors.ErrorTypeValidation, "duplicate column %q", name)
		}
		colSet[name] = struct{}{}
	}

	t := &Table{
		columns: append([]string(nil), columns...),
		rows:    make([]Row, 0, len(rows)),
	}

	for i, cells := range rows {
		for name := range cells {
			if _, ok := colSet[name]; !ok {
				return nil, errors.Newf(errors.ErrorTypeValidation,
					"row %d references unknown column %q", i, name).
					WithDetail("row", i).
					WithDetail("column", name)
			}
		}

		row := Row{index: i, cells: make(map[string]Value, len(columns))}
		for _, name := range columns {
			if v, ok := cells[name]; ok {
				row.cells[name] = v
			} else {
				row.cells[name] = Missing()
			}
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

// Columns returns the ordered column names
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// NumRows returns the number of rows currently in the table
func (t *Table) NumRows() int {
	return len(t.rows)
}

// HasColumn reports whether the named column exists
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Row returns the row at position i (0 <= i < NumRows). Note that a row's
// Index may differ from i after filtering.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Rows returns the rows in order
func (t *Table) Rows() []Row {
	return append([]Row(nil), t.rows...)
}

// ColumnValues returns the named column's values in row order
func (t *Table) ColumnValues(name string) ([]Value, error) {
	if !t.HasColumn(name) {
		return nil, errors.Newf(errors.ErrorTypeLookup, "column %q does not exist", name).
			WithDetail("column", name)
	}
	out := make([]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = row.cells[name]
	}
	return out, nil
}

// Domain returns the inferred value domain of the named column
func (t *Table) Domain(name string) (Domain, error) {
	values, err := t.ColumnValues(name)
	if err != nil {
		return DomainEmpty, err
	}

	var sawText, sawNumeric bool
	for _, v := range values {
		switch v.Kind() {
		case KindString:
			sawText = true
		case KindNumber:
			sawNumeric = true
		}
	}

	switch {
	case sawText && sawNumeric:
		return DomainMixed, nil
	case sawText:
		return DomainText, nil
	case sawNumeric:
		return DomainNumeric, nil
	default:
		return DomainEmpty, nil
	}
}

// Clone returns a deep, independent copy of the table
func (t *Table) Clone() *Table {
	return t.Filter(func(Row) bool { return true })
}

// Filter returns a new table holding deep copies of the rows keep reports
// true for, in order, with original indices preserved. The receiver is not
// modified.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := &Table{
		columns: append([]string(nil), t.columns...),
		rows:    make([]Row, 0, len(t.rows)),
	}
	for _, row := range t.rows {
		if !keep(row) {
			continue
		}
		copied := Row{index: row.index, cells: make(map[string]Value, len(row.cells))}
		for k, v := range row.cells {
			copied.cells[k] = v
		}
		out.rows = append(out.rows, copied)
	}
	return out
}

// MapColumn returns a new table with fn applied to every cell of the named
// column; all other cells are copied unchanged. The receiver is not modified.
func (t *Table) MapColumn(name string, fn func(Value) Value) (*Table, error) {
	if !t.HasColumn(name) {
		return nil, errors.Newf(errors.ErrorTypeLookup, "column %q does not exist", name).
			WithDetail("column", name)
	}
	out := t.Clone()
	for i := range out.rows {
		out.rows[i].cells[name] = fn(out.rows[i].cells[name])
	}
	return out, nil
}

// rowJSON is the row wire shape used for debug dumps
type rowJSON struct {
	Index int              `json:"index"`
	Cells map[string]Value `json:"cells"`
}

// MarshalJSON encodes the table for debug dumps and structured log fields
func (t *Table) MarshalJSON() ([]byte, error) {
	rows := make([]rowJSON, len(t.rows))
	for i, row := range t.rows {
		rows[i] = rowJSON{Index: row.index, Cells: row.cells}
	}
	return jsonpool.Marshal(struct {
		Columns []string  `json:"columns"`
		Rows    []rowJSON `json:"rows"`
	}{Columns: t.columns, Rows: rows})
}

// String returns a compact JSON rendering, for logs
func (t *Table) String() string {
	s, err := jsonpool.MarshalString(t)
	if err != nil {
		return "table<unencodable>"
	}
	return s
}
