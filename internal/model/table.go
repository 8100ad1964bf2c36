package model

// Table is the projected output: a header plus string rows in header order.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of name in Columns, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
