package model

// RawRecord is one spreadsheet row keyed by header name.
// Blank cells are stored as absent keys.
type RawRecord map[string]string

// Get returns the cell value for column and whether it was present.
// Absent columns and blank cells both report ok=false.
func (r RawRecord) Get(column string) (string, bool) {
	v, ok := r[column]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// IsBlank reports whether every cell in the row is empty.
func (r RawRecord) IsBlank() bool {
	for _, v := range r {
		if v != "" {
			return false
		}
	}
	return true
}
