package model

import "time"

// DateLayout is the rendering used for DOB in the output.
const DateLayout = "2006-01-02"

// CleanedRecord is a RawRecord after name assembly, DOB parsing and
// nationality cleanup. Pass-through columns are kept verbatim in Extra.
type CleanedRecord struct {
	FullName    string
	DOB         *time.Time // nil when missing or unparseable
	Nationality string
	Extra       map[string]string
}

// Field returns the output representation of column. The second return is
// false when the record has no value for it (a missing marker).
func (c *CleanedRecord) Field(column string) (string, bool) {
	switch column {
	case ColFullName:
		return c.FullName, c.FullName != ""
	case ColDOB:
		if c.DOB == nil {
			return "", false
		}
		return c.DOB.Format(DateLayout), true
	case ColNationality:
		return c.Nationality, c.Nationality != ""
	}
	v, ok := c.Extra[column]
	return v, ok && v != ""
}

// Project renders the record as one output row with the given columns.
// Missing values become empty strings.
func (c *CleanedRecord) Project(columns []string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i], _ = c.Field(col)
	}
	return row
}
