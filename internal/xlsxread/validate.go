package xlsxread

import (
	"github.com/gyeh/conclean/internal/model"
)

// HeaderReport describes which expected columns a sheet provides.
type HeaderReport struct {
	Present          []string // allow-list columns found in the header
	Missing          []string // allow-list columns absent from the header
	NameFragments    []string // name fragment columns found
	MissingFragments []string
}

// ValidateHeader compares header against the allow-list and name fragment
// columns. Absent columns are not an error: the pipeline skips them.
func ValidateHeader(header []string) HeaderReport {
	columns := make(map[string]bool, len(header))
	for _, h := range header {
		columns[h] = true
	}

	var rep HeaderReport
	for _, c := range model.AllowList {
		if c.Synthetic {
			continue
		}
		if columns[c.Name] {
			rep.Present = append(rep.Present, c.Name)
		} else {
			rep.Missing = append(rep.Missing, c.Name)
		}
	}
	for _, f := range model.NameFragments {
		if columns[f] {
			rep.NameFragments = append(rep.NameFragments, f)
		} else {
			rep.MissingFragments = append(rep.MissingFragments, f)
		}
	}
	return rep
}

// HasNames reports whether any name fragment column is present.
func (h HeaderReport) HasNames() bool {
	return len(h.NameFragments) > 0
}
