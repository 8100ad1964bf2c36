package clean

import (
	"sort"

	"github.com/gyeh/conclean/internal/model"
	"github.com/gyeh/conclean/internal/normalize"
)

// Project renders records onto columns, drops exact duplicates (first
// occurrence wins) and sorts by Full Name with empty names last.
// It returns the table and the number of duplicates dropped.
func Project(records []model.CleanedRecord, columns []string) (*model.Table, int64) {
	t := &model.Table{Columns: columns}
	seen := make(map[string]struct{}, len(records))
	var dropped int64
	for i := range records {
		row := records[i].Project(columns)
		key := normalize.RowKey(row)
		if _, dup := seen[key]; dup {
			dropped++
			continue
		}
		seen[key] = struct{}{}
		t.Rows = append(t.Rows, row)
	}
	SortByName(t)
	return t, dropped
}

// SortByName orders rows ascending by Full Name. Rows with an empty name go
// last; ties keep their original order.
func SortByName(t *model.Table) {
	idx := t.ColumnIndex(model.ColFullName)
	if idx < 0 {
		return
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		a, b := t.Rows[i][idx], t.Rows[j][idx]
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a < b
	})
}
