package clean

import (
	"github.com/gyeh/conclean/internal/model"
	"github.com/gyeh/conclean/internal/normalize"
)

// TransformStats counts per-field anomalies recovered during Transform.
type TransformStats struct {
	EmptyNames       int64
	DOBParseFailures int64 // non-empty DOB cells that did not parse
}

// CleanRecord derives Full Name, DOB and Nationality from r. Every other
// allow-list column is copied through unchanged.
func CleanRecord(r model.RawRecord) model.CleanedRecord {
	c := model.CleanedRecord{
		FullName: normalize.BuildFullName(r),
		Extra:    make(map[string]string),
	}
	if v, ok := r.Get(model.ColDOB); ok {
		c.DOB = normalize.ParseDOB(v)
	}
	if v, ok := r.Get(model.ColNationality); ok {
		c.Nationality = normalize.CleanNationality(&v)
	}
	for _, col := range model.AllowList {
		switch col.Name {
		case model.ColFullName, model.ColDOB, model.ColNationality:
			continue
		}
		if v, ok := r.Get(col.Name); ok {
			c.Extra[col.Name] = v
		}
	}
	return c
}

// Transform cleans every record.
func Transform(records []model.RawRecord) ([]model.CleanedRecord, TransformStats) {
	var stats TransformStats
	out := make([]model.CleanedRecord, len(records))
	for i, r := range records {
		out[i] = CleanRecord(r)
		if out[i].FullName == "" {
			stats.EmptyNames++
		}
		if _, ok := r.Get(model.ColDOB); ok && out[i].DOB == nil {
			stats.DOBParseFailures++
		}
	}
	return out, stats
}
