package model

// ParquetRecord mirrors the Parquet schema for a cleaned row. Every column of
// AllowList is present; columns missing from the source stay null.
type ParquetRecord struct {
	FullName         *string `parquet:"full_name,optional"`
	DOB              *string `parquet:"dob,optional"`
	Nationality      *string `parquet:"nationality,optional"`
	Country          *string `parquet:"country,optional"`
	GroupType        *string `parquet:"group_type,optional"`
	AliasType        *string `parquet:"alias_type,optional"`
	AliasQuality     *string `parquet:"alias_quality,optional"`
	Regime           *string `parquet:"regime,optional"`
	DateDesignated   *string `parquet:"date_designated,optional"`
	LastUpdated      *string `parquet:"last_updated,optional"`
	OtherInformation *string `parquet:"other_information,optional"`
}

// Fields returns pointers to each column keyed by parquet column name.
func (p *ParquetRecord) Fields() map[string]**string {
	return map[string]**string{
		"full_name":         &p.FullName,
		"dob":               &p.DOB,
		"nationality":       &p.Nationality,
		"country":           &p.Country,
		"group_type":        &p.GroupType,
		"alias_type":        &p.AliasType,
		"alias_quality":     &p.AliasQuality,
		"regime":            &p.Regime,
		"date_designated":   &p.DateDesignated,
		"last_updated":      &p.LastUpdated,
		"other_information": &p.OtherInformation,
	}
}

// ToParquetRecord maps a projected row onto the fixed Parquet schema. Empty
// cells become null.
func ToParquetRecord(columns []string, row []string) ParquetRecord {
	var p ParquetRecord
	fields := p.Fields()
	for i, name := range columns {
		col, ok := OutputColumnByName(name)
		if !ok || i >= len(row) || row[i] == "" {
			continue
		}
		v := row[i]
		*fields[col.Parquet] = &v
	}
	return p
}
