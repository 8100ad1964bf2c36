package model

// Source and output column names as they appear in the consolidated list.
const (
	ColFullName       = "Full Name"
	ColDOB            = "DOB"
	ColNationality    = "Nationality"
	ColCountry        = "Country"
	ColGroupType      = "Group Type"
	ColAliasType      = "Alias Type"
	ColAliasQuality   = "Alias Quality"
	ColRegime         = "Regime"
	ColDateDesignated = "UK Sanctions List Date Designated"
	ColLastUpdated    = "Last Updated"
	ColOtherInfo      = "Other Information"
)

// OutputColumn describes one column of the cleaned output.
type OutputColumn struct {
	Name      string // header as written to CSV, e.g. "Full Name"
	Parquet   string // parquet column name, e.g. "full_name"
	Synthetic bool   // derived by the pipeline, present regardless of the source header
}

// AllowList is the fixed, ordered set of columns the pipeline retains.
var AllowList = []OutputColumn{
	{Name: ColFullName, Parquet: "full_name", Synthetic: true},
	{Name: ColDOB, Parquet: "dob"},
	{Name: ColNationality, Parquet: "nationality"},
	{Name: ColCountry, Parquet: "country"},
	{Name: ColGroupType, Parquet: "group_type"},
	{Name: ColAliasType, Parquet: "alias_type"},
	{Name: ColAliasQuality, Parquet: "alias_quality"},
	{Name: ColRegime, Parquet: "regime"},
	{Name: ColDateDesignated, Parquet: "date_designated"},
	{Name: ColLastUpdated, Parquet: "last_updated"},
	{Name: ColOtherInfo, Parquet: "other_information"},
}

// NameFragments are the name-part columns consulted when assembling Full Name.
// "Name 5" is deliberately absent.
var NameFragments = []string{"Name 1", "Name 2", "Name 3", "Name 4", "Name 6"}

// OutputColumnByName returns the OutputColumn for the given header, or ok=false.
func OutputColumnByName(name string) (OutputColumn, bool) {
	for _, c := range AllowList {
		if c.Name == name {
			return c, true
		}
	}
	return OutputColumn{}, false
}

// ProjectColumns returns the allow-list columns present in header, in
// allow-list order. Synthetic columns are always included.
func ProjectColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var cols []string
	for _, c := range AllowList {
		if c.Synthetic || present[c.Name] {
			cols = append(cols, c.Name)
		}
	}
	return cols
}
