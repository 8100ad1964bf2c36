package clean

import (
	"reflect"
	"testing"

	"github.com/gyeh/conclean/internal/model"
)

func rec(name, regime string) model.CleanedRecord {
	return model.CleanedRecord{FullName: name, Extra: map[string]string{"Regime": regime}}
}

func TestProject_DedupesAndSorts(t *testing.T) {
	records := []model.CleanedRecord{
		rec("Zed", "Russia"),
		rec("", "Libya"),
		rec("Alpha", "Iran"),
		rec("Zed", "Russia"),
		rec("Alpha", "Syria"),
		rec("", "Libya"),
		rec("Mid", "Iraq"),
	}
	table, dropped := Project(records, []string{"Full Name", "Regime"})
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	want := [][]string{
		{"Alpha", "Iran"},
		{"Alpha", "Syria"},
		{"Mid", "Iraq"},
		{"Zed", "Russia"},
		{"", "Libya"},
	}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Errorf("rows = %v, want %v", table.Rows, want)
	}
}

func TestProject_DistinctOnAnyColumn(t *testing.T) {
	records := []model.CleanedRecord{rec("A", "x"), rec("A", "y")}
	table, dropped := Project(records, []string{"Full Name", "Regime"})
	if dropped != 0 || len(table.Rows) != 2 {
		t.Errorf("rows=%d dropped=%d, want 2 and 0", len(table.Rows), dropped)
	}

	// Without Regime in the projection the two rows collapse.
	table, dropped = Project(records, []string{"Full Name"})
	if dropped != 1 || len(table.Rows) != 1 {
		t.Errorf("rows=%d dropped=%d, want 1 and 1", len(table.Rows), dropped)
	}
}

func TestSortByName_EmptyLast(t *testing.T) {
	table := &model.Table{
		Columns: []string{"Regime", "Full Name"},
		Rows: [][]string{
			{"1", ""},
			{"2", "b"},
			{"3", ""},
			{"4", "a"},
		},
	}
	SortByName(table)
	var got []string
	for _, r := range table.Rows {
		got = append(got, r[0])
	}
	if want := []string{"4", "2", "1", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}
