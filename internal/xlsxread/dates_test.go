package xlsxread

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/conclean/internal/testfixture"
)

func TestOpen_DateCellsAsISO(t *testing.T) {
	path := writeWorkbook(t, testfixture.Workbook{
		Header: []string{"Name 6", "DOB", "Last Updated", "Group ID"},
		Rows:   [][]string{{"Doe"}},
		Cells: map[string]any{
			"B3": time.Date(1971, time.March, 2, 0, 0, 0, 0, time.UTC),
			"C3": time.Date(2022, time.March, 10, 14, 30, 0, 0, time.UTC),
			"D3": 13521,
		},
	})

	r, err := Open(path, "", DefaultHeaderRow)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	rec := r.Records()[0]
	if got := rec["DOB"]; got != "1971-03-02" {
		t.Errorf("DOB = %q, want 1971-03-02", got)
	}
	if got := rec["Last Updated"]; got != "2022-03-10 14:30:00" {
		t.Errorf("Last Updated = %q, want 2022-03-10 14:30:00", got)
	}
	if got := rec["Group ID"]; got != "13521" {
		t.Errorf("plain number should stay as is, got %q", got)
	}
}

func TestOpen_CustomDateFormat(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetRow("Sheet1", "A2", &[]string{"Name 6", "DOB", "Passport Number"})
	f.SetCellValue("Sheet1", "A3", "Doe")
	f.SetCellValue("Sheet1", "B3", 25994) // 1971-03-02
	f.SetCellValue("Sheet1", "C3", 25994)

	code := "dd/mm/yyyy"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &code})
	if err != nil {
		t.Fatalf("NewStyle: %v", err)
	}
	if err := f.SetCellStyle("Sheet1", "B3", "B3", style); err != nil {
		t.Fatalf("SetCellStyle: %v", err)
	}
	path := filepath.Join(t.TempDir(), "ConList.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	r, err := Open(path, "", DefaultHeaderRow)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	rec := r.Records()[0]
	if got := rec["DOB"]; got != "1971-03-02" {
		t.Errorf("DOB = %q, want 1971-03-02", got)
	}
	if got := rec["Passport Number"]; got != "25994" {
		t.Errorf("unstyled number = %q, want 25994", got)
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"dd/mm/yyyy", true},
		{"yyyy-mm-dd", true},
		{"[$-809]d mmmm yyyy", true},
		{"mmm-yy", true},
		{"0.00", false},
		{"hh:mm", false},
		{`"day "0`, false},
		{"#,##0 [$USD]", false},
	}
	for _, tt := range tests {
		if got := isDateFormatCode(tt.code); got != tt.want {
			t.Errorf("isDateFormatCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
