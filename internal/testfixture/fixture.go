// Package testfixture writes small consolidated-list workbooks for tests and
// for the mkfixture command.
package testfixture

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook describes a single-sheet consolidated-list workbook.
type Workbook struct {
	Sheet  string // defaults to "Sheet1"
	Title  string // written to row 1 when non-empty; row 1 is left blank otherwise
	Header []string
	Rows   [][]string
	// Cells are typed values written after Rows, keyed by cell name such as
	// "K3". Use them for real Excel dates and numbers.
	Cells map[string]any
}

// ConListHeader is the header of the published consolidated list.
var ConListHeader = []string{
	"Name 6", "Name 1", "Name 2", "Name 3", "Name 4", "Name 5",
	"Title", "Name Non-Latin Script", "Non-Latin Script Type", "Non-Latin Script Language",
	"DOB", "Town of Birth", "Country of Birth", "Nationality",
	"Passport Number", "Passport Details", "National Identification Number",
	"National Identification Details", "Position",
	"Address 1", "Address 2", "Address 3", "Address 4", "Address 5", "Address 6",
	"Post/Zip Code", "Country", "Other Information", "Group Type",
	"Alias Type", "Alias Quality", "Regime",
	"Listed On", "UK Sanctions List Date Designated", "Last Updated", "Group ID",
}

// Row builds a row aligned to header from a column→value map.
func Row(header []string, values map[string]string) []string {
	row := make([]string, len(header))
	for i, h := range header {
		row[i] = values[h]
	}
	return row
}

// SampleConList returns a representative workbook: individuals with numbered
// name parts, an entity, an exact duplicate, a row with an unparseable DOB and
// a row with no name fragments.
func SampleConList() Workbook {
	h := ConListHeader
	jones := map[string]string{
		"Name 1": "Jim", "Name 2": "Jones", "Name 5": "Ignored", "Name 6": "Smith",
		"DOB": "22/08/1990", "Nationality": "(1) Germany. (2) Morocco",
		"Country": "Germany", "Group Type": "Individual", "Alias Type": "Primary name",
		"Regime": "Global Human Rights", "UK Sanctions List Date Designated": "10/03/2022",
		"Last Updated": "11/03/2022",
	}
	return Workbook{
		Title:  "CONSOLIDATED LIST OF FINANCIAL SANCTIONS TARGETS IN THE UK",
		Header: h,
		Rows: [][]string{
			Row(h, map[string]string{
				"Name 6": "ZAPCHAST LLP", "Group Type": "Entity", "Alias Type": "Primary name",
				"Regime": "Russia", "Country": "Russia", "Other Information": "(UK Sanctions List Ref):RUS1234",
			}),
			Row(h, jones),
			Row(h, map[string]string{
				"Name 1": "(1) John", "Name 6": "(2) Doe", "DOB": "00/00/1965",
				"Nationality": "(1) Russia. (2) Ukraine", "Group Type": "Individual",
				"Alias Type": "AKA", "Alias Quality": "Good", "Regime": "Russia",
			}),
			Row(h, jones),
			Row(h, map[string]string{
				"Name 1": "\"Abu\"", "Name 2": "  Bakr  ", "Name 3": "(GENERAL)", "Name 6": "AL-BAGHDADI",
				"DOB": "28/07/1971", "Nationality": "Iraqi", "Group Type": "Individual",
				"Regime": "ISIL (Da'esh) and Al-Qaida",
			}),
			Row(h, map[string]string{
				"Group Type": "Entity", "Regime": "Libya", "Other Information": "name withheld",
			}),
		},
	}
}

// Write saves wb as an .xlsx file at path.
func Write(path string, wb Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := wb.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	} else {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	if wb.Title != "" {
		if err := f.SetCellValue(sheet, "A1", wb.Title); err != nil {
			return fmt.Errorf("write title: %w", err)
		}
	}
	rows := append([][]string{wb.Header}, wb.Rows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	for cell, v := range wb.Cells {
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write cell %s: %w", cell, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
