package xlsxread

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Built-in number formats that render a serial as a calendar date.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true,
	34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true,
	55: true, 56: true, 57: true, 58: true,
}

// Quoted literals, escaped characters and [..] sections of a format code.
var fmtLiterals = regexp.MustCompile(`"[^"]*"|\\.|\[[^\]]*\]`)

// isDateFormatCode reports whether a custom number format shows a date.
func isDateFormatCode(code string) bool {
	code = strings.ToLower(fmtLiterals.ReplaceAllString(code, ""))
	return strings.ContainsAny(code, "dy")
}

// dateCells renders cells that hold Excel date serials as ISO dates, so
// that a DOB typed into Excel never reaches the text date parser in the
// workbook's display format.
type dateCells struct {
	file     *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool // style index → shows a date
}

func newDateCells(f *excelize.File, sheet string) *dateCells {
	dc := &dateCells{file: f, sheet: sheet, styles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		dc.date1904 = *props.Date1904
	}
	return dc
}

// render returns the text for the raw cell value at (col, row), both
// 1-based. Numeric cells styled as dates become "YYYY-MM-DD", or
// "YYYY-MM-DD hh:mm:ss" when they carry a time of day.
func (dc *dateCells) render(col, row int, raw string) string {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return raw
	}
	idx, err := dc.file.GetCellStyle(dc.sheet, cell)
	if err != nil || !dc.isDateStyle(idx) {
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, dc.date1904)
	if err != nil {
		return raw
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.DateTime)
}

func (dc *dateCells) isDateStyle(idx int) bool {
	if isDate, ok := dc.styles[idx]; ok {
		return isDate
	}
	isDate := false
	if style, err := dc.file.GetStyle(idx); err == nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = builtInDateFormats[style.NumFmt]
		}
	}
	dc.styles[idx] = isDate
	return isDate
}
