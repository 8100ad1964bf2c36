package xlsxread

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/conclean/internal/model"
	"github.com/gyeh/conclean/internal/normalize"
)

// DefaultHeaderRow is the zero-based physical row holding column names in
// the consolidated list; row 0 is a title banner.
const DefaultHeaderRow = 1

// Reader holds one worksheet of a workbook, split into header and records.
type Reader struct {
	file    *excelize.File
	sheet   string
	header  []string
	records []model.RawRecord
	blank   int64
}

// Open opens an .xlsx workbook and loads sheet, treating the row at index
// headerRow as the header and everything below it as records. An empty sheet
// name selects the first worksheet.
func Open(path, sheet string, headerRow int) (*Reader, error) {
	if headerRow < 0 {
		return nil, fmt.Errorf("header row must be >= 0, got %d", headerRow)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			f.Close()
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	// Raw values keep date serials away from the workbook's display formats.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	dc := newDateCells(f, sheet)
	for i, cells := range rows {
		for j, v := range cells {
			cells[j] = dc.render(j+1, i+1, v)
		}
	}
	if len(rows) <= headerRow {
		f.Close()
		return nil, fmt.Errorf("sheet %q has %d rows, header expected at row %d", sheet, len(rows), headerRow)
	}

	r := &Reader{file: f, sheet: sheet, header: headerNames(rows[headerRow])}
	for _, cells := range rows[headerRow+1:] {
		rec := r.record(cells)
		if rec.IsBlank() {
			r.blank++
			continue
		}
		r.records = append(r.records, rec)
	}
	return r, nil
}

// headerNames trims header cells. Blank headers keep their position so that
// cell indexes stay aligned.
func headerNames(cells []string) []string {
	names := make([]string, len(cells))
	for i, c := range cells {
		names[i] = strings.TrimSpace(normalize.NormalizeCell(c))
	}
	return names
}

// record keys cells by header name. Cells under blank headers are dropped and
// for repeated header names the first column wins.
func (r *Reader) record(cells []string) model.RawRecord {
	rec := make(model.RawRecord, len(r.header))
	for i, name := range r.header {
		if name == "" {
			continue
		}
		if _, seen := rec[name]; seen {
			continue
		}
		var v string
		if i < len(cells) {
			v = normalize.NormalizeCell(cells[i])
		}
		rec[name] = v
	}
	return rec
}

// Sheet returns the name of the worksheet that was read.
func (r *Reader) Sheet() string {
	return r.sheet
}

// Header returns the non-blank column names in sheet order.
func (r *Reader) Header() []string {
	out := make([]string, 0, len(r.header))
	for _, h := range r.header {
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}

// NumRows returns the number of non-blank records below the header.
func (r *Reader) NumRows() int64 {
	return int64(len(r.records))
}

// BlankRows returns how many entirely empty rows were skipped.
func (r *Reader) BlankRows() int64 {
	return r.blank
}

// Records returns the loaded rows in sheet order.
func (r *Reader) Records() []model.RawRecord {
	return r.records
}

// Close releases the workbook.
func (r *Reader) Close() error {
	return r.file.Close()
}
