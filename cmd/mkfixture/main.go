// mkfixture writes a small representative consolidated-list workbook.
// The sample rows are repeated with numbered suffixes until --rows is reached,
// and every --dup-every'th row is an exact copy of the one before it.
// Usage: go run ./cmd/mkfixture --out testdata/ConList.xlsx --rows 200
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gyeh/conclean/internal/testfixture"
)

func main() {
	out := flag.String("out", "ConList.xlsx", "output workbook")
	maxRows := flag.Int("rows", 0, "rows to write (0 = the sample rows only)")
	dupEvery := flag.Int("dup-every", 10, "insert an exact duplicate every N rows (0 = never)")
	flag.Parse()

	wb := testfixture.SampleConList()
	if *maxRows > 0 {
		wb.Rows = expand(wb, *maxRows, *dupEvery)
	}

	if err := testfixture.Write(*out, wb); err != nil {
		fmt.Fprintf(os.Stderr, "write fixture: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(wb.Rows), *out)
}

// expand cycles through the sample rows, tagging the last name fragment with
// a pass number so each pass yields distinct names.
func expand(wb testfixture.Workbook, n, dupEvery int) [][]string {
	name6 := -1
	for i, h := range wb.Header {
		if h == "Name 6" {
			name6 = i
		}
	}

	rows := make([][]string, 0, n)
	for pass := 0; len(rows) < n; pass++ {
		for _, src := range wb.Rows {
			if len(rows) >= n {
				break
			}
			if dupEvery > 0 && len(rows) > 0 && len(rows)%dupEvery == 0 {
				rows = append(rows, append([]string(nil), rows[len(rows)-1]...))
				continue
			}
			row := append([]string(nil), src...)
			if pass > 0 && name6 >= 0 && row[name6] != "" {
				row[name6] = fmt.Sprintf("%s %d", row[name6], pass)
			}
			rows = append(rows, row)
		}
	}
	return rows
}
