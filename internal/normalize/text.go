package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var cellReplacer = strings.NewReplacer(
	"\u00a0", " ",
	"\u200b", "",
	"\r\n", "\n",
)

// NormalizeCell converts spreadsheet cell text to NFC and replaces the
// no-break and zero-width spaces that regexp \s does not match.
func NormalizeCell(s string) string {
	if s == "" {
		return s
	}
	return cellReplacer.Replace(norm.NFC.String(s))
}
