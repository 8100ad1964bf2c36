package normalize

import (
	"regexp"
	"strings"
)

var numericTagSpace = regexp.MustCompile(`\(\d+\)\s*`)

// CleanNationality removes numbered country tags, collapses ".." artifacts
// and trims. "(1) Germany. (2) Morocco" becomes "Germany. Morocco".
func CleanNationality(v *string) string {
	if v == nil {
		return ""
	}
	s := numericTagSpace.ReplaceAllString(*v, "")
	s = strings.ReplaceAll(s, "..", ".")
	return strings.TrimSpace(s)
}
