package normalize

import (
	"regexp"
	"strings"

	"github.com/gyeh/conclean/internal/model"
)

var (
	multiSpace  = regexp.MustCompile(`[\s\p{Zs}\x{0085}]+`)
	numericTag  = regexp.MustCompile(`\(\d+\)`)
	parenthesis = regexp.MustCompile(`\([^)]+\)`)
)

// FieldGetter exposes tolerant column lookup; ok=false marks a missing value.
type FieldGetter interface {
	Get(column string) (string, bool)
}

// CleanNamePart strips numbered tags like "(1)", any other parenthesized
// text, surrounding whitespace and quotes, and collapses inner whitespace.
// A missing or malformed fragment yields "".
func CleanNamePart(v *string) string {
	if v == nil {
		return ""
	}
	s := numericTag.ReplaceAllString(*v, "")
	s = parenthesis.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return multiSpace.ReplaceAllString(s, " ")
}

// BuildFullName joins the non-empty cleaned name fragments of r with single
// spaces. Returns "" when every fragment is empty.
func BuildFullName(r FieldGetter) string {
	parts := make([]string, 0, len(model.NameFragments))
	for _, col := range model.NameFragments {
		v, ok := r.Get(col)
		if !ok {
			continue
		}
		if p := CleanNamePart(&v); p != "" {
			parts = append(parts, p)
		}
	}
	return StripNumericTags(strings.Join(parts, " "))
}

// StripNumericTags removes any "(<digits>)" left in s and trims the edges.
func StripNumericTags(s string) string {
	return strings.TrimSpace(numericTag.ReplaceAllString(s, ""))
}
