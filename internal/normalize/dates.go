package normalize

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Date formats seen in the DOB column. Ambiguous numeric dates are read
// day-first.
var dateFormats = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2/1/06",
	"2-1-06",
	"2006",
}

// Month-first forms, tried only when no day-first reading is a real date
// (e.g. "08/22/1990").
var swappedFormats = []string{
	"1/2/2006",
	"1-2-2006",
	"1.2.2006",
	"1/2/06",
	"1-2-06",
}

// ParseDOB parses a date of birth, day-first when ambiguous. Returns nil if
// the input is empty, malformed, or names an impossible date such as
// "00/00/1965".
func ParseDOB(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOf(t)
		}
	}
	for _, layout := range swappedFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOf(t)
		}
	}
	t, err := dateparse.ParseIn(s, time.UTC,
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(true),
	)
	if err != nil {
		return nil
	}
	return dateOf(t)
}

func dateOf(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
