package normalize

import (
	"testing"
	"time"
)

func TestParseDOB(t *testing.T) {
	tests := []struct {
		in   string
		want string // "" means missing
	}{
		{"22/08/1990", "1990-08-22"},
		{"02/03/1971", "1971-03-02"},
		{"2/3/1971", "1971-03-02"},
		{"22-08-1990", "1990-08-22"},
		{"22.08.1990", "1990-08-22"},
		{"1990-08-22", "1990-08-22"},
		{"1990-08-22 00:00:00", "1990-08-22"},
		{"22 August 1990", "1990-08-22"},
		{"1965", "1965-01-01"},
		{"  22/08/1990 ", "1990-08-22"},
		{"not a date", ""},
		{"", ""},
		{"00/00/1965", ""},
		{"31/02/1980", ""},
		{"08/22/1990", "1990-08-22"},
		{"12/25/1990", "1990-12-25"},
		{"12-25-1990", "1990-12-25"},
		{"Aug 22, 1990", "1990-08-22"},
		{"Wed, 22 Aug 1990 10:15:00 +0000", "1990-08-22"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseDOB(tt.in)
			if tt.want == "" {
				if got != nil {
					t.Errorf("ParseDOB(%q) = %v, want nil", tt.in, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseDOB(%q) = nil, want %s", tt.in, tt.want)
			}
			if s := got.Format("2006-01-02"); s != tt.want {
				t.Errorf("ParseDOB(%q) = %s, want %s", tt.in, s, tt.want)
			}
		})
	}
}

func TestParseDOB_CalendarDate(t *testing.T) {
	got := ParseDOB("22/08/1990")
	want := time.Date(1990, time.August, 22, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Errorf("ParseDOB = %v, want %v", got, want)
	}
}
