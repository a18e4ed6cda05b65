package timeutil

import (
	"testing"
)

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2025-11-23")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != "2025-11-23" {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestSeasonYear(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2025-09-07", 2025},
		{"2026-01-11", 2025},
		{"2026-02-08", 2025},
		{"2026-03-01", 2026},
	}

	for _, tc := range cases {
		d, err := ParseDate(tc.date)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.date, err)
		}
		if got := SeasonYear(d); got != tc.want {
			t.Fatalf("SeasonYear(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}
