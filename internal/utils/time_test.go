package utils

import (
	"testing"
	"time"
)

func TestMonthEnd(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-02-10", "2025-02-28"},
		{"2024-02-01", "2024-02-29"},
		{"2025-04-30", "2025-04-30"},
		{"2025-12-05", "2025-12-31"},
	}

	for _, tc := range cases {
		in, err := ParseDate(tc.in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.in, err)
		}
		if got := FormatDate(MonthEnd(in)); got != tc.want {
			t.Fatalf("MonthEnd(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMonthStartTruncatesToFirstDay(t *testing.T) {
	in := time.Date(2025, time.August, 19, 13, 45, 2, 0, time.Local)
	got := MonthStart(in)
	want := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("MonthStart = %v, want %v", got, want)
	}
}
