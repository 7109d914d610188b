package utils

import (
	"testing"
	"time"
)

func TestParseAndFormatDate(t *testing.T) {
	got, err := ParseDate("2024-05-10")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if FormatDate(got) != "2024-05-10" {
		t.Errorf("round trip = %q", FormatDate(got))
	}

	if _, err := ParseDate("10-05-2024"); err == nil {
		t.Error("day-first date accepted")
	}
}

func TestValidateTimeFormat(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"09:30", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"9:30pm", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateTimeFormat(tc.in); got != tc.ok {
			t.Errorf("ValidateTimeFormat(%q) = %v, want %v", tc.in, got, tc.ok)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	in30 := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	got, err := DaysUntil(in30)
	if err != nil {
		t.Fatalf("DaysUntil returned error: %v", err)
	}
	if got != 30 {
		t.Errorf("DaysUntil(+30d) = %d", got)
	}

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	got, err = DaysUntil(yesterday)
	if err != nil {
		t.Fatalf("DaysUntil returned error: %v", err)
	}
	if got >= 0 {
		t.Errorf("DaysUntil(yesterday) = %d, want negative", got)
	}

	if _, err := DaysUntil("pronto"); err == nil {
		t.Error("non-date accepted")
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-02-28", 1)
	if err != nil {
		t.Fatalf("AddDays returned error: %v", err)
	}
	if got != "2024-02-29" {
		t.Errorf("AddDays over leap day = %q", got)
	}

	got, _ = AddDays("2024-01-01", 83)
	if got != "2024-03-24" {
		t.Errorf("AddDays(+83) = %q, want 2024-03-24", got)
	}
}
