package validation

import (
	"testing"
	"time"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
)

func TestTitle(t *testing.T) {
	if err := Title("Estudiar tema 4"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
	if err := Title("   "); err == nil {
		t.Error("blank title accepted")
	}
}

func TestDuration(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"45", true},
		{" 90 ", true},
		{"0", false},
		{"-10", false},
		{"abc", false},
		{"", false},
	}
	for _, tc := range cases {
		err := Duration(tc.in)
		if tc.ok && err != nil {
			t.Errorf("Duration(%q) = %v, want nil", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("Duration(%q) accepted", tc.in)
		}
	}
}

func TestOptionalTime(t *testing.T) {
	if err := OptionalTime(""); err != nil {
		t.Errorf("empty time rejected: %v", err)
	}
	if err := OptionalTime("09:30"); err != nil {
		t.Errorf("valid time rejected: %v", err)
	}
	if err := OptionalTime("9:99"); err == nil {
		t.Error("invalid time accepted")
	}
	if err := OptionalTime("mañana"); err == nil {
		t.Error("non-time text accepted")
	}
}

func TestExamDate(t *testing.T) {
	future := time.Now().AddDate(0, 0, 30).Format(constants.DateFormat)
	if err := ExamDate(future); err != nil {
		t.Errorf("future date rejected: %v", err)
	}

	today := time.Now().Format(constants.DateFormat)
	if err := ExamDate(today); err != nil {
		t.Errorf("today rejected: %v", err)
	}

	past := time.Now().AddDate(0, 0, -1).Format(constants.DateFormat)
	if err := ExamDate(past); err == nil {
		t.Error("past date accepted")
	}

	if err := ExamDate("01/06/2030"); err == nil {
		t.Error("malformed date accepted")
	}
}

func TestHoursPerWeek(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"1", true},
		{"50", true},
		{"6", true},
		{"0", false},
		{"51", false},
		{"muchas", false},
	}
	for _, tc := range cases {
		err := HoursPerWeek(tc.in)
		if tc.ok && err != nil {
			t.Errorf("HoursPerWeek(%q) = %v, want nil", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("HoursPerWeek(%q) accepted", tc.in)
		}
	}
}

func TestTopics(t *testing.T) {
	if err := Topics("Revolución Industrial, Ilustración"); err != nil {
		t.Errorf("valid topics rejected: %v", err)
	}
	if err := Topics(" "); err == nil {
		t.Error("blank topics accepted")
	}
}
