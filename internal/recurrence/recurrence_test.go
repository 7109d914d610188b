package recurrence

import (
	"testing"
	"time"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
)

func TestExpandMondayWednesday(t *testing.T) {
	// 2024-01-01 is a Monday. 84 days cover exactly 12 weeks, so two
	// selected weekdays yield 24 instances.
	got, err := Expand("2024-01-01", []time.Weekday{time.Monday, time.Wednesday}, Template{
		Title:           "Repaso",
		Time:            "18:00",
		DurationMinutes: 45,
		Priority:        constants.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(got) != 24 {
		t.Fatalf("expanded %d instances, want 24", len(got))
	}

	if got[0].Date != "2024-01-01" {
		t.Errorf("first instance on %s, want the start date itself", got[0].Date)
	}
	last := got[len(got)-1]
	if last.Date != "2024-03-20" {
		t.Errorf("last instance on %s, want 2024-03-20", last.Date)
	}

	seen := make(map[string]bool)
	for _, task := range got {
		if seen[task.ID] {
			t.Fatalf("duplicate instance id %q", task.ID)
		}
		seen[task.ID] = true

		day, err := time.Parse(constants.DateFormat, task.Date)
		if err != nil {
			t.Fatalf("bad instance date %q: %v", task.Date, err)
		}
		if wd := day.Weekday(); wd != time.Monday && wd != time.Wednesday {
			t.Errorf("instance on %s falls on %v", task.Date, wd)
		}
		if task.Title != "Repaso" || task.Time != "18:00" || task.DurationMinutes != 45 {
			t.Errorf("template fields not stamped: %+v", task)
		}
		if task.Priority != constants.PriorityHigh {
			t.Errorf("priority = %q", task.Priority)
		}
		if task.Completed {
			t.Error("instances must start incomplete")
		}
	}
}

func TestExpandWindowIsBounded(t *testing.T) {
	got, err := Expand("2024-01-01", []time.Weekday{time.Monday}, Template{Title: "x"})
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	horizon := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, constants.RecurrenceHorizonDays-1)
	for _, task := range got {
		day, _ := time.Parse(constants.DateFormat, task.Date)
		if day.After(horizon) {
			t.Errorf("instance %s is beyond the recurrence window", task.Date)
		}
	}
}

func TestExpandEmptyWeekdaySet(t *testing.T) {
	got, err := Expand("2024-01-01", nil, Template{Title: "x"})
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if got != nil {
		t.Errorf("empty weekday set expanded %d instances, want none", len(got))
	}
}

func TestExpandBadStartDate(t *testing.T) {
	if _, err := Expand("10/05/2024", []time.Weekday{time.Monday}, Template{Title: "x"}); err == nil {
		t.Fatal("expected error for malformed start date")
	}
}

func TestExpandBatchesDoNotCollide(t *testing.T) {
	a, _ := Expand("2024-01-01", []time.Weekday{time.Monday}, Template{Title: "a"})
	b, _ := Expand("2024-01-01", []time.Weekday{time.Monday}, Template{Title: "b"})

	ids := make(map[string]bool)
	for _, task := range a {
		ids[task.ID] = true
	}
	for _, task := range b {
		if ids[task.ID] {
			t.Fatalf("id %q reused across batches", task.ID)
		}
	}
}
