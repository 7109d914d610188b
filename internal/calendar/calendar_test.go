package calendar

import (
	"testing"
	"time"

	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2100, time.February, 28},
		{2000, time.February, 29},
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	// 2024-01-01 was a Monday, 2024-09-01 a Sunday.
	if got := FirstWeekday(2024, time.January); got != time.Monday {
		t.Errorf("FirstWeekday(2024, January) = %v, want Monday", got)
	}
	if got := FirstWeekday(2024, time.September); got != time.Sunday {
		t.Errorf("FirstWeekday(2024, September) = %v, want Sunday", got)
	}
}

func TestMonthNavigation(t *testing.T) {
	c := Cursor{Year: 2024, Month: time.January, SelectedDate: "2024-01-15"}

	c.PrevMonth()
	if c.Year != 2023 || c.Month != time.December {
		t.Errorf("PrevMonth from January 2024 = %d-%v", c.Year, c.Month)
	}
	c.NextMonth()
	c.NextMonth()
	if c.Year != 2024 || c.Month != time.February {
		t.Errorf("two NextMonth from December 2023 = %d-%v", c.Year, c.Month)
	}
	if c.SelectedDate != "2024-01-15" {
		t.Error("month navigation must not move the selection")
	}
}

func TestCellsLayout(t *testing.T) {
	// September 2024 starts on a Sunday: no leading blanks, 30 day cells.
	c := Cursor{Year: 2024, Month: time.September, SelectedDate: "2024-09-05"}
	cells := Cells(c, nil, "2024-09-10")
	if len(cells) != 30 {
		t.Fatalf("September 2024 grid has %d cells, want 30", len(cells))
	}
	if cells[0].Day != 1 {
		t.Errorf("first cell day = %d, want 1", cells[0].Day)
	}

	// January 2024 starts on a Monday: one leading blank.
	c = Cursor{Year: 2024, Month: time.January, SelectedDate: "2024-01-05"}
	cells = Cells(c, nil, "2024-01-10")
	if len(cells) != 32 {
		t.Fatalf("January 2024 grid has %d cells, want 32", len(cells))
	}
	if cells[0].Day != 0 {
		t.Error("first cell should be a blank pad")
	}
	if cells[1].Day != 1 || cells[1].Date != "2024-01-01" {
		t.Errorf("cell after pad = %+v", cells[1])
	}

	var selected, today int
	for _, cell := range cells {
		if cell.Selected {
			selected++
			if cell.Date != "2024-01-05" {
				t.Errorf("selected cell is %s", cell.Date)
			}
		}
		if cell.Today {
			today++
			if cell.Date != "2024-01-10" {
				t.Errorf("today cell is %s", cell.Date)
			}
		}
	}
	if selected != 1 || today != 1 {
		t.Errorf("selected/today flags set on %d/%d cells, want 1/1", selected, today)
	}
}

func TestCellsTaskCap(t *testing.T) {
	c := Cursor{Year: 2024, Month: time.May, SelectedDate: "2024-05-10"}
	tasks := []models.Task{
		{ID: "1", Title: "a", Date: "2024-05-10"},
		{ID: "2", Title: "b", Date: "2024-05-10"},
		{ID: "3", Title: "c", Date: "2024-05-10"},
		{ID: "4", Title: "d", Date: "2024-05-10"},
		{ID: "5", Title: "e", Date: "2024-05-10"},
		{ID: "6", Title: "otro día", Date: "2024-05-11"},
	}
	cells := Cells(c, tasks, "2024-05-10")

	var day10, day11 Cell
	for _, cell := range cells {
		switch cell.Date {
		case "2024-05-10":
			day10 = cell
		case "2024-05-11":
			day11 = cell
		}
	}
	if len(day10.Tasks) != 3 {
		t.Errorf("day cell shows %d tasks, want capped 3", len(day10.Tasks))
	}
	if day10.Overflow != 2 {
		t.Errorf("overflow = %d, want 2", day10.Overflow)
	}
	if day10.Tasks[0].Title != "a" {
		t.Error("capped summaries must keep creation order")
	}
	if len(day11.Tasks) != 1 || day11.Overflow != 0 {
		t.Errorf("neighbor cell = %+v", day11)
	}
}

func TestDateOfPadding(t *testing.T) {
	c := Cursor{Year: 987, Month: time.March}
	if got := c.DateOf(7); got != "0987-03-07" {
		t.Errorf("DateOf = %q, want zero-padded ISO date", got)
	}
}
