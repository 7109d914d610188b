package calendar

import (
	"fmt"
	"time"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

// Cursor tracks the month in view and the selected day. The month changes
// only via explicit navigation; the selection changes only via Select.
type Cursor struct {
	Year         int
	Month        time.Month
	SelectedDate string // YYYY-MM-DD
}

// NewCursor returns a cursor viewing the current month with today selected.
func NewCursor(now time.Time) Cursor {
	return Cursor{
		Year:         now.Year(),
		Month:        now.Month(),
		SelectedDate: now.Format(constants.DateFormat),
	}
}

// PrevMonth moves the view to the first day of the previous month. The
// selected date is left untouched.
func (c *Cursor) PrevMonth() {
	first := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	c.Year, c.Month = first.Year(), first.Month()
}

// NextMonth moves the view to the first day of the next month.
func (c *Cursor) NextMonth() {
	first := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	c.Year, c.Month = first.Year(), first.Month()
}

// Select sets the selected date to the given ISO date string.
func (c *Cursor) Select(date string) {
	c.SelectedDate = date
}

// DateOf returns the ISO date string for a day number in the viewed month.
func (c Cursor) DateOf(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, int(c.Month), day)
}

// DaysInMonth returns the day count of the given month under standard
// Gregorian rules, including leap-year February.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday (Sunday = 0) of the first day of the month.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// TaskSummary is the abbreviated task line shown inside a day cell.
type TaskSummary struct {
	Title     string
	Time      string
	Completed bool
}

// Cell is one slot of the month grid. Blank cells pad the leading weekday
// offset and carry a zero Day.
type Cell struct {
	Day      int
	Date     string
	Selected bool
	Today    bool
	Tasks    []TaskSummary
	Overflow int // tasks beyond the per-cell cap
}

// Cells produces the finite render sequence for the cursor's month: a run of
// blank cells equal to the first-weekday offset, then one cell per day. Task
// summaries are matched by date and capped, with the remainder summarized as
// a count.
func Cells(c Cursor, tasks []models.Task, today string) []Cell {
	byDate := make(map[string][]TaskSummary)
	for _, t := range tasks {
		byDate[t.Date] = append(byDate[t.Date], TaskSummary{
			Title:     t.Title,
			Time:      t.Time,
			Completed: t.Completed,
		})
	}

	offset := int(FirstWeekday(c.Year, c.Month))
	days := DaysInMonth(c.Year, c.Month)
	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		date := c.DateOf(day)
		summaries := byDate[date]
		overflow := 0
		if len(summaries) > constants.MaxTasksPerCell {
			overflow = len(summaries) - constants.MaxTasksPerCell
			summaries = summaries[:constants.MaxTasksPerCell]
		}
		cells = append(cells, Cell{
			Day:      day,
			Date:     date,
			Selected: date == c.SelectedDate,
			Today:    date == today,
			Tasks:    summaries,
			Overflow: overflow,
		})
	}
	return cells
}
