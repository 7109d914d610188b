package recurrence

import (
	"fmt"
	"time"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

// Template carries the fields stamped onto every expanded instance. It has
// no persisted representation; expanded tasks are fully independent records
// with no link back to a series.
type Template struct {
	Title           string
	Time            string
	DurationMinutes int
	Priority        constants.Priority
}

// Expand generates one task per day whose weekday is in the selected set,
// over a fixed window of constants.RecurrenceHorizonDays days inclusive of
// the start date. Instance ids are derived from a shared batch identifier
// (a high-resolution timestamp) plus the day offset, so they are unique
// within the batch and do not collide across batches. An empty weekday set
// yields nil; the caller falls back to single-task creation.
func Expand(start string, weekdays []time.Weekday, tmpl Template) ([]models.Task, error) {
	if len(weekdays) == 0 {
		return nil, nil
	}

	startDate, err := time.Parse(constants.DateFormat, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}

	selected := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		selected[wd] = true
	}

	batch := time.Now().UnixNano()
	var out []models.Task
	for offset := 0; offset < constants.RecurrenceHorizonDays; offset++ {
		day := startDate.AddDate(0, 0, offset)
		if !selected[day.Weekday()] {
			continue
		}
		out = append(out, models.Task{
			ID:              fmt.Sprintf("%d-%d", batch, offset),
			Title:           tmpl.Title,
			Date:            day.Format(constants.DateFormat),
			Time:            tmpl.Time,
			DurationMinutes: tmpl.DurationMinutes,
			Priority:        tmpl.Priority,
		})
	}
	return out, nil
}
