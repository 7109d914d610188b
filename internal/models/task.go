package models

import "github.com/Sanuxal/SOCRATES.AI/internal/constants"

// Task is a user-defined unit of work anchored to a calendar date. ID and
// Date are fixed at creation; all other fields are editable.
type Task struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Date            string             `json:"date"`           // YYYY-MM-DD
	Time            string             `json:"time,omitempty"` // HH:MM, empty means unscheduled within the day
	DurationMinutes int                `json:"duration_minutes"`
	Priority        constants.Priority `json:"priority"`
	Completed       bool               `json:"completed"`
}

// TaskFields carries the editable portion of a Task for create and update
// operations.
type TaskFields struct {
	Title           string
	Time            string
	DurationMinutes int
	Priority        constants.Priority
}
