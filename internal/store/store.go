package store

import (
	"github.com/google/uuid"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

// Store owns every task record for the session. Records are kept in creation
// order, which is the display order within a day. Every mutation replaces
// the backing slice rather than editing it in place, so a slice handed out
// by a read is never changed underneath the caller. There is no locking:
// the store is only touched from the TUI event loop.
type Store struct {
	tasks []models.Task
}

// New returns an empty task store.
func New() *Store {
	return &Store{}
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// All returns every task in creation order.
func (s *Store) All() []models.Task {
	return s.tasks
}

// FilterByDate returns all tasks whose date equals the argument, in creation
// order. Pure read, no side effect.
func (s *Store) FilterByDate(date string) []models.Task {
	var out []models.Task
	for _, t := range s.tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (models.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Create assigns a fresh unique id to the given fields and appends the
// resulting task for the given date. The caller is responsible for rejecting
// empty titles before reaching the store.
func (s *Store) Create(date string, fields models.TaskFields) models.Task {
	task := models.Task{
		ID:              uuid.New().String(),
		Title:           fields.Title,
		Date:            date,
		Time:            fields.Time,
		DurationMinutes: fields.DurationMinutes,
		Priority:        fields.Priority,
	}
	s.Add(task)
	return task
}

// Add appends a fully-formed task, preserving its id. Used by the recurrence
// expander, whose instances carry batch-derived ids.
func (s *Store) Add(task models.Task) {
	next := make([]models.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	s.tasks = append(next, task)
}

// Update replaces the mutable fields of the matching record. ID and Date are
// not mutable via this path. Unknown ids are a silent no-op.
func (s *Store) Update(id string, fields models.TaskFields) {
	s.replace(id, func(t models.Task) models.Task {
		t.Title = fields.Title
		t.Time = fields.Time
		t.DurationMinutes = fields.DurationMinutes
		t.Priority = fields.Priority
		return t
	})
}

// ToggleCompletion flips the completed flag on the matching record.
func (s *Store) ToggleCompletion(id string) {
	s.replace(id, func(t models.Task) models.Task {
		t.Completed = !t.Completed
		return t
	})
}

// Delete removes the matching record. Unknown ids are a no-op.
func (s *Store) Delete(id string) {
	next := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	s.tasks = next
}

func (s *Store) replace(id string, fn func(models.Task) models.Task) {
	next := make([]models.Task, len(s.tasks))
	copy(next, s.tasks)
	for i, t := range next {
		if t.ID == id {
			next[i] = fn(t)
			break
		}
	}
	s.tasks = next
}

// DefaultFields returns the editing defaults for a new task.
func DefaultFields() models.TaskFields {
	return models.TaskFields{
		DurationMinutes: constants.DefaultDurationMin,
		Priority:        constants.PriorityMedium,
	}
}
