package tui

import (
	"errors"
	"testing"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

func TestEstimateResultApplied(t *testing.T) {
	m := NewModel(nil)
	m.estimating = true
	m.pending = &pendingSave{
		date: "2024-05-10",
		fields: models.TaskFields{
			Title:           "Leer apuntes",
			DurationMinutes: 120,
			Priority:        constants.PriorityMedium,
		},
	}

	next, _ := m.Update(estimateResultMsg{minutes: 45})
	m = next.(Model)

	tasks := m.tasks.All()
	if len(tasks) != 1 {
		t.Fatalf("store has %d tasks, want 1", len(tasks))
	}
	if tasks[0].DurationMinutes != 45 {
		t.Errorf("duration = %d, want estimated 45", tasks[0].DurationMinutes)
	}
	if m.estimating || m.pending != nil {
		t.Error("estimate state not cleared after commit")
	}
}

func TestEstimateResultFailureKeepsFormDuration(t *testing.T) {
	m := NewModel(nil)
	m.estimating = true
	m.pending = &pendingSave{
		date: "2024-05-10",
		fields: models.TaskFields{
			Title:           "Leer apuntes",
			DurationMinutes: 120,
			Priority:        constants.PriorityMedium,
		},
	}

	next, _ := m.Update(estimateResultMsg{
		minutes: constants.FallbackEstimateMin,
		err:     errors.New("service unavailable"),
	})
	m = next.(Model)

	tasks := m.tasks.All()
	if len(tasks) != 1 {
		t.Fatalf("store has %d tasks, want 1", len(tasks))
	}
	if tasks[0].DurationMinutes != 120 {
		t.Errorf("duration = %d, want the form's 120", tasks[0].DurationMinutes)
	}
}
