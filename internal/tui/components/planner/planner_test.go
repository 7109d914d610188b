package planner

import (
	"testing"
	"time"

	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

func newTestModel() Model {
	return New(time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC), 120, 40)
}

func TestSelectDateClearsOptimization(t *testing.T) {
	m := newTestModel()
	m.SetOptimization("2024-05-10", models.OptimizedSchedule{
		Schedule: []string{"09:00 - Leer apuntes"},
		Advice:   "Empieza temprano.",
	})
	if m.optimization == nil {
		t.Fatal("optimization for the selected date was not installed")
	}

	m.selectDate("2024-05-11")
	if got := m.SelectedDate(); got != "2024-05-11" {
		t.Errorf("selected date = %q, want 2024-05-11", got)
	}
	if m.optimization != nil {
		t.Error("changing the selection kept a stale optimization on screen")
	}
}

func TestMoveSelectionClearsOptimization(t *testing.T) {
	m := newTestModel()
	m.SetOptimization("2024-05-10", models.OptimizedSchedule{Advice: "ok"})

	m.moveSelection(7)
	if got := m.SelectedDate(); got != "2024-05-17" {
		t.Errorf("selected date = %q, want 2024-05-17", got)
	}
	if m.optimization != nil {
		t.Error("week move kept a stale optimization")
	}
}

func TestMoveSelectionFollowsMonth(t *testing.T) {
	m := newTestModel()
	m.selectDate("2024-05-31")

	m.moveSelection(1)
	if got := m.SelectedDate(); got != "2024-06-01" {
		t.Errorf("selected date = %q, want 2024-06-01", got)
	}
	if m.cursor.Month != time.June || m.cursor.Year != 2024 {
		t.Errorf("view month = %v %d, want June 2024", m.cursor.Month, m.cursor.Year)
	}
}

func TestSetOptimizationDiscardsStaleDate(t *testing.T) {
	m := newTestModel()
	m.SetOptimizing()

	// The result arrives after the user already moved to another day.
	m.selectDate("2024-05-12")
	m.SetOptimization("2024-05-10", models.OptimizedSchedule{Advice: "tarde"})

	if m.Optimizing() {
		t.Error("optimizing flag not cleared by the late result")
	}
	if m.optimization != nil {
		t.Error("result for a no longer selected date was installed")
	}

	m.SetOptimization("2024-05-12", models.OptimizedSchedule{Advice: "a tiempo"})
	if m.optimization == nil || m.optimization.Advice != "a tiempo" {
		t.Error("result for the selected date was not installed")
	}
}
