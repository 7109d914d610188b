package store

import (
	"testing"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

func TestCreateAssignsID(t *testing.T) {
	s := New()
	a := s.Create("2024-05-10", models.TaskFields{Title: "Leer tema 1"})
	b := s.Create("2024-05-10", models.TaskFields{Title: "Leer tema 2"})
	if a.ID == "" || b.ID == "" {
		t.Fatal("created tasks must carry ids")
	}
	if a.ID == b.ID {
		t.Errorf("ids must be unique, both %q", a.ID)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestFilterByDateOrderAndPurity(t *testing.T) {
	s := New()
	first := s.Create("2024-05-10", models.TaskFields{Title: "primero"})
	s.Create("2024-05-11", models.TaskFields{Title: "otro día"})
	second := s.Create("2024-05-10", models.TaskFields{Title: "segundo"})

	got := s.FilterByDate("2024-05-10")
	if len(got) != 2 {
		t.Fatalf("filter returned %d tasks, want 2", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Error("filter must preserve creation order")
	}
	if s.Len() != 3 {
		t.Errorf("filter mutated the store, Len = %d", s.Len())
	}

	if got := s.FilterByDate("2030-01-01"); len(got) != 0 {
		t.Errorf("filter on empty date returned %d tasks", len(got))
	}
}

func TestUpdateKeepsIdentity(t *testing.T) {
	s := New()
	created := s.Create("2024-05-10", models.TaskFields{Title: "antes", DurationMinutes: 60})

	s.Update(created.ID, models.TaskFields{
		Title:           "después",
		Time:            "09:30",
		DurationMinutes: 45,
		Priority:        constants.PriorityHigh,
	})

	got, ok := s.Get(created.ID)
	if !ok {
		t.Fatal("task disappeared after update")
	}
	if got.Title != "después" || got.Time != "09:30" || got.DurationMinutes != 45 {
		t.Errorf("fields not updated: %+v", got)
	}
	if got.ID != created.ID || got.Date != created.Date {
		t.Error("update must not change id or date")
	}
}

func TestUpdateSnapshotIsolation(t *testing.T) {
	s := New()
	created := s.Create("2024-05-10", models.TaskFields{Title: "antes"})

	snapshot := s.FilterByDate("2024-05-10")
	s.Update(created.ID, models.TaskFields{Title: "después"})

	if snapshot[0].Title != "antes" {
		t.Error("a previously returned slice was mutated by Update")
	}
}

func TestToggleCompletionTwice(t *testing.T) {
	s := New()
	created := s.Create("2024-05-10", models.TaskFields{Title: "tarea"})

	s.ToggleCompletion(created.ID)
	if got, _ := s.Get(created.ID); !got.Completed {
		t.Error("first toggle should mark completed")
	}
	s.ToggleCompletion(created.ID)
	if got, _ := s.Get(created.ID); got.Completed {
		t.Error("second toggle should restore the original state")
	}
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	s := New()
	s.Create("2024-05-10", models.TaskFields{Title: "tarea"})

	s.Update("missing", models.TaskFields{Title: "x"})
	s.ToggleCompletion("missing")
	s.Delete("missing")

	if s.Len() != 1 {
		t.Errorf("Len = %d after no-op mutations, want 1", s.Len())
	}
	got := s.All()[0]
	if got.Title != "tarea" || got.Completed {
		t.Errorf("task changed by no-op mutations: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	s := New()
	a := s.Create("2024-05-10", models.TaskFields{Title: "a"})
	b := s.Create("2024-05-10", models.TaskFields{Title: "b"})

	s.Delete(a.ID)
	if s.Len() != 1 {
		t.Fatalf("Len = %d after delete, want 1", s.Len())
	}
	if _, ok := s.Get(a.ID); ok {
		t.Error("deleted task still present")
	}
	if _, ok := s.Get(b.ID); !ok {
		t.Error("wrong task deleted")
	}
}

func TestDefaultFields(t *testing.T) {
	got := DefaultFields()
	if got.DurationMinutes != constants.DefaultDurationMin {
		t.Errorf("duration = %d, want %d", got.DurationMinutes, constants.DefaultDurationMin)
	}
	if got.Priority != constants.PriorityMedium {
		t.Errorf("priority = %q, want medium", got.Priority)
	}
}
