package studyplan

import (
	"testing"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

func testPlan() models.StudyPlan {
	return models.StudyPlan{
		Subject: "Historia",
		Goal:    "Aprobar el examen final",
		Sessions: []models.StudySession{
			{Day: "Día 1", Topic: "Revolución Industrial", DurationMinutes: 90},
		},
		Flashcards:      []models.Flashcard{{Front: "¿Año?", Back: "1789"}},
		ReviewQuestions: []models.ReviewQuestion{{Question: "¿Causas?", Answer: "Varias"}},
		Tips:            []string{"Descansa bien"},
	}
}

func TestSetPlanPopulatesAndSwitchesToSchedule(t *testing.T) {
	m := New(120, 40)
	m.SetGenerating()
	m.tab = constants.PlanTabQuiz

	m.SetPlan(testPlan(), "Revolución Industrial")

	if !m.HasPlan() {
		t.Fatal("plan not installed")
	}
	if m.plan.Subject != "Historia" || len(m.plan.Flashcards) != 1 {
		t.Errorf("plan = %+v", m.plan)
	}
	if m.tab != constants.PlanTabSchedule {
		t.Errorf("tab = %v, want schedule", m.tab)
	}
	if m.Generating() {
		t.Error("generating flag still set after success")
	}
	if m.errText != "" {
		t.Errorf("error text = %q, want cleared", m.errText)
	}
}

func TestSetErrorKeepsExistingPlan(t *testing.T) {
	m := New(120, 40)
	m.SetPlan(testPlan(), "temas")

	m.SetGenerating()
	m.SetError(GenerateFailureText)

	if !m.HasPlan() {
		t.Error("failure wiped the plan already on screen")
	}
	if m.Generating() {
		t.Error("generating flag still set after failure")
	}
	if m.errText != GenerateFailureText {
		t.Errorf("error text = %q", m.errText)
	}
}

func TestPrependFlashcard(t *testing.T) {
	m := New(120, 40)
	m.SetPlan(testPlan(), "temas")

	m.PrependFlashcard(models.Flashcard{Front: "Nueva", Back: "Carta"})
	if len(m.plan.Flashcards) != 2 {
		t.Fatalf("deck has %d cards, want 2", len(m.plan.Flashcards))
	}
	if m.plan.Flashcards[0].Front != "Nueva" {
		t.Errorf("first card = %q, want the manual one", m.plan.Flashcards[0].Front)
	}
}
