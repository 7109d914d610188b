package tui

import (
	"time"

	"github.com/charmbracelet/huh"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/validation"
)

type TaskFormModel struct {
	Title     string
	Duration  string
	Time      string
	Priority  constants.Priority
	Estimate  bool
	Recurring bool
	Weekdays  []time.Weekday
}

type PlanFormModel struct {
	Subject     string
	ExamDate    string
	Topics      string
	Hours       string
	Attachments string // newline-free list of file paths, comma separated
}

type CardFormModel struct {
	Front string
	Back  string
}

// newTaskForm builds the create/edit task form. The recurrence group only
// appears in create mode; editing an expanded instance never touches its
// siblings.
func newTaskForm(fm *TaskFormModel, editing bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Título").
			Placeholder("Ej. Repasar Matemáticas").
			Value(&fm.Title).
			Validate(validation.Title),
		huh.NewInput().
			Title("Duración (min)").
			Value(&fm.Duration).
			Validate(validation.Duration),
		huh.NewInput().
			Title("Hora (opcional)").
			Placeholder("HH:MM").
			Value(&fm.Time).
			Validate(validation.OptionalTime),
		huh.NewSelect[constants.Priority]().
			Title("Prioridad").
			Options(
				huh.NewOption("Alta", constants.PriorityHigh),
				huh.NewOption("Media", constants.PriorityMedium),
				huh.NewOption("Baja", constants.PriorityLow),
			).
			Value(&fm.Priority),
		huh.NewConfirm().
			Title("¿Estimar duración con IA?").
			Description("Reemplaza la duración con una estimación del modelo").
			Value(&fm.Estimate),
	}

	if !editing {
		fields = append(fields,
			huh.NewConfirm().
				Title("Repetir semanalmente").
				Value(&fm.Recurring),
			huh.NewMultiSelect[time.Weekday]().
				Title("Días de repetición").
				Options(
					huh.NewOption("Lunes", time.Monday),
					huh.NewOption("Martes", time.Tuesday),
					huh.NewOption("Miércoles", time.Wednesday),
					huh.NewOption("Jueves", time.Thursday),
					huh.NewOption("Viernes", time.Friday),
					huh.NewOption("Sábado", time.Saturday),
					huh.NewOption("Domingo", time.Sunday),
				).
				Value(&fm.Weekdays),
		)
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

func newPlanForm(fm *PlanFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Materia").
				Placeholder("Ej. Historia Contemporánea").
				Value(&fm.Subject).
				Validate(validation.Title),
			huh.NewInput().
				Title("Fecha del examen").
				Placeholder("YYYY-MM-DD").
				Value(&fm.ExamDate).
				Validate(validation.ExamDate),
			huh.NewText().
				Title("Temas clave").
				Value(&fm.Topics).
				Validate(validation.Topics),
			huh.NewInput().
				Title("Horas por semana").
				Value(&fm.Hours).
				Validate(validation.HoursPerWeek),
			huh.NewInput().
				Title("Apuntes (opcional)").
				Description("Rutas de archivos separadas por comas").
				Value(&fm.Attachments),
		),
	)
}

func newCardForm(fm *CardFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Anverso").
				Value(&fm.Front).
				Validate(validation.Title),
			huh.NewInput().
				Title("Reverso").
				Value(&fm.Back).
				Validate(validation.Title),
		),
	)
}
