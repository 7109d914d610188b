package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sanuxal/SOCRATES.AI/internal/utils"
)

// Validation catches bad form input before any service call is made; these
// errors surface as inline form text, never as logged failures.

// Title checks that a task or flashcard title is non-empty.
func Title(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("el título no puede estar vacío")
	}
	return nil
}

// Duration checks that a duration input is a positive number of minutes.
func Duration(s string) error {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("la duración debe ser un número")
	}
	if i <= 0 {
		return fmt.Errorf("la duración debe ser un número positivo de minutos")
	}
	return nil
}

// OptionalTime checks an HH:MM input, accepting the empty string.
func OptionalTime(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if !utils.ValidateTimeFormat(s) {
		return fmt.Errorf("formato de hora inválido, usa HH:MM")
	}
	return nil
}

// ExamDate checks that an exam date parses and lies in the future. A past or
// unparseable date blocks study-plan generation before any request is made.
func ExamDate(s string) error {
	days, err := utils.DaysUntil(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("formato de fecha inválido, usa YYYY-MM-DD")
	}
	if days < 0 {
		return fmt.Errorf("por favor selecciona una fecha futura válida")
	}
	return nil
}

// HoursPerWeek checks weekly study availability is within a sane range.
func HoursPerWeek(s string) error {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("las horas deben ser un número")
	}
	if i < 1 || i > 50 {
		return fmt.Errorf("las horas semanales deben estar entre 1 y 50")
	}
	return nil
}

// Topics checks that the key-topics field is non-empty.
func Topics(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("los temas clave no pueden estar vacíos")
	}
	return nil
}
