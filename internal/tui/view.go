package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateChat:
		content = docStyle.Render(m.chatModel.View())
	case constants.StateStudyPlan:
		content = docStyle.Render(m.planModel.View())
	case constants.StatePlanner:
		content = docStyle.Render(m.plannerModel.View())
	case constants.StateTaskForm, constants.StatePlanForm, constants.StateCardForm:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Tutor", "Plan de Estudio", "Planificador"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("¿Eliminar esta tarea?"),
			"",
			"[y] Sí",
			"[n] No",
		),
	)
}
