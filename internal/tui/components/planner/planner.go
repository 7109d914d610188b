package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sanuxal/SOCRATES.AI/internal/calendar"
	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
	"github.com/Sanuxal/SOCRATES.AI/internal/utils"
)

// AddTaskMsg asks the root model to open the task form for a new task on
// the selected date.
type AddTaskMsg struct {
	Date string
}

// EditTaskMsg asks the root model to open the task form pre-filled with an
// existing task.
type EditTaskMsg struct {
	Task models.Task
}

// DeleteTaskMsg asks the root model to confirm and delete a task.
type DeleteTaskMsg struct {
	ID string
}

// ToggleTaskMsg asks the root model to flip a task's completion state.
type ToggleTaskMsg struct {
	ID string
}

// OptimizeMsg asks the root model to request a schedule optimization for the
// selected date's tasks.
type OptimizeMsg struct {
	Date  string
	Tasks []models.Task
}

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevTask  key.Binding
	NextTask  key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Toggle    key.Binding
	Optimize  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "week back"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "week forward"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "day back"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "day forward"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next month"),
		),
		PrevTask: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "prev task"),
		),
		NextTask: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "next task"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle done"),
		),
		Optimize: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "optimize day"),
		),
	}
}

type Model struct {
	cursor       calendar.Cursor
	keys         KeyMap
	spinner      spinner.Model
	tasks        []models.Task // store snapshot, creation order
	today        string
	selTask      int
	optimization *models.OptimizedSchedule
	optimizing   bool
	width        int
	height       int
}

func New(now time.Time, width, height int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		cursor:  calendar.NewCursor(now),
		keys:    DefaultKeyMap(),
		spinner: sp,
		today:   now.Format(constants.DateFormat),
		width:   width,
		height:  height,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SelectedDate returns the date whose tasks are shown in the side panel.
func (m Model) SelectedDate() string { return m.cursor.SelectedDate }

// Optimizing reports whether an optimization request is in flight.
func (m Model) Optimizing() bool { return m.optimizing }

// SetTasks replaces the task snapshot after any store mutation.
func (m *Model) SetTasks(tasks []models.Task) {
	m.tasks = tasks
	m.clampTaskSelection()
}

// SetOptimizing marks an optimization request started.
func (m *Model) SetOptimizing() {
	m.optimizing = true
}

// SetOptimization installs an optimization result for the given date. A
// result for a date no longer selected is discarded; the request that
// produced it is stale.
func (m *Model) SetOptimization(date string, result models.OptimizedSchedule) {
	m.optimizing = false
	if date != m.cursor.SelectedDate {
		return
	}
	m.optimization = &result
}

func (m *Model) dayTasks() []models.Task {
	var out []models.Task
	for _, t := range m.tasks {
		if t.Date == m.cursor.SelectedDate {
			out = append(out, t)
		}
	}
	return out
}

func (m *Model) clampTaskSelection() {
	n := len(m.dayTasks())
	if m.selTask >= n {
		m.selTask = n - 1
	}
	if m.selTask < 0 {
		m.selTask = 0
	}
}

// moveSelection shifts the selected date by days, following the view month
// along when the selection crosses a month boundary. Changing the selection
// invalidates any displayed optimization.
func (m *Model) moveSelection(days int) {
	next, err := utils.AddDays(m.cursor.SelectedDate, days)
	if err != nil {
		return
	}
	m.selectDate(next)
}

func (m *Model) selectDate(date string) {
	m.cursor.Select(date)
	m.optimization = nil
	m.selTask = 0
	if d, err := utils.ParseDate(date); err == nil {
		m.cursor.Year, m.cursor.Month = d.Year(), d.Month()
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.moveSelection(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveSelection(1)
		case key.Matches(msg, m.keys.Up):
			m.moveSelection(-7)
		case key.Matches(msg, m.keys.Down):
			m.moveSelection(7)
		case key.Matches(msg, m.keys.PrevMonth):
			m.cursor.PrevMonth()
		case key.Matches(msg, m.keys.NextMonth):
			m.cursor.NextMonth()
		case key.Matches(msg, m.keys.PrevTask):
			if m.selTask > 0 {
				m.selTask--
			}
		case key.Matches(msg, m.keys.NextTask):
			if m.selTask < len(m.dayTasks())-1 {
				m.selTask++
			}
		case key.Matches(msg, m.keys.Add):
			date := m.cursor.SelectedDate
			return m, func() tea.Msg { return AddTaskMsg{Date: date} }
		case key.Matches(msg, m.keys.Edit):
			if tasks := m.dayTasks(); len(tasks) > 0 {
				task := tasks[m.selTask]
				return m, func() tea.Msg { return EditTaskMsg{Task: task} }
			}
		case key.Matches(msg, m.keys.Delete):
			if tasks := m.dayTasks(); len(tasks) > 0 {
				id := tasks[m.selTask].ID
				return m, func() tea.Msg { return DeleteTaskMsg{ID: id} }
			}
		case key.Matches(msg, m.keys.Toggle):
			if tasks := m.dayTasks(); len(tasks) > 0 {
				id := tasks[m.selTask].ID
				return m, func() tea.Msg { return ToggleTaskMsg{ID: id} }
			}
		case key.Matches(msg, m.keys.Optimize):
			tasks := m.dayTasks()
			if len(tasks) == 0 || m.optimizing {
				return m, nil
			}
			date := m.cursor.SelectedDate
			return m, func() tea.Msg { return OptimizeMsg{Date: date, Tasks: tasks} }
		}
	case spinner.TickMsg:
		if m.optimizing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// SpinnerTick starts the spinner for an in-flight optimization.
func (m Model) SpinnerTick() tea.Cmd {
	return m.spinner.Tick
}

var spanishMonths = [...]string{
	"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var spanishWeekdays = [...]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

func (m Model) View() string {
	grid := m.viewCalendar()
	panel := m.viewDayPanel()
	return lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", panel)
}

func (m Model) viewCalendar() string {
	cellWidth := 14
	if m.width > 0 {
		if w := (m.width*2/3 - 8) / 7; w >= 8 && w < cellWidth {
			cellWidth = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", monthStyle.Render(fmt.Sprintf("%s %d", spanishMonths[int(m.cursor.Month)], m.cursor.Year)))

	for _, d := range spanishWeekdays {
		b.WriteString(weekdayStyle.Width(cellWidth).Render(d))
	}
	b.WriteString("\n")

	cells := calendar.Cells(m.cursor, m.tasks, m.today)
	for i := 0; i < len(cells); i += 7 {
		end := i + 7
		if end > len(cells) {
			end = len(cells)
		}
		var row []string
		for _, cell := range cells[i:end] {
			row = append(row, m.renderCell(cell, cellWidth))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCell(cell calendar.Cell, width int) string {
	if cell.Day == 0 {
		return blankCellStyle.Width(width).Render("")
	}

	dayLabel := fmt.Sprintf("%d", cell.Day)
	if cell.Today {
		dayLabel = todayStyle.Render(dayLabel)
	}

	lines := []string{dayLabel}
	for _, t := range cell.Tasks {
		label := t.Title
		if t.Time != "" {
			label = t.Time + " " + label
		}
		if r := []rune(label); len(r) > width-2 {
			label = string(r[:width-2])
		}
		if t.Completed {
			label = doneTaskStyle.Render(label)
		} else {
			label = cellTaskStyle.Render(label)
		}
		lines = append(lines, label)
	}
	if cell.Overflow > 0 {
		lines = append(lines, overflowStyle.Render(fmt.Sprintf("+%d más", cell.Overflow)))
	}

	style := cellStyle
	if cell.Selected {
		style = selectedCellStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) viewDayPanel() string {
	tasks := m.dayTasks()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", panelTitleStyle.Render(m.cursor.SelectedDate))
	fmt.Fprintf(&b, "%d Tareas planificadas\n\n", len(tasks))

	if m.optimizing {
		fmt.Fprintf(&b, "%s Optimizando...\n\n", m.spinner.View())
	} else if m.optimization != nil {
		b.WriteString(suggestionTitleStyle.Render("Sugerencia AI"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s\n", adviceStyle.Render("\""+m.optimization.Advice+"\""))
		for _, line := range m.optimization.Schedule {
			fmt.Fprintf(&b, "  %s\n", scheduleLineStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(tasks) == 0 {
		b.WriteString(emptyStyle.Render("No tienes tareas para este día.\n¡Aprovecha para descansar o adelantar trabajo!"))
		return panelStyle.Render(b.String())
	}

	for i, t := range tasks {
		marker := "○"
		title := t.Title
		if t.Completed {
			marker = "✓"
			title = doneTaskStyle.Render(title)
		}
		line := fmt.Sprintf("%s %s", marker, title)
		if i == m.selTask {
			line = selectedTaskStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")

		meta := fmt.Sprintf("    %s · %d min", priorityLabel(t.Priority), t.DurationMinutes)
		if t.Time != "" {
			meta += " · " + t.Time
		}
		fmt.Fprintf(&b, "%s\n", metaStyle.Render(meta))
	}
	return panelStyle.Render(b.String())
}

func priorityLabel(p constants.Priority) string {
	switch p {
	case constants.PriorityHigh:
		return highPriorityStyle.Render("Alta")
	case constants.PriorityLow:
		return lowPriorityStyle.Render("Baja")
	default:
		return medPriorityStyle.Render("Media")
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

var (
	monthStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	weekdayStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Center)
	cellStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("236")).Padding(0, 1)
	selectedCellStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 1)
	blankCellStyle       = lipgloss.NewStyle().Padding(0, 1)
	todayStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("39")).Bold(true)
	cellTaskStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	doneTaskStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	overflowStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	panelStyle           = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("236")).Padding(0, 1)
	panelTitleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	suggestionTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	adviceStyle          = lipgloss.NewStyle().Italic(true)
	scheduleLineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("135"))
	selectedTaskStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	metaStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	highPriorityStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	medPriorityStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	lowPriorityStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
)
