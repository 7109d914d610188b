package studyplan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

// GenerateFailureText is shown when plan generation fails for any reason.
const GenerateFailureText = "Hubo un error al generar el plan. Inténtalo de nuevo."

// GenerateMsg asks the root model to open the study-plan form.
type GenerateMsg struct{}

// MoreCardsMsg asks the root model to fetch additional flashcards for the
// current plan.
type MoreCardsMsg struct {
	Subject  string
	Topics   string
	Existing int
}

// MoreQuestionsMsg asks the root model to fetch additional review questions.
type MoreQuestionsMsg struct {
	Subject string
	Topics  string
}

// AddCardMsg asks the root model to open the manual flashcard form.
type AddCardMsg struct{}

type KeyMap struct {
	Generate  key.Binding
	PrevTab   key.Binding
	NextTab   key.Binding
	MoreCards key.Binding
	MoreQuiz  key.Binding
	AddCard   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "generate plan"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev section"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next section"),
		),
		MoreCards: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "more flashcards"),
		),
		MoreQuiz: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "more questions"),
		),
		AddCard: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add flashcard"),
		),
	}
}

type Model struct {
	viewport   viewport.Model
	spinner    spinner.Model
	keys       KeyMap
	plan       *models.StudyPlan
	topics     string // remembered from the generating request
	tab        constants.PlanTab
	generating bool
	moreCards  bool
	moreQuiz   bool
	errText    string
	width      int
	height     int
}

func New(width, height int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		viewport: viewport.New(width, height),
		spinner:  sp,
		keys:     DefaultKeyMap(),
		width:    width,
		height:   height,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Generating reports whether a plan request is in flight.
func (m Model) Generating() bool { return m.generating }

// SetGenerating marks a plan request started and clears any stale error.
func (m *Model) SetGenerating() {
	m.generating = true
	m.errText = ""
	m.refresh()
}

// SetPlan installs a freshly generated plan and resets to the schedule tab.
func (m *Model) SetPlan(plan models.StudyPlan, topics string) {
	m.plan = &plan
	m.topics = topics
	m.tab = constants.PlanTabSchedule
	m.generating = false
	m.errText = ""
	m.refresh()
	m.viewport.GotoTop()
}

// SetError surfaces a generation failure. Any previously generated plan
// stays on screen.
func (m *Model) SetError(text string) {
	m.generating = false
	m.errText = text
	m.refresh()
}

// AppendFlashcards adds generated cards to the end of the deck.
func (m *Model) AppendFlashcards(cards []models.Flashcard) {
	m.moreCards = false
	if m.plan != nil && len(cards) > 0 {
		m.plan.Flashcards = append(m.plan.Flashcards, cards...)
	}
	m.refresh()
}

// PrependFlashcard puts a manually created card at the front of the deck.
func (m *Model) PrependFlashcard(card models.Flashcard) {
	if m.plan != nil {
		m.plan.Flashcards = append([]models.Flashcard{card}, m.plan.Flashcards...)
	}
	m.refresh()
}

// AppendQuestions adds generated review questions to the quiz.
func (m *Model) AppendQuestions(qs []models.ReviewQuestion) {
	m.moreQuiz = false
	if m.plan != nil && len(qs) > 0 {
		m.plan.ReviewQuestions = append(m.plan.ReviewQuestions, qs...)
	}
	m.refresh()
}

// HasPlan reports whether a plan is loaded.
func (m Model) HasPlan() bool { return m.plan != nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Generate):
			if !m.generating {
				return m, func() tea.Msg { return GenerateMsg{} }
			}
		case key.Matches(msg, m.keys.PrevTab):
			if m.plan != nil && m.tab > constants.PlanTabSchedule {
				m.tab--
				m.refresh()
				m.viewport.GotoTop()
			}
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			if m.plan != nil && m.tab < constants.PlanTabQuiz {
				m.tab++
				m.refresh()
				m.viewport.GotoTop()
			}
			return m, nil
		case key.Matches(msg, m.keys.MoreCards):
			if m.plan != nil && m.tab == constants.PlanTabFlashcards && !m.moreCards {
				m.moreCards = true
				m.refresh()
				subject, topics, n := m.plan.Subject, m.topics, len(m.plan.Flashcards)
				return m, func() tea.Msg {
					return MoreCardsMsg{Subject: subject, Topics: topics, Existing: n}
				}
			}
		case key.Matches(msg, m.keys.MoreQuiz):
			if m.plan != nil && m.tab == constants.PlanTabQuiz && !m.moreQuiz {
				m.moreQuiz = true
				m.refresh()
				subject, topics := m.plan.Subject, m.topics
				return m, func() tea.Msg {
					return MoreQuestionsMsg{Subject: subject, Topics: topics}
				}
			}
		case key.Matches(msg, m.keys.AddCard):
			if m.plan != nil && m.tab == constants.PlanTabFlashcards {
				return m, func() tea.Msg { return AddCardMsg{} }
			}
		}
	case spinner.TickMsg:
		if m.generating || m.moreCards || m.moreQuiz {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.refresh()
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// SpinnerTick starts the spinner for an in-flight request.
func (m Model) SpinnerTick() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderContent())
}

func (m Model) renderContent() string {
	if m.generating {
		return "\n  " + m.spinner.View() + " Generando tu Kit de Supervivencia..."
	}

	var b strings.Builder
	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n\n")
	}
	if m.plan == nil {
		b.WriteString(emptyStyle.Render("\n  Sin plan todavía.\n  Pulsa 'g' para generar un plan de estudio."))
		return b.String()
	}

	switch m.tab {
	case constants.PlanTabSchedule:
		b.WriteString(m.renderSchedule())
	case constants.PlanTabFlashcards:
		b.WriteString(m.renderFlashcards())
	case constants.PlanTabQuiz:
		b.WriteString(m.renderQuiz())
	}
	return b.String()
}

func (m Model) renderSchedule() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(m.plan.Subject))
	fmt.Fprintf(&b, "%s\n\n", goalStyle.Render(m.plan.Goal))
	for _, s := range m.plan.Sessions {
		fmt.Fprintf(&b, "%s  %s (%d min)\n", dayStyle.Render(s.Day), s.Topic, s.DurationMinutes)
		for _, a := range s.Activities {
			fmt.Fprintf(&b, "    • %s\n", a)
		}
		b.WriteString("\n")
	}
	if len(m.plan.Tips) > 0 {
		b.WriteString(titleStyle.Render("Consejos"))
		b.WriteString("\n")
		for _, tip := range m.plan.Tips {
			fmt.Fprintf(&b, "  ★ %s\n", tip)
		}
	}
	return b.String()
}

func (m Model) renderFlashcards() string {
	var b strings.Builder
	header := fmt.Sprintf("Flashcards (%d)", len(m.plan.Flashcards))
	if m.moreCards {
		header += "  " + m.spinner.View() + " generando más..."
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	for i, card := range m.plan.Flashcards {
		fmt.Fprintf(&b, "%s\n", cardFrontStyle.Render(fmt.Sprintf("%d. %s", i+1, card.Front)))
		fmt.Fprintf(&b, "   %s\n\n", cardBackStyle.Render(card.Back))
	}
	return b.String()
}

func (m Model) renderQuiz() string {
	var b strings.Builder
	header := fmt.Sprintf("Preguntas de repaso (%d)", len(m.plan.ReviewQuestions))
	if m.moreQuiz {
		header += "  " + m.spinner.View() + " generando más..."
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	for i, q := range m.plan.ReviewQuestions {
		fmt.Fprintf(&b, "%s\n", cardFrontStyle.Render(fmt.Sprintf("%d. %s", i+1, q.Question)))
		fmt.Fprintf(&b, "   %s\n\n", cardBackStyle.Render(q.Answer))
	}
	return b.String()
}

func (m Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewport.View(),
	)
}

func (m Model) viewTabs() string {
	if m.plan == nil {
		return ""
	}
	titles := []string{
		"Calendario",
		fmt.Sprintf("Flashcards (%d)", len(m.plan.Flashcards)),
		"Quiz",
	}
	var tabs []string
	for i, title := range titles {
		if m.tab == constants.PlanTab(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 1
	m.refresh()
}

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	goalStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	dayStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	cardFrontStyle   = lipgloss.NewStyle().Bold(true)
	cardBackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	emptyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Background(lipgloss.Color("236")).Padding(0, 1).Bold(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
)
