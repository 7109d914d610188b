package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

// FailureText replaces the streaming placeholder when a chat request fails.
const FailureText = "Lo siento, hubo un error al procesar tu solicitud. Por favor, intenta de nuevo."

// SubmitMsg asks the root model to start a tutor request with the current
// input and mode. Staged attachments are taken when the request begins.
type SubmitMsg struct {
	Text     string
	Socratic bool
}

// AttachMsg asks the root model to load a file and stage it on the next
// message.
type AttachMsg struct {
	Path string
}

type KeyMap struct {
	Send   key.Binding
	Mode   key.Binding
	Attach key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Mode: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "toggle mode"),
		),
		Attach: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "attach file"),
		),
	}
}

type Model struct {
	viewport  viewport.Model
	input     textarea.Model
	spinner   spinner.Model
	keys      KeyMap
	messages  []models.Message
	staged    []models.Attachment
	socratic  bool
	pending   bool
	attaching bool // input is interpreted as a file path
	width     int
	height    int
}

func New(width, height int) Model {
	ta := textarea.New()
	ta.Placeholder = "Pregunta lo que quieras..."
	ta.SetHeight(2)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		viewport: viewport.New(width, height),
		input:    ta,
		spinner:  sp,
		keys:     DefaultKeyMap(),
		width:    width,
		height:   height,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Socratic reports whether the tutor is in guided-questions mode.
func (m Model) Socratic() bool { return m.socratic }

// Pending reports whether a request is in flight.
func (m Model) Pending() bool { return m.pending }

// History returns the settled transcript, excluding any streaming
// placeholder. This is what gets sent as conversation context.
func (m Model) History() []models.Message {
	out := make([]models.Message, 0, len(m.messages))
	for _, msg := range m.messages {
		if msg.Streaming {
			continue
		}
		out = append(out, msg)
	}
	return out
}

// BeginRequest appends the user turn and a streaming placeholder, takes the
// staged attachments, and marks the conversation busy. It returns the
// attachments that were staged.
func (m *Model) BeginRequest(text string) []models.Attachment {
	atts := m.staged
	m.staged = nil
	m.messages = append(m.messages,
		models.Message{
			ID:          uuid.New().String(),
			Role:        constants.RoleUser,
			Text:        text,
			Attachments: atts,
		},
		models.Message{
			ID:        uuid.New().String(),
			Role:      constants.RoleModel,
			Streaming: true,
		},
	)
	m.pending = true
	m.refresh()
	m.viewport.GotoBottom()
	return atts
}

// SetStreamingText updates the placeholder with the accumulated reply.
func (m *Model) SetStreamingText(text string) {
	if i := m.streamingIndex(); i >= 0 {
		m.messages[i].Text = text
		m.refresh()
		m.viewport.GotoBottom()
	}
}

// FinishRequest settles the placeholder with the final reply, or with the
// fixed failure text when the request errored.
func (m *Model) FinishRequest(text string, failed bool) {
	if i := m.streamingIndex(); i >= 0 {
		if failed {
			m.messages[i].Text = FailureText
		} else {
			m.messages[i].Text = text
		}
		m.messages[i].Streaming = false
	}
	m.pending = false
	m.refresh()
	m.viewport.GotoBottom()
}

// Stage adds a loaded attachment to the next message.
func (m *Model) Stage(att models.Attachment) {
	m.staged = append(m.staged, att)
}

func (m *Model) streamingIndex() int {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].Streaming {
			return i
		}
	}
	return -1
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case m.attaching && msg.Type == tea.KeyEsc:
			m.attaching = false
			m.input.Reset()
			m.input.Placeholder = m.placeholder()
			return m, nil
		case key.Matches(msg, m.keys.Send):
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			if m.attaching {
				m.attaching = false
				m.input.Reset()
				m.input.Placeholder = m.placeholder()
				return m, func() tea.Msg { return AttachMsg{Path: text} }
			}
			if m.pending {
				return m, nil
			}
			m.input.Reset()
			socratic := m.socratic
			return m, func() tea.Msg {
				return SubmitMsg{Text: text, Socratic: socratic}
			}
		case key.Matches(msg, m.keys.Mode):
			m.socratic = !m.socratic
			m.input.Placeholder = m.placeholder()
			return m, nil
		case key.Matches(msg, m.keys.Attach):
			m.attaching = true
			m.input.Reset()
			m.input.Placeholder = "Ruta del archivo a adjuntar..."
			return m, nil
		}
	case spinner.TickMsg:
		if m.pending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.refresh()
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// SpinnerTick starts the spinner while a request is pending.
func (m Model) SpinnerTick() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) placeholder() string {
	if m.socratic {
		return "Hazme una pregunta y te guiaré..."
	}
	return "Pregunta lo que quieras..."
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderMessages())
}

func (m Model) renderMessages() string {
	if len(m.messages) == 0 {
		return emptyStyle.Render("\n  Hazle una pregunta a tu tutor.\n  ctrl+s cambia entre modo socrático y directo.")
	}

	wrap := m.width - 4
	if wrap < 20 {
		wrap = 20
	}
	var b strings.Builder
	for _, msg := range m.messages {
		label := "Tú"
		style := userStyle
		if msg.Role == constants.RoleModel {
			label = "SócratesAI"
			style = modelStyle
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
		text := msg.Text
		if msg.Streaming && text == "" {
			text = m.spinner.View() + " pensando..."
		}
		b.WriteString(lipgloss.NewStyle().Width(wrap).Render(text))
		for _, att := range msg.Attachments {
			b.WriteString("\n")
			b.WriteString(attachStyle.Render(fmt.Sprintf("📎 %s", att.Name)))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m Model) View() string {
	mode := "Modo Asistente"
	modeStyle := directModeStyle
	if m.socratic {
		mode = "Modo Socrático"
		modeStyle = socraticModeStyle
	}

	header := modeStyle.Render("● " + mode)
	if len(m.staged) > 0 {
		header += attachStyle.Render(fmt.Sprintf("  %d adjunto(s)", len(m.staged)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.viewport.View(),
		m.input.View(),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(width)
	inputHeight := m.input.Height() + 2
	m.viewport.Width = width
	m.viewport.Height = height - inputHeight
	m.refresh()
}

var (
	userStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	modelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	attachStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	socraticModeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("135"))
	directModeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)
