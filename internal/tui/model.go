package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/gemini"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
	"github.com/Sanuxal/SOCRATES.AI/internal/store"
	"github.com/Sanuxal/SOCRATES.AI/internal/tui/components/chat"
	"github.com/Sanuxal/SOCRATES.AI/internal/tui/components/planner"
	"github.com/Sanuxal/SOCRATES.AI/internal/tui/components/studyplan"
)

// pendingSave holds a completed task form waiting on a duration estimate.
type pendingSave struct {
	editingID string // empty when creating
	date      string
	fields    models.TaskFields
	weekdays  []time.Weekday
}

type Model struct {
	client *gemini.Client
	tasks  *store.Store

	state constants.SessionState
	keys  KeyMap
	help  help.Model

	chatModel    chat.Model
	planModel    studyplan.Model
	plannerModel planner.Model

	form     *huh.Form
	taskForm *TaskFormModel
	planForm *PlanFormModel
	cardForm *CardFormModel

	editingTaskID  string // non-empty while the task form edits an existing task
	formDate       string // creation date for new tasks
	taskToDeleteID string

	chatEvents chan chatEvent
	estimating bool
	pending    *pendingSave

	quitting bool
	width    int
	height   int
}

func NewModel(client *gemini.Client) Model {
	now := time.Now()
	return Model{
		client:       client,
		tasks:        store.New(),
		state:        constants.StateChat,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		chatModel:    chat.New(0, 0),
		planModel:    studyplan.New(0, 0),
		plannerModel: planner.New(now, 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit}
	switch m.state {
	case constants.StateChat:
		ck := chat.DefaultKeyMap()
		keys = append(keys, ck.Send, ck.Mode, ck.Attach)
	case constants.StateStudyPlan:
		pk := studyplan.DefaultKeyMap()
		keys = append(keys, pk.Generate, pk.MoreCards, pk.MoreQuiz, pk.AddCard)
	case constants.StatePlanner:
		pk := planner.DefaultKeyMap()
		keys = append(keys, pk.Add, pk.Edit, pk.Delete, pk.Toggle, pk.Optimize)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

func (m Model) Init() tea.Cmd {
	return m.chatModel.Init()
}
