package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/gemini"
	"github.com/Sanuxal/SOCRATES.AI/internal/logger"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
	"github.com/Sanuxal/SOCRATES.AI/internal/recurrence"
	"github.com/Sanuxal/SOCRATES.AI/internal/tui/components/chat"
	"github.com/Sanuxal/SOCRATES.AI/internal/tui/components/planner"
	"github.com/Sanuxal/SOCRATES.AI/internal/tui/components/studyplan"
	"github.com/Sanuxal/SOCRATES.AI/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Task Form State
	if m.state == constants.StateTaskForm {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StatePlanner
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			return m.completeTaskForm()
		case huh.StateAborted:
			m.state = constants.StatePlanner
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Plan Form State
	if m.state == constants.StatePlanForm {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateStudyPlan
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			return m.completePlanForm()
		case huh.StateAborted:
			m.state = constants.StateStudyPlan
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Card Form State
	if m.state == constants.StateCardForm {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateStudyPlan
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			m.planModel.PrependFlashcard(models.Flashcard{
				Front: strings.TrimSpace(m.cardForm.Front),
				Back:  strings.TrimSpace(m.cardForm.Back),
			})
			m.state = constants.StateStudyPlan
		case huh.StateAborted:
			m.state = constants.StateStudyPlan
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.tasks.Delete(m.taskToDeleteID)
				m.plannerModel.SetTasks(m.tasks.All())
				m.state = constants.StatePlanner
				m.taskToDeleteID = ""
			case "n", "N", "esc", "q":
				m.state = constants.StatePlanner
				m.taskToDeleteID = ""
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4 // tabs + help

		h, v := docStyle.GetFrameSize()
		m.chatModel.SetSize(msg.Width-h, contentHeight-v)
		m.planModel.SetSize(msg.Width-h, contentHeight-v)
		m.plannerModel.SetSize(msg.Width-h, contentHeight-v)

	// Chat messages
	case chat.SubmitMsg:
		if m.chatModel.Pending() {
			return m, nil
		}
		history := m.chatModel.History()
		atts := m.chatModel.BeginRequest(msg.Text)
		m.chatEvents = startChatStream(m.client, history, msg.Text, atts, msg.Socratic)
		return m, tea.Batch(listenChat(m.chatEvents), m.chatModel.SpinnerTick())

	case chat.AttachMsg:
		att, err := utils.LoadAttachment(msg.Path)
		if err != nil {
			logger.Warn("attachment not loaded", "path", msg.Path, "error", err)
			return m, nil
		}
		m.chatModel.Stage(att)
		return m, nil

	case chatEventMsg:
		if msg.done {
			m.chatModel.FinishRequest(msg.text, msg.err != nil)
			m.chatEvents = nil
			return m, nil
		}
		m.chatModel.SetStreamingText(msg.text)
		if m.chatEvents == nil {
			return m, nil
		}
		return m, listenChat(m.chatEvents)

	// Study plan messages
	case studyplan.GenerateMsg:
		if m.planModel.Generating() {
			return m, nil
		}
		m.planForm = &PlanFormModel{Hours: "6"}
		m.form = newPlanForm(m.planForm)
		m.state = constants.StatePlanForm
		return m, m.form.Init()

	case studyplan.MoreCardsMsg:
		return m, tea.Batch(
			moreCardsCmd(m.client, msg.Subject, msg.Topics, msg.Existing),
			m.planModel.SpinnerTick(),
		)

	case studyplan.MoreQuestionsMsg:
		return m, tea.Batch(
			moreQuestionsCmd(m.client, msg.Subject, msg.Topics),
			m.planModel.SpinnerTick(),
		)

	case studyplan.AddCardMsg:
		m.cardForm = &CardFormModel{}
		m.form = newCardForm(m.cardForm)
		m.state = constants.StateCardForm
		return m, m.form.Init()

	case planResultMsg:
		if msg.err != nil {
			m.planModel.SetError(studyplan.GenerateFailureText)
			return m, nil
		}
		m.planModel.SetPlan(msg.plan, msg.topics)
		return m, nil

	case cardsResultMsg:
		m.planModel.AppendFlashcards(msg.cards)
		return m, nil

	case questionsResultMsg:
		m.planModel.AppendQuestions(msg.questions)
		return m, nil

	// Planner messages
	case planner.AddTaskMsg:
		if m.estimating {
			return m, nil
		}
		m.editingTaskID = ""
		m.formDate = msg.Date
		m.taskForm = &TaskFormModel{
			Duration: strconv.Itoa(constants.DefaultDurationMin),
			Priority: constants.PriorityMedium,
		}
		m.form = newTaskForm(m.taskForm, false)
		m.state = constants.StateTaskForm
		return m, m.form.Init()

	case planner.EditTaskMsg:
		if m.estimating {
			return m, nil
		}
		m.editingTaskID = msg.Task.ID
		m.formDate = msg.Task.Date
		m.taskForm = &TaskFormModel{
			Title:    msg.Task.Title,
			Duration: strconv.Itoa(msg.Task.DurationMinutes),
			Time:     msg.Task.Time,
			Priority: msg.Task.Priority,
		}
		m.form = newTaskForm(m.taskForm, true)
		m.state = constants.StateTaskForm
		return m, m.form.Init()

	case planner.DeleteTaskMsg:
		m.taskToDeleteID = msg.ID
		m.state = constants.StateConfirmDelete
		return m, nil

	case planner.ToggleTaskMsg:
		m.tasks.ToggleCompletion(msg.ID)
		m.plannerModel.SetTasks(m.tasks.All())
		return m, nil

	case planner.OptimizeMsg:
		m.plannerModel.SetOptimizing()
		return m, tea.Batch(
			optimizeCmd(m.client, msg.Tasks, msg.Date),
			m.plannerModel.SpinnerTick(),
		)

	case estimateResultMsg:
		m.estimating = false
		if m.pending != nil {
			// A failed estimate keeps the duration the form already holds.
			if msg.err == nil {
				m.pending.fields.DurationMinutes = msg.minutes
			}
			m.applyPendingSave()
		}
		return m, nil

	case optimizeResultMsg:
		m.plannerModel.SetOptimization(msg.date, msg.result)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % constants.NumMainTabs
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + constants.NumMainTabs) % constants.NumMainTabs
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateChat:
		m.chatModel, cmd = m.chatModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateStudyPlan:
		m.planModel, cmd = m.planModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StatePlanner:
		m.plannerModel, cmd = m.plannerModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// completeTaskForm turns the submitted form into a store mutation, routing
// through a duration estimate first when requested.
func (m Model) completeTaskForm() (tea.Model, tea.Cmd) {
	duration, err := strconv.Atoi(strings.TrimSpace(m.taskForm.Duration))
	if err != nil {
		duration = constants.DefaultDurationMin
	}
	fields := models.TaskFields{
		Title:           strings.TrimSpace(m.taskForm.Title),
		Time:            strings.TrimSpace(m.taskForm.Time),
		DurationMinutes: duration,
		Priority:        m.taskForm.Priority,
	}

	var weekdays []time.Weekday
	if m.editingTaskID == "" && m.taskForm.Recurring {
		weekdays = m.taskForm.Weekdays
	}

	m.pending = &pendingSave{
		editingID: m.editingTaskID,
		date:      m.formDate,
		fields:    fields,
		weekdays:  weekdays,
	}
	m.state = constants.StatePlanner

	if m.taskForm.Estimate {
		m.estimating = true
		return m, estimateCmd(m.client, fields.Title)
	}

	m.applyPendingSave()
	return m, nil
}

// applyPendingSave commits the saved form: update in place, expand a weekly
// recurrence, or create a single task.
func (m *Model) applyPendingSave() {
	p := m.pending
	m.pending = nil

	switch {
	case p.editingID != "":
		m.tasks.Update(p.editingID, p.fields)
	case len(p.weekdays) > 0:
		instances, err := recurrence.Expand(p.date, p.weekdays, recurrence.Template{
			Title:           p.fields.Title,
			Time:            p.fields.Time,
			DurationMinutes: p.fields.DurationMinutes,
			Priority:        p.fields.Priority,
		})
		if err != nil {
			logger.Error("recurrence expansion failed", "error", err)
			return
		}
		for _, task := range instances {
			m.tasks.Add(task)
		}
	default:
		m.tasks.Create(p.date, p.fields)
	}
	m.plannerModel.SetTasks(m.tasks.All())
}

// completePlanForm gathers the study-plan request and starts generation.
func (m Model) completePlanForm() (tea.Model, tea.Cmd) {
	hours, err := strconv.Atoi(strings.TrimSpace(m.planForm.Hours))
	if err != nil {
		hours = 1
	}

	var atts []models.Attachment
	for _, path := range strings.Split(m.planForm.Attachments, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		att, err := utils.LoadAttachment(path)
		if err != nil {
			logger.Warn("attachment not loaded", "path", path, "error", err)
			continue
		}
		atts = append(atts, att)
	}

	req := gemini.PlanRequest{
		Subject:      strings.TrimSpace(m.planForm.Subject),
		ExamDate:     strings.TrimSpace(m.planForm.ExamDate),
		Topics:       strings.TrimSpace(m.planForm.Topics),
		HoursPerWeek: hours,
		Attachments:  atts,
	}

	m.planModel.SetGenerating()
	m.state = constants.StateStudyPlan
	return m, tea.Batch(generatePlanCmd(m.client, req), m.planModel.SpinnerTick())
}
