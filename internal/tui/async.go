package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sanuxal/SOCRATES.AI/internal/gemini"
	"github.com/Sanuxal/SOCRATES.AI/internal/logger"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

// Service calls run in goroutines spawned from commands; each result comes
// back into the single Update loop as one of the messages below. No model
// state is touched off the loop.

type chatEvent struct {
	text string
	err  error
	done bool
}

type chatEventMsg chatEvent

type planResultMsg struct {
	plan   models.StudyPlan
	topics string
	err    error
}

type cardsResultMsg struct {
	cards []models.Flashcard
}

type questionsResultMsg struct {
	questions []models.ReviewQuestion
}

// estimateResultMsg carries the estimate error so a failed call leaves the
// duration the user typed in place.
type estimateResultMsg struct {
	minutes int
	err     error
}

// optimizeResultMsg carries the date it was computed for so results that
// outlive their selection can be discarded.
type optimizeResultMsg struct {
	date   string
	result models.OptimizedSchedule
}

// startChatStream spawns the streaming request and returns the channel the
// Update loop listens on. Deltas carry the accumulated reply.
func startChatStream(client *gemini.Client, history []models.Message, text string, atts []models.Attachment, socratic bool) chan chatEvent {
	ch := make(chan chatEvent, 32)
	go func() {
		full, err := client.StreamChat(context.Background(), history, text, atts, socratic, func(s string) {
			ch <- chatEvent{text: s}
		})
		if err != nil {
			logger.Error("chat request failed", "error", err)
		}
		ch <- chatEvent{text: full, err: err, done: true}
		close(ch)
	}()
	return ch
}

func listenChat(ch chan chatEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return chatEventMsg(ev)
	}
}

func generatePlanCmd(client *gemini.Client, req gemini.PlanRequest) tea.Cmd {
	return func() tea.Msg {
		plan, err := client.GenerateStudyPlan(context.Background(), req)
		if err != nil {
			logger.Error("study plan generation failed", "error", err)
		}
		return planResultMsg{plan: plan, topics: req.Topics, err: err}
	}
}

func moreCardsCmd(client *gemini.Client, subject, topics string, existing int) tea.Cmd {
	return func() tea.Msg {
		cards, err := client.MoreFlashcards(context.Background(), subject, topics, existing)
		if err != nil {
			logger.Warn("more flashcards failed", "error", err)
		}
		return cardsResultMsg{cards: cards}
	}
}

func moreQuestionsCmd(client *gemini.Client, subject, topics string) tea.Cmd {
	return func() tea.Msg {
		questions, err := client.MoreQuestions(context.Background(), subject, topics)
		if err != nil {
			logger.Warn("more questions failed", "error", err)
		}
		return questionsResultMsg{questions: questions}
	}
}

func estimateCmd(client *gemini.Client, title string) tea.Cmd {
	return func() tea.Msg {
		minutes, err := client.EstimateDuration(context.Background(), title)
		if err != nil {
			logger.Warn("duration estimate failed", "error", err)
		}
		return estimateResultMsg{minutes: minutes, err: err}
	}
}

func optimizeCmd(client *gemini.Client, tasks []models.Task, date string) tea.Cmd {
	return func() tea.Msg {
		result := client.OptimizeSchedule(context.Background(), tasks, date)
		return optimizeResultMsg{date: date, result: result}
	}
}
