package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
	"github.com/Sanuxal/SOCRATES.AI/internal/utils"
)

// PlanRequest carries everything the study-plan generator form collects.
type PlanRequest struct {
	Subject      string
	ExamDate     string
	Topics       string
	HoursPerWeek int
	Attachments  []models.Attachment
}

// GenerateStudyPlan asks the model for a complete exam-preparation kit. The
// response is requested as JSON and shape-checked before being returned, so
// a syntactically valid but incomplete reply surfaces as an error rather
// than an empty plan.
func (c *Client) GenerateStudyPlan(ctx context.Context, req PlanRequest) (models.StudyPlan, error) {
	days, err := utils.DaysUntil(req.ExamDate)
	if err != nil {
		return models.StudyPlan{}, fmt.Errorf("parse exam date: %w", err)
	}
	prompt := studyPlanPrompt(req.Subject, req.ExamDate, days, req.Topics, req.HoursPerWeek)

	msgs := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPlanner},
		toAPIMessage(constants.RoleUser, prompt, req.Attachments),
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return models.StudyPlan{}, fmt.Errorf("generate study plan: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.StudyPlan{}, fmt.Errorf("generate study plan: empty response")
	}

	var plan models.StudyPlan
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &plan); err != nil {
		return models.StudyPlan{}, fmt.Errorf("decode study plan: %w", err)
	}
	if err := validatePlan(plan); err != nil {
		return models.StudyPlan{}, fmt.Errorf("decode study plan: %w", err)
	}
	return plan, nil
}

func validatePlan(p models.StudyPlan) error {
	switch {
	case p.Subject == "":
		return fmt.Errorf("missing subject")
	case p.Goal == "":
		return fmt.Errorf("missing goal")
	case len(p.Sessions) == 0:
		return fmt.Errorf("missing sessions")
	case len(p.Flashcards) == 0:
		return fmt.Errorf("missing flashcards")
	case len(p.ReviewQuestions) == 0:
		return fmt.Errorf("missing review questions")
	case len(p.Tips) == 0:
		return fmt.Errorf("missing tips")
	}
	for i, s := range p.Sessions {
		if s.Day == "" || s.Topic == "" {
			return fmt.Errorf("incomplete session %d", i)
		}
	}
	return nil
}

// MoreFlashcards generates five additional flashcards for an existing plan.
// Failures degrade to an empty slice with the error for the caller to log;
// the plan already on screen is never touched.
func (c *Client) MoreFlashcards(ctx context.Context, subject, topics string, existing int) ([]models.Flashcard, error) {
	var out struct {
		Flashcards []models.Flashcard `json:"flashcards"`
	}
	if err := c.completeJSON(ctx, moreFlashcardsPrompt(subject, topics, existing), &out); err != nil {
		return nil, fmt.Errorf("more flashcards: %w", err)
	}
	return out.Flashcards, nil
}

// MoreQuestions generates three additional review questions.
func (c *Client) MoreQuestions(ctx context.Context, subject, topics string) ([]models.ReviewQuestion, error) {
	var out struct {
		Questions []models.ReviewQuestion `json:"reviewQuestions"`
	}
	if err := c.completeJSON(ctx, moreQuestionsPrompt(subject, topics), &out); err != nil {
		return nil, fmt.Errorf("more questions: %w", err)
	}
	return out.Questions, nil
}

// completeJSON runs a single-prompt completion in JSON mode and decodes the
// reply into dst.
func (c *Client) completeJSON(ctx context.Context, prompt string, dst any) error {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return err
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("empty response")
	}
	return json.Unmarshal([]byte(resp.Choices[0].Message.Content), dst)
}
