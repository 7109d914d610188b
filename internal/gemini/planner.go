package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

// FailedOptimizationAdvice is shown when the optimizer call cannot produce
// a schedule.
const FailedOptimizationAdvice = "No pude optimizar el horario."

// EstimateDuration asks the model how many minutes a task should take. The
// reply is free text, so only its digits are kept; anything unparseable
// falls back to the default estimate.
func (c *Client) EstimateDuration(ctx context.Context, description string) (int, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: estimatePrompt(description)},
		},
	})
	if err != nil {
		return constants.FallbackEstimateMin, fmt.Errorf("estimate duration: %w", err)
	}
	if len(resp.Choices) == 0 {
		return constants.FallbackEstimateMin, nil
	}
	return parseMinutes(resp.Choices[0].Message.Content), nil
}

func parseMinutes(text string) int {
	var digits strings.Builder
	for _, r := range strings.TrimSpace(text) {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil || n <= 0 {
		return constants.FallbackEstimateMin
	}
	return n
}

// OptimizeSchedule asks the model to order a day's tasks and produce a short
// piece of advice. On any failure it returns an empty schedule with the
// fixed fallback advice; the caller only has to render the result.
func (c *Client) OptimizeSchedule(ctx context.Context, tasks []models.Task, date string) models.OptimizedSchedule {
	failed := models.OptimizedSchedule{Schedule: []string{}, Advice: FailedOptimizationAdvice}

	type entry struct {
		Title    string             `json:"title"`
		Duration int                `json:"duration"`
		Priority constants.Priority `json:"priority"`
		Time     string             `json:"time"`
	}
	entries := make([]entry, 0, len(tasks))
	for _, t := range tasks {
		entries = append(entries, entry{
			Title:    t.Title,
			Duration: t.DurationMinutes,
			Priority: t.Priority,
			Time:     t.Time,
		})
	}
	taskJSON, err := json.Marshal(entries)
	if err != nil {
		return failed
	}

	var out models.OptimizedSchedule
	if err := c.completeJSON(ctx, optimizePrompt(string(taskJSON), date), &out); err != nil {
		return failed
	}
	if out.Advice == "" && len(out.Schedule) == 0 {
		return failed
	}
	if out.Schedule == nil {
		out.Schedule = []string{}
	}
	return out
}
