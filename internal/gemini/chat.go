package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/models"
)

// StreamChat sends the conversation plus a new user message and streams the
// reply. onDelta receives the accumulated reply text after every chunk. The
// full reply is returned once the stream ends.
func (c *Client) StreamChat(ctx context.Context, history []models.Message, text string, attachments []models.Attachment, socratic bool, onDelta func(string)) (string, error) {
	system := systemDirect
	if socratic {
		system = systemSocratic
	}

	msgs := []openai.ChatCompletionMessage{{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	}}
	for _, m := range history {
		msgs = append(msgs, toAPIMessage(m.Role, m.Text, m.Attachments))
	}
	msgs = append(msgs, toAPIMessage(constants.RoleUser, text, attachments))

	stream, err := c.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("start chat stream: %w", err)
	}
	defer stream.Close()

	var full string
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return full, fmt.Errorf("receive chat chunk: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if delta := resp.Choices[0].Delta.Content; delta != "" {
			full += delta
			if onDelta != nil {
				onDelta(full)
			}
		}
	}
	return full, nil
}

// toAPIMessage converts a transcript message into the wire format. Messages
// with attachments use multi-part content with the files inlined as data
// URLs; text-only messages stay plain strings.
func toAPIMessage(role constants.Role, text string, attachments []models.Attachment) openai.ChatCompletionMessage {
	apiRole := openai.ChatMessageRoleUser
	if role == constants.RoleModel {
		apiRole = openai.ChatMessageRoleAssistant
	}
	if len(attachments) == 0 {
		return openai.ChatCompletionMessage{Role: apiRole, Content: text}
	}

	parts := make([]openai.ChatMessagePart, 0, len(attachments)+1)
	for _, att := range attachments {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL: fmt.Sprintf("data:%s;base64,%s", att.MIMEType, att.Data),
			},
		})
	}
	parts = append(parts, openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeText,
		Text: text,
	})
	return openai.ChatCompletionMessage{Role: apiRole, MultiContent: parts}
}
