package models

import "github.com/Sanuxal/SOCRATES.AI/internal/constants"

// Attachment is a file attached to a chat turn or a study-plan request,
// carried as base64 data alongside its MIME type.
type Attachment struct {
	Name     string `json:"name"`
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

// Message is a single turn of the tutor conversation.
type Message struct {
	ID          string         `json:"id"`
	Role        constants.Role `json:"role"`
	Text        string         `json:"text"`
	Attachments []Attachment   `json:"attachments,omitempty"`
	Streaming   bool           `json:"-"`
}
