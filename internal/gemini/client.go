package gemini

import (
	"github.com/sashabaranov/go-openai"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
)

// Client wraps the hosted generative-model service behind the five
// operations the application needs. It talks to the Gemini OpenAI-compatible
// endpoint, so the transport is a stock chat-completions client.
type Client struct {
	api   *openai.Client
	model string
}

// New creates a client for the hosted Gemini endpoint using the given API
// credential. The credential is the only configuration the client takes.
func New(apiKey string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = constants.GeminiAPIBaseURL
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: constants.ModelName,
	}
}

// NewWithBaseURL creates a client against an alternate endpoint. Used by
// tests to point at a local stub server.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: constants.ModelName,
	}
}
