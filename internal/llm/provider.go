package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the external text-generation service.
// Each HTTP request performs at most one Generate call; implementations
// must be safe for concurrent use and must not hold process-wide locks
// across the network call.
type Provider interface {
	// Generate sends a prompt to the model and returns its output. When the
	// request carries a Schema, the provider asks for structured JSON and
	// validates the response against the schema before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and hard constraints.
	System string

	// Messages is the conversation. Quiz generation is single-turn, so this
	// is one user message in practice.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// Nil means the response is raw text wrapped as json.RawMessage.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]; zero value means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema; kebab-case, e.g. "health-quiz".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
