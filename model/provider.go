package model

import (
	"context"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// ToolCall is a provider-agnostic tool call emitted by a model.
type ToolCall struct {
	Name      string
	Arguments map[string]any
}

// Decision is the outcome of one model invocation. ToolCall is nil when the
// model answered with plain text instead of selecting an action; Content then
// carries whatever text it produced.
type Decision struct {
	ToolCall *ToolCall
	Content  string
}

// Provider abstracts LLM backends (Ollama, OpenAI, OpenRouter, Anthropic)
// using provider-agnostic types from the model layer.
//
// This interface lives in the model package rather than the provider package
// to avoid import cycles: provider implementations import model, and the
// agent loop uses the interface without importing any backend.
type Provider interface {
	// Decide sends the conversation and the action schema to the model and
	// returns its single structured choice. The call blocks until a response
	// or failure arrives; failures are classified as ErrModelUnavailable or
	// ErrModelTimeout. Decide performs no retries.
	Decide(ctx context.Context, turns []Turn, tools []mcptypes.Tool) (*Decision, error)

	// GetModel returns the currently selected model name.
	GetModel() string

	// SetModel changes the active model.
	SetModel(model string)

	// Ping checks if the backend is reachable.
	Ping(ctx context.Context) error
}
