// Package provider implements the model-client boundary of the shopping
// agent: backends that take a conversation plus the action schema and return
// the model's single structured choice.
//
// Four backends are supported behind one interface (model.Provider): OpenAI,
// OpenRouter, and Anthropic over their cloud APIs, and Ollama for locally
// hosted models. Backend selection is a configuration choice made at startup
// through NewProvider; the agent loop never branches on the backend.
package provider

// ProviderType identifies the backend implementation.
type ProviderType string

const (
	ProviderTypeOllama     ProviderType = "ollama"
	ProviderTypeOpenRouter ProviderType = "openrouter"
	ProviderTypeOpenAI     ProviderType = "openai"
	ProviderTypeAnthropic  ProviderType = "anthropic"
)

// Config holds backend-specific configuration.
type Config struct {
	Type    ProviderType
	BaseURL string
	Model   string
	APIKey  string // cloud backends only (unused for Ollama)
}
