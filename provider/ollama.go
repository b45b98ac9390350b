package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/ollama/ollama/api"

	"shopagent/model"
	"shopagent/tools"
)

// OllamaProvider implements model.Provider against a locally hosted Ollama
// server. It is the "local model" half of the cloud/local backend split; the
// agent loop cannot tell it apart from the cloud backends.
type OllamaProvider struct {
	client  *api.Client
	model   string
	baseURL string
}

// NewOllamaProvider creates a new Ollama provider instance.
//
// Parameters:
//   - baseURL: Ollama server URL (default: "http://localhost:11434")
//   - model: Model to use (default: "llama3.1:latest")
//
// Returns an error if the baseURL cannot be parsed.
func NewOllamaProvider(baseURL, modelName string) (*OllamaProvider, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if modelName == "" {
		modelName = "llama3.1:latest"
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	return &OllamaProvider{
		client:  api.NewClient(parsedURL, http.DefaultClient),
		model:   modelName,
		baseURL: baseURL,
	}, nil
}

// Decide implements model.Provider.Decide with a non-streaming chat request.
// Ollama delivers the response through a callback even when streaming is
// off; the first tool call seen wins.
func (p *OllamaProvider) Decide(ctx context.Context, turns []model.Turn, toolDefs []mcptypes.Tool) (*model.Decision, error) {
	req := &api.ChatRequest{
		Model:    p.model,
		Messages: toOllamaMessages(turns),
		Tools:    tools.ToOllama(toolDefs),
		Stream:   func(b bool) *bool { return &b }(false),
	}

	decision := &model.Decision{}
	respFunc := func(resp api.ChatResponse) error {
		decision.Content += resp.Message.Content
		if decision.ToolCall == nil && len(resp.Message.ToolCalls) > 0 {
			call := resp.Message.ToolCalls[0]
			decision.ToolCall = &model.ToolCall{
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			}
		}
		return nil
	}

	if err := p.client.Chat(ctx, req, respFunc); err != nil {
		return nil, classify(err)
	}

	return decision, nil
}

// GetModel implements model.Provider.GetModel.
func (p *OllamaProvider) GetModel() string {
	return p.model
}

// SetModel implements model.Provider.SetModel.
func (p *OllamaProvider) SetModel(model string) {
	p.model = model
}

// Ping implements model.Provider.Ping by listing local models with a short
// deadline.
func (p *OllamaProvider) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := p.client.List(ctx); err != nil {
		return fmt.Errorf("Ollama ping failed: %w", err)
	}
	return nil
}
