package provider

import (
	"context"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"shopagent/model"
	"shopagent/tools"
)

// OpenRouterProvider implements model.Provider against OpenRouter, which is
// 100% OpenAI-compatible, using the official OpenAI Go SDK with a custom
// base URL.
type OpenRouterProvider struct {
	client  openai.Client
	model   string
	baseURL string
	apiKey  string
}

// NewOpenRouterProvider creates a new OpenRouter provider instance.
//
// Parameters:
//   - baseURL: OpenRouter API base URL (default: "https://openrouter.ai/api/v1")
//   - apiKey: OpenRouter API key (required)
//   - model: Model to use, with vendor prefix (default: "openai/gpt-4o-mini")
func NewOpenRouterProvider(baseURL, apiKey, model string) (*OpenRouterProvider, error) {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenRouter API key is required")
	}
	if model == "" {
		model = "openai/gpt-4o-mini"
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &OpenRouterProvider{
		client:  client,
		model:   model,
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}

// Decide implements model.Provider.Decide. The request and response shapes
// are identical to OpenAI's; only the base URL and model naming differ.
func (p *OpenRouterProvider) Decide(ctx context.Context, turns []model.Turn, toolDefs []mcptypes.Tool) (*model.Decision, error) {
	params := openai.ChatCompletionNewParams{
		Messages: toOpenAIMessages(turns),
		Model:    openai.ChatModel(p.model),
	}
	if len(toolDefs) > 0 {
		params.Tools = tools.ToOpenAI(toolDefs)
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Choices) == 0 {
		return &model.Decision{}, nil
	}

	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) > 0 {
		call := msg.ToolCalls[0]
		return &model.Decision{
			ToolCall: &model.ToolCall{
				Name:      call.Function.Name,
				Arguments: ParseToolArguments(call.Function.Arguments),
			},
		}, nil
	}

	return &model.Decision{Content: msg.Content}, nil
}

// GetModel implements model.Provider.GetModel. Returns the full model name
// with vendor prefix (e.g. "openai/gpt-4o-mini").
func (p *OpenRouterProvider) GetModel() string {
	return p.model
}

// SetModel implements model.Provider.SetModel.
func (p *OpenRouterProvider) SetModel(model string) {
	p.model = model
}

// Ping implements model.Provider.Ping by attempting to list models.
func (p *OpenRouterProvider) Ping(ctx context.Context) error {
	_, err := p.client.Models.List(ctx)
	if err != nil {
		return fmt.Errorf("OpenRouter ping failed: %w", err)
	}
	return nil
}
