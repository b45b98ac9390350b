package provider

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/ollama/ollama/api"
	"github.com/openai/openai-go/v3"

	"shopagent/model"
)

// Tool-result turns are replayed to the model as user-role messages with a
// bracketed framing rather than as native tool messages. Native tool roles
// require the tool-call IDs of the originating response, which the
// conversation does not track; the framed form reads the same to the model
// across all four backends.
func frameToolResult(t model.Turn) string {
	return fmt.Sprintf("[%s result] %s", t.ActionName, t.Content)
}

// toOpenAIMessages converts conversation turns to OpenAI chat messages.
// OpenRouter uses the same format.
func toOpenAIMessages(turns []model.Turn) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))
	for _, t := range turns {
		switch t.Role {
		case model.RoleSystem:
			result = append(result, openai.SystemMessage(t.Content))
		case model.RoleAssistant:
			result = append(result, openai.AssistantMessage(t.Content))
		case model.RoleTool:
			result = append(result, openai.UserMessage(frameToolResult(t)))
		default:
			result = append(result, openai.UserMessage(t.Content))
		}
	}
	return result
}

// toAnthropicMessages converts conversation turns to Anthropic messages.
// System turns are hoisted into system blocks since Anthropic carries the
// system prompt outside the message list.
func toAnthropicMessages(turns []model.Turn) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	messages := make([]anthropic.MessageParam, 0, len(turns))
	var system []anthropic.TextBlockParam

	for _, t := range turns {
		switch t.Role {
		case model.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: t.Content})
		case model.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(t.Content)))
		case model.RoleTool:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(frameToolResult(t))))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(t.Content)))
		}
	}

	return messages, system
}

// toOllamaMessages converts conversation turns to Ollama API messages.
// Ollama accepts the tool role without call IDs, so tool turns keep their
// role but still carry the framing for consistency with the cloud backends.
func toOllamaMessages(turns []model.Turn) []api.Message {
	result := make([]api.Message, len(turns))
	for i, t := range turns {
		content := t.Content
		if t.Role == model.RoleTool {
			content = frameToolResult(t)
		}
		result[i] = api.Message{
			Role:    t.Role,
			Content: content,
		}
	}
	return result
}

// ParseToolArguments parses a JSON arguments string into a map. Used by the
// OpenAI, OpenRouter, and Anthropic backends, whose APIs return tool
// arguments as raw JSON. A malformed payload yields an empty map; the schema
// layer then rejects the call for its missing parameters.
func ParseToolArguments(argsJSON string) map[string]any {
	var args map[string]any
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return make(map[string]any)
	}
	return args
}
