// Package agent implements the shopping agent's decision loop: it
// accumulates conversation turns, asks the model to pick one action from the
// closed schema, executes that action against the product catalog, and turns
// the result into a reply.
package agent

import (
	"context"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"shopagent/model"
	"shopagent/tools"
)

// DefaultSystemPrompt steers the model toward the three shopping actions.
const DefaultSystemPrompt = `You are a shopping assistant. Use these functions:
1. search_products: When user wants to find products (e.g., "show me shirts")
2. get_product_details: When user asks about a specific product ID (e.g., "tell me about product p1")
3. clarify_request: When user's request is unclear`

// Agent owns one conversation and drives the decide/dispatch/reply cycle for
// it. It receives its model client and search provider at construction, so
// sessions are isolated and trivially testable with stubs. Not safe for
// concurrent use; run one Agent per session.
type Agent struct {
	provider       model.Provider
	search         model.SearchProvider
	conv           *model.Conversation
	tools          []mcptypes.Tool
	systemPrompt   string
	blockedPhrases []string
}

// Option configures an Agent.
type Option func(*Agent)

// WithSystemPrompt overrides the default system prompt.
func WithSystemPrompt(prompt string) Option {
	return func(a *Agent) { a.systemPrompt = prompt }
}

// WithBlockedPhrases installs a case-insensitive phrase blocklist checked
// before every model call. Inputs containing a blocked phrase get the fixed
// refusal reply without reaching the model.
func WithBlockedPhrases(phrases []string) Option {
	return func(a *Agent) { a.blockedPhrases = phrases }
}

// New creates an agent over the given model client and search provider.
func New(provider model.Provider, search model.SearchProvider, opts ...Option) *Agent {
	a := &Agent{
		provider:     provider,
		search:       search,
		conv:         model.NewConversation(),
		tools:        tools.ShoppingTools(),
		systemPrompt: DefaultSystemPrompt,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// History returns a copy of the conversation so far.
func (a *Agent) History() []model.Turn {
	return a.conv.Snapshot()
}

// Model returns the model client's active model name.
func (a *Agent) Model() string {
	return a.provider.GetModel()
}

// HandleMessage runs one exchange: append the user turn, have the model
// decide an action, dispatch it, and return the reply. Exactly one reply is
// produced per call.
//
// A successful exchange appends three turns (user, tool result, assistant).
// Any decision failure (model unavailable, timeout, or a schema-violating
// tool call) is downgraded to an error reply and leaves only the user turn
// in history; no failure ends the session.
func (a *Agent) HandleMessage(ctx context.Context, text string) string {
	a.conv.AppendUser(text)

	if a.isIntentBlocked(text) {
		return ReplyRefusal
	}

	decision, err := a.provider.Decide(ctx, a.contextTurns(), a.tools)
	if err != nil {
		return errorReply(err)
	}
	if decision.ToolCall == nil {
		// The model answered in free text instead of picking an action.
		return ReplyFallback
	}

	action, err := model.ParseAction(*decision.ToolCall)
	if err != nil {
		return errorReply(err)
	}

	result, err := a.dispatch(ctx, action)
	if err != nil {
		return errorReply(err)
	}

	a.conv.AppendToolResult(action.ActionName(), result)
	a.conv.AppendAssistant(result)
	return result
}

// contextTurns builds the model's view of the conversation: the system
// prompt followed by every turn so far, in occurrence order.
func (a *Agent) contextTurns() []model.Turn {
	turns := make([]model.Turn, 0, a.conv.Len()+1)
	turns = append(turns, model.Turn{Role: model.RoleSystem, Content: a.systemPrompt})
	return append(turns, a.conv.Snapshot()...)
}

// dispatch executes a well-formed action. Parameters are passed through
// as-is, even when empty: validating them is the search provider's concern.
// A missing product and an empty result set are data, not errors.
func (a *Agent) dispatch(ctx context.Context, action model.Action) (string, error) {
	switch act := action.(type) {
	case model.Search:
		products, err := a.search.Search(ctx, act.Keywords)
		if err != nil {
			return "", err
		}
		return FormatSearchResults(products), nil
	case model.GetProductDetails:
		product, found, err := a.search.GetDetails(ctx, act.ProductID)
		if err != nil {
			return "", err
		}
		if !found {
			return FormatProductNotFound(act.ProductID), nil
		}
		return FormatProductDetails(product), nil
	case model.Clarify:
		return act.Question, nil
	default:
		// Unreachable while ParseAction covers the closed set.
		return "", model.ErrSchemaViolation
	}
}

func (a *Agent) isIntentBlocked(text string) bool {
	if len(a.blockedPhrases) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, phrase := range a.blockedPhrases {
		if phrase != "" && strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}
