package model

import "fmt"

// Wire names of the closed action set. The model must pick exactly one of
// these per decision; anything else is a schema violation.
const (
	ActionSearch            = "search_products"
	ActionGetProductDetails = "get_product_details"
	ActionClarify           = "clarify_request"
)

// Action is one member of the closed set of structured operations the agent
// can perform. Implemented only by Search, GetProductDetails, and Clarify.
type Action interface {
	// ActionName returns the action's wire name.
	ActionName() string
}

// Search looks up products matching a set of keywords.
type Search struct {
	Keywords []string
}

// GetProductDetails fetches the full record for a single product.
type GetProductDetails struct {
	ProductID string
}

// Clarify asks the user a clarifying question instead of acting.
type Clarify struct {
	Question string
}

func (Search) ActionName() string            { return ActionSearch }
func (GetProductDetails) ActionName() string { return ActionGetProductDetails }
func (Clarify) ActionName() string           { return ActionClarify }

// ParseAction validates a raw tool call against the action schema and returns
// the typed action. It fails with ErrSchemaViolation when the call names an
// action outside the closed set or omits a required parameter.
//
// Present-but-empty parameters (e.g. an empty keyword list) pass through
// unchanged: emptiness is validated by the search provider, not here.
// ParseAction has no side effects.
func ParseAction(call ToolCall) (Action, error) {
	switch call.Name {
	case ActionSearch:
		keywords, err := keywordsParam(call.Arguments)
		if err != nil {
			return nil, err
		}
		return Search{Keywords: keywords}, nil
	case ActionGetProductDetails:
		id, err := stringParam(call.Arguments, "product_id")
		if err != nil {
			return nil, err
		}
		return GetProductDetails{ProductID: id}, nil
	case ActionClarify:
		question, err := stringParam(call.Arguments, "question")
		if err != nil {
			return nil, err
		}
		return Clarify{Question: question}, nil
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrSchemaViolation, call.Name)
	}
}

func stringParam(args map[string]any, name string) (string, error) {
	raw, ok := args[name]
	if !ok {
		return "", fmt.Errorf("%w: missing required parameter %q", ErrSchemaViolation, name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: parameter %q must be a string", ErrSchemaViolation, name)
	}
	return s, nil
}

// keywordsParam accepts the schema's array-of-strings form, but also a bare
// string, which some models emit despite the declared schema. A bare string
// is treated as a single keyword.
func keywordsParam(args map[string]any) ([]string, error) {
	raw, ok := args["keywords"]
	if !ok {
		return nil, fmt.Errorf("%w: missing required parameter %q", ErrSchemaViolation, "keywords")
	}

	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		keywords := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: parameter %q must contain only strings", ErrSchemaViolation, "keywords")
			}
			keywords = append(keywords, s)
		}
		return keywords, nil
	default:
		return nil, fmt.Errorf("%w: parameter %q must be an array of strings", ErrSchemaViolation, "keywords")
	}
}
