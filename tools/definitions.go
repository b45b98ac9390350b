// Package tools defines the shopping agent's action schema as MCP tool
// definitions and converts it to each backend's wire format.
//
// The schema is the single source of truth for what the model may do: three
// tools, one per action, each with its required parameters. Backends receive
// the same definitions converted to their own tool format, so switching the
// backend never changes the action set.
package tools

import (
	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// ShoppingTools returns the closed tool set offered to the model on every
// decision: search_products, get_product_details, and clarify_request.
func ShoppingTools() []mcptypes.Tool {
	return []mcptypes.Tool{
		{
			Name:        "search_products",
			Description: "Search for products using keywords",
			InputSchema: mcptypes.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"keywords": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Keywords to search for",
					},
				},
				Required: []string{"keywords"},
			},
		},
		{
			Name:        "get_product_details",
			Description: "Get detailed information about a specific product",
			InputSchema: mcptypes.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"product_id": map[string]any{
						"type":        "string",
						"description": "Product ID to get details for",
					},
				},
				Required: []string{"product_id"},
			},
		},
		{
			Name:        "clarify_request",
			Description: "Ask user for clarification when request is unclear",
			InputSchema: mcptypes.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"question": map[string]any{
						"type":        "string",
						"description": "Question to ask user for clarification",
					},
				},
				Required: []string{"question"},
			},
		},
	}
}
