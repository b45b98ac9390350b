package testutil

import (
	"time"

	"shopagent/model"
)

// TestProducts returns the two-product result set used across tests.
func TestProducts() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Product 1", Price: 19.99, Description: "A great product."},
		{ID: "p2", Name: "Product 2", Price: 24.99, Description: "Another great product."},
	}
}

// TestTurns returns a sample conversation for testing.
func TestTurns() []model.Turn {
	return []model.Turn{
		{
			Role:      model.RoleUser,
			Content:   "I'm looking for shirts",
			Timestamp: time.Now(),
		},
		{
			Role:       model.RoleTool,
			Content:    "Here are the products I found: Product 1 (ID: p1), Product 2 (ID: p2)",
			ActionName: model.ActionSearch,
			Timestamp:  time.Now(),
		},
		{
			Role:      model.RoleAssistant,
			Content:   "Here are the products I found: Product 1 (ID: p1), Product 2 (ID: p2)",
			Timestamp: time.Now(),
		},
	}
}

// SingleUserTurn returns a one-turn conversation for simple tests.
func SingleUserTurn(content string) []model.Turn {
	return []model.Turn{
		{
			Role:      model.RoleUser,
			Content:   content,
			Timestamp: time.Now(),
		},
	}
}
