package model

import "context"

// Product is a catalog record. The agent treats products as read-only; only
// the search provider owns and mutates them.
type Product struct {
	ID          string
	Name        string
	Price       float64
	Description string
}

// SearchProvider is the catalog boundary the agent depends on. A miss from
// GetDetails is data, not an error: found is false and err is nil.
type SearchProvider interface {
	// Search returns products matching the keywords, in provider-defined
	// relevance order. The order is stable for identical queries within a
	// session. An empty result is valid.
	Search(ctx context.Context, keywords []string) ([]Product, error)

	// GetDetails returns the product with the given ID, or found=false when
	// no such product exists.
	GetDetails(ctx context.Context, productID string) (Product, bool, error)
}
