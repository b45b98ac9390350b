package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"shopagent/model"
)

// Memory is an in-memory product catalog implementing model.SearchProvider.
// Keyword matching is fuzzy over name and description, so near-misses like
// "shirts" still find "Classic Cotton Shirt".
type Memory struct {
	products []model.Product
	byID     map[string]int
	haystack []string // lowercased "name description" per product
}

// NewMemory creates an in-memory catalog over the given products. The slice
// is copied; later mutations of the argument do not affect the catalog.
func NewMemory(products []model.Product) *Memory {
	m := &Memory{
		products: make([]model.Product, len(products)),
		byID:     make(map[string]int, len(products)),
		haystack: make([]string, len(products)),
	}
	copy(m.products, products)
	for i, p := range m.products {
		m.byID[p.ID] = i
		m.haystack[i] = strings.ToLower(p.Name + " " + p.Description)
	}
	return m
}

// Search implements model.SearchProvider.Search. Results are ordered by
// total fuzzy score across keywords, ties broken by catalog position, so
// identical queries return identical orderings.
func (m *Memory) Search(ctx context.Context, keywords []string) ([]model.Product, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	scores := make(map[int]int)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		for _, match := range fuzzy.Find(kw, m.haystack) {
			scores[match.Index] += match.Score + 1
		}
	}

	indexes := make([]int, 0, len(scores))
	for i := range scores {
		indexes = append(indexes, i)
	}
	sort.Slice(indexes, func(a, b int) bool {
		if scores[indexes[a]] != scores[indexes[b]] {
			return scores[indexes[a]] > scores[indexes[b]]
		}
		return indexes[a] < indexes[b]
	})

	products := make([]model.Product, 0, len(indexes))
	for _, i := range indexes {
		products = append(products, m.products[i])
	}
	return products, nil
}

// GetDetails implements model.SearchProvider.GetDetails.
func (m *Memory) GetDetails(ctx context.Context, productID string) (model.Product, bool, error) {
	i, ok := m.byID[productID]
	if !ok {
		return model.Product{}, false, nil
	}
	return m.products[i], true, nil
}

// SampleProducts returns the demo catalog used to seed fresh stores.
func SampleProducts() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Product 1", Price: 19.99, Description: "A great product."},
		{ID: "p2", Name: "Product 2", Price: 24.99, Description: "Another great product."},
		{ID: "p3", Name: "Classic Cotton Shirt", Price: 29.99, Description: "A breathable cotton shirt for everyday wear."},
		{ID: "p4", Name: "Slim Fit Denim Jeans", Price: 49.99, Description: "Dark wash denim jeans with a slim cut."},
		{ID: "p5", Name: "Canvas Sneakers", Price: 39.99, Description: "Low-top canvas sneakers with rubber soles."},
		{ID: "p6", Name: "Wool Winter Scarf", Price: 14.99, Description: "A warm merino wool scarf."},
	}
}
