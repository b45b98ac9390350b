package catalog

import (
	"context"
	"reflect"
	"testing"

	"shopagent/model"
)

func TestMemorySearch(t *testing.T) {
	m := NewMemory(SampleProducts())
	ctx := context.Background()

	tests := []struct {
		name      string
		keywords  []string
		wantFirst string // expected first product ID, "" for no results
	}{
		{"single keyword", []string{"shirt"}, "p3"},
		{"fuzzy keyword", []string{"sneakers"}, "p5"},
		{"no match", []string{"zzzzqqqq"}, ""},
		{"no keywords", nil, ""},
		{"blank keyword", []string{"   "}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := m.Search(ctx, tt.keywords)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantFirst == "" {
				if len(products) != 0 {
					t.Errorf("expected no products, got %v", products)
				}
				return
			}
			if len(products) == 0 {
				t.Fatal("expected products, got none")
			}
			if products[0].ID != tt.wantFirst {
				t.Errorf("expected first product %q, got %q", tt.wantFirst, products[0].ID)
			}
		})
	}
}

func TestMemorySearchStableOrdering(t *testing.T) {
	m := NewMemory(SampleProducts())
	ctx := context.Background()

	first, err := m.Search(ctx, []string{"product"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := m.Search(ctx, []string{"product"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical queries returned different orderings")
	}
}

func TestMemoryGetDetails(t *testing.T) {
	m := NewMemory(SampleProducts())
	ctx := context.Background()

	p, found, err := m.GetDetails(ctx, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected p1 to be found")
	}
	if p.Name != "Product 1" || p.Price != 19.99 {
		t.Errorf("unexpected product: %+v", p)
	}

	_, found, err = m.GetDetails(ctx, "p999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected p999 to be a miss")
	}
}

func TestMemoryCopiesInput(t *testing.T) {
	products := []model.Product{{ID: "x1", Name: "Widget", Price: 1, Description: "A widget."}}
	m := NewMemory(products)

	products[0].Name = "Mutated"

	p, found, _ := m.GetDetails(context.Background(), "x1")
	if !found || p.Name != "Widget" {
		t.Errorf("catalog sees caller mutation: %+v", p)
	}
}
