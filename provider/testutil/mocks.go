// Package testutil provides hand-rolled mocks for the model-client and
// search-provider boundaries, used by agent and provider tests.
package testutil

import (
	"context"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"shopagent/model"
)

// MockProvider implements model.Provider for testing.
type MockProvider struct {
	// Configurable responses
	DecideFunc func(ctx context.Context, turns []model.Turn, tools []mcptypes.Tool) (*model.Decision, error)
	PingFunc   func(ctx context.Context) error

	// Call counters
	DecideCalls int

	// State
	currentModel string
}

// NewMockProvider creates a mock provider with default implementations.
func NewMockProvider(modelName string) *MockProvider {
	mock := &MockProvider{
		currentModel: modelName,
	}
	mock.DecideFunc = mock.defaultDecide
	mock.PingFunc = func(ctx context.Context) error { return nil }
	return mock
}

// DecideToolCall makes the mock always return the given tool call.
func (m *MockProvider) DecideToolCall(name string, args map[string]any) *MockProvider {
	m.DecideFunc = func(context.Context, []model.Turn, []mcptypes.Tool) (*model.Decision, error) {
		return &model.Decision{ToolCall: &model.ToolCall{Name: name, Arguments: args}}, nil
	}
	return m
}

func (m *MockProvider) defaultDecide(context.Context, []model.Turn, []mcptypes.Tool) (*model.Decision, error) {
	// Default: a plain-text answer with no tool call
	return &model.Decision{Content: "Mock response"}, nil
}

func (m *MockProvider) Decide(ctx context.Context, turns []model.Turn, tools []mcptypes.Tool) (*model.Decision, error) {
	m.DecideCalls++
	return m.DecideFunc(ctx, turns, tools)
}

func (m *MockProvider) GetModel() string {
	return m.currentModel
}

func (m *MockProvider) SetModel(model string) {
	m.currentModel = model
}

func (m *MockProvider) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}

// MockSearchProvider implements model.SearchProvider for testing.
type MockSearchProvider struct {
	SearchFunc     func(ctx context.Context, keywords []string) ([]model.Product, error)
	GetDetailsFunc func(ctx context.Context, productID string) (model.Product, bool, error)

	SearchCalls int
	DetailCalls int
}

// NewMockSearchProvider creates a mock catalog with default implementations
// mirroring the classic two-product demo data.
func NewMockSearchProvider() *MockSearchProvider {
	mock := &MockSearchProvider{}
	mock.SearchFunc = func(context.Context, []string) ([]model.Product, error) {
		return TestProducts(), nil
	}
	mock.GetDetailsFunc = func(_ context.Context, productID string) (model.Product, bool, error) {
		return model.Product{
			ID:          productID,
			Name:        "Product " + productID,
			Price:       19.99,
			Description: "A great product.",
		}, true, nil
	}
	return mock
}

func (m *MockSearchProvider) Search(ctx context.Context, keywords []string) ([]model.Product, error) {
	m.SearchCalls++
	return m.SearchFunc(ctx, keywords)
}

func (m *MockSearchProvider) GetDetails(ctx context.Context, productID string) (model.Product, bool, error) {
	m.DetailCalls++
	return m.GetDetailsFunc(ctx, productID)
}
