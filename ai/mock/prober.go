package mock

import (
	"context"
	"sync"

	"github.com/poiesic/voto/ai"
)

// MockProber is a test double for ai.Prober.
type MockProber struct {
	// AvailableFunc is called by Available if set.
	// If nil, every provider is available.
	AvailableFunc func(ctx context.Context, cfg *ai.Config, p ai.Provider) bool

	// ListModelsFunc is called by ListModels if set.
	// If nil, ListModels returns no models.
	ListModelsFunc func(ctx context.Context, cfg *ai.Config) ([]string, error)

	mu        sync.Mutex
	callCount int
}

var _ ai.Prober = (*MockProber)(nil)

// NewMockProber creates a prober that reports everything available.
func NewMockProber() *MockProber {
	return &MockProber{}
}

// Available reports availability.
func (m *MockProber) Available(ctx context.Context, cfg *ai.Config, p ai.Provider) bool {
	m.count()
	if m.AvailableFunc != nil {
		return m.AvailableFunc(ctx, cfg, p)
	}
	return true
}

// ListModels lists Ollama models.
func (m *MockProber) ListModels(ctx context.Context, cfg *ai.Config) ([]string, error) {
	m.count()
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx, cfg)
	}
	return []string{}, nil
}

func (m *MockProber) count() {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()
}

// CallCount returns the number of times any method was called.
func (m *MockProber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and injected behaviour.
func (m *MockProber) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.AvailableFunc = nil
	m.ListModelsFunc = nil
}
