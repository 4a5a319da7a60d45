package mock

import (
	"context"
	"slices"
	"sync"

	"github.com/poiesic/voto/ai"
)

// MockChatModel is a test double for ai.ChatModel.
// It records every conversation it is sent.
type MockChatModel struct {
	// SendFunc is called by Send if set.
	// If nil, Send echoes the last user message.
	SendFunc func(ctx context.Context, history []ai.Message) (string, error)

	// ProviderName is returned by Provider. Default is ai.Ollama.
	ProviderName ai.Provider

	mu        sync.Mutex
	callCount int
	histories [][]ai.Message
}

var _ ai.ChatModel = (*MockChatModel)(nil)

// NewMockChatModel creates a mock chat model with echo behaviour.
func NewMockChatModel() *MockChatModel {
	return &MockChatModel{ProviderName: ai.Ollama}
}

// Send records a copy of the history and replies.
func (m *MockChatModel) Send(ctx context.Context, history []ai.Message) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.histories = append(m.histories, slices.Clone(history))
	fn := m.SendFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, history)
	}

	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == ai.RoleUser {
			return "eco: " + history[i].Content, nil
		}
	}
	return "", ai.NewProviderError(m.Provider(), ai.ErrEmptyConversation, nil)
}

// Provider returns ProviderName.
func (m *MockChatModel) Provider() ai.Provider {
	return m.ProviderName
}

// CallCount returns the number of times Send was called.
func (m *MockChatModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastHistory returns the conversation passed to the most recent Send.
func (m *MockChatModel) LastHistory() []ai.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.histories) == 0 {
		return nil
	}
	return m.histories[len(m.histories)-1]
}

// Reset clears the call count, recorded histories and SendFunc.
func (m *MockChatModel) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.histories = nil
	m.SendFunc = nil
}
