package ai

import "context"

// Role is the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    Role
	Content string
}

// ChatModel sends a conversation to a language model.
// Implementations must be safe for concurrent use.
type ChatModel interface {
	// Send returns the assistant's reply to the conversation. The first
	// message may be a system prompt. Failures are *ProviderError values.
	// Send never retries.
	Send(ctx context.Context, history []Message) (string, error)

	// Provider names the backend serving this model.
	Provider() Provider
}

// Prober checks provider availability before a chat starts.
type Prober interface {
	// Available reports whether the provider can be used with cfg. For hosted
	// providers this means a key is present; for Ollama, that the server answers.
	Available(ctx context.Context, cfg *Config, p Provider) bool

	// ListModels returns the models installed on the Ollama server.
	ListModels(ctx context.Context, cfg *Config) ([]string, error)
}
