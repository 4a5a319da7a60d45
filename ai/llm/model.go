package llm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/voto/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// Model implements ai.ChatModel over a langchaingo llms.Model.
type Model struct {
	provider  ai.Provider
	client    llms.Model
	maxTokens int
	logger    *slog.Logger
}

var _ ai.ChatModel = (*Model)(nil)

// New creates a chat model for the given provider settings. Hosted providers
// without an API key fail with ai.ErrAuthMissing before any network call.
func New(ctx context.Context, s ai.Settings, opts ...Option) (*Model, error) {
	if s == nil {
		return nil, ai.NewProviderError("", ai.ErrProviderNotConfigured, nil)
	}
	cfg, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	if s.Provider().Info().RequiresKey && ai.APIKey(s) == "" {
		return nil, ai.NewProviderError(s.Provider(), ai.ErrAuthMissing, nil)
	}

	var client llms.Model
	switch s := s.(type) {
	case ai.OllamaSettings:
		client, err = ollama.New(
			ollama.WithServerURL(s.BaseURL),
			ollama.WithModel(s.Model),
			ollama.WithHTTPClient(cfg.httpClient),
		)
	case ai.OpenAISettings:
		openaiOpts := []openai.Option{openai.WithToken(s.APIKey), openai.WithModel(s.Model)}
		if s.BaseURL != "" {
			openaiOpts = append(openaiOpts, openai.WithBaseURL(s.BaseURL))
		}
		client, err = openai.New(openaiOpts...)
	case ai.AnthropicSettings:
		anthropicOpts := []anthropic.Option{anthropic.WithToken(s.APIKey), anthropic.WithModel(s.Model)}
		if s.BaseURL != "" {
			anthropicOpts = append(anthropicOpts, anthropic.WithBaseURL(s.BaseURL))
		}
		client, err = anthropic.New(anthropicOpts...)
	case ai.GeminiSettings:
		client, err = googleai.New(ctx,
			googleai.WithAPIKey(s.APIKey),
			googleai.WithDefaultModel(s.Model),
		)
	default:
		return nil, ai.NewProviderError(s.Provider(), ai.ErrUnknownProvider, nil)
	}
	if err != nil {
		return nil, translate(s.Provider(), err)
	}

	return newModel(s.Provider(), client, cfg), nil
}

// NewWithClient wraps an existing langchaingo model, e.g. a fake in tests.
func NewWithClient(p ai.Provider, client llms.Model, opts ...Option) (*Model, error) {
	cfg, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	return newModel(p, client, cfg), nil
}

func newModel(p ai.Provider, client llms.Model, cfg *settings) *Model {
	return &Model{
		provider:  p,
		client:    client,
		maxTokens: cfg.maxTokens,
		logger:    cfg.logger.With("component", "llm", "provider", string(p)),
	}
}

// Provider names the backend serving this model.
func (m *Model) Provider() ai.Provider {
	return m.provider
}

// Send returns the assistant's reply to the conversation.
func (m *Model) Send(ctx context.Context, history []ai.Message) (string, error) {
	if len(history) == 0 {
		return "", ai.NewProviderError(m.provider, ai.ErrEmptyConversation, nil)
	}

	content := make([]llms.MessageContent, 0, len(history))
	for _, msg := range history {
		content = append(content, llms.MessageContent{
			Role:  roleOf(msg.Role),
			Parts: []llms.ContentPart{llms.TextPart(msg.Content)},
		})
	}

	m.logger.Debug("sending conversation", "messages", len(history))
	response, err := m.client.GenerateContent(ctx, content, llms.WithMaxTokens(m.maxTokens))
	if err != nil {
		m.logger.Debug("provider call failed", "err", err)
		return "", translate(m.provider, err)
	}
	if response == nil || len(response.Choices) < 1 || response.Choices[0] == nil {
		return "", ai.NewProviderError(m.provider, ai.ErrMalformedResponse, nil)
	}

	reply := strings.TrimSpace(response.Choices[0].Content)
	if reply == "" {
		return "", ai.NewProviderError(m.provider, ai.ErrMalformedResponse, nil)
	}
	return reply, nil
}

func roleOf(r ai.Role) llms.ChatMessageType {
	switch r {
	case ai.RoleSystem:
		return llms.ChatMessageTypeSystem
	case ai.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
