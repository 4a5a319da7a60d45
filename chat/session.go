package chat

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/poiesic/voto/ai"
	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/retrieval"
)

// MaxHistory is the history length above which the oldest turn pair is dropped.
const MaxHistory = 10

// Retriever selects transcript excerpts for a question.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]retrieval.Chunk, error)
}

var _ Retriever = (*retrieval.Retriever)(nil)

// Option configures a Session.
type Option func(*Session) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// Session is one interactive conversation. It is safe for concurrent use,
// though turns are serialized.
type Session struct {
	model     ai.ChatModel
	retriever Retriever
	logger    *slog.Logger

	mu      sync.Mutex
	history []ai.Message
}

// NewSession starts a conversation seeded with the corpus system prompt.
func NewSession(model ai.ChatModel, retriever Retriever, c *core.Corpus, opts ...Option) (*Session, error) {
	if model == nil {
		return nil, ErrModelRequired
	}
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if c == nil {
		return nil, ErrCorpusRequired
	}
	s := &Session{
		model:     model,
		retriever: retriever,
		logger:    slog.Default(),
		history:   []ai.Message{{Role: ai.RoleSystem, Content: SystemPrompt(c)}},
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.With("component", "chat-session")
	return s, nil
}

// Send runs one turn: retrieve context for the input, append it as a user
// message, call the model and append the reply. A failed call leaves the
// history as it was before the turn, so the session can continue.
func (s *Session) Send(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}

	chunks, err := s.retriever.Retrieve(ctx, input)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, ai.Message{
		Role:    ai.RoleUser,
		Content: ContextMessage(input, chunks, SessionQuestionLabel),
	})
	reply, err := s.model.Send(ctx, slices.Clone(s.history))
	if err != nil {
		s.history = s.history[:len(s.history)-1]
		s.logger.Debug("turn failed", "err", err)
		return "", err
	}

	s.history = append(s.history, ai.Message{Role: ai.RoleAssistant, Content: reply})
	s.history = TrimHistory(s.history)
	s.logger.Debug("turn complete", "chunks", len(chunks), "history", len(s.history))
	return reply, nil
}

// History returns a copy of the conversation so far.
func (s *Session) History() []ai.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}

// TrimHistory drops the entries at index 1 and 2, the oldest user/assistant
// pair, when the history is longer than MaxHistory. Index 0 is the system prompt.
func TrimHistory(history []ai.Message) []ai.Message {
	if len(history) <= MaxHistory {
		return history
	}
	return slices.Delete(history, 1, 3)
}

// IsExit reports whether the input ends an interactive session.
func IsExit(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "salir", "exit":
		return true
	}
	return false
}

// Ask sends a single question with its context, outside any session.
func Ask(ctx context.Context, model ai.ChatModel, retriever Retriever, c *core.Corpus, question string) (string, error) {
	if model == nil {
		return "", ErrModelRequired
	}
	if retriever == nil {
		return "", ErrRetrieverRequired
	}
	if c == nil {
		return "", ErrCorpusRequired
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyInput
	}

	chunks, err := retriever.Retrieve(ctx, question)
	if err != nil {
		return "", err
	}
	return model.Send(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: SystemPrompt(c)},
		{Role: ai.RoleUser, Content: ContextMessage(question, chunks, AskQuestionLabel)},
	})
}
