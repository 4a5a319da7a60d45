package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/poiesic/voto/ai"
	"github.com/poiesic/voto/ai/mock"
	"github.com/poiesic/voto/corpus"
	"github.com/poiesic/voto/retrieval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, *mock.MockChatModel) {
	t.Helper()
	c, texts := corpus.NewTestCorpus()
	r, err := retrieval.NewRetriever(c, texts)
	require.NoError(t, err)
	model := mock.NewMockChatModel()
	s, err := NewSession(model, r, c)
	require.NoError(t, err)
	return s, model
}

func TestSystemPrompt(t *testing.T) {
	c, _ := corpus.NewTestCorpus()
	prompt := SystemPrompt(c)

	assert.True(t, strings.HasPrefix(prompt, "Sos un asistente experto en las elecciones presidenciales de Costa Rica 2026."))
	assert.Contains(t, prompt, "CANDIDATOS PRESIDENCIALES 2026:\n- Álvaro Ramos Chaves (PLN) - Partido Liberación Nacional\n")
	assert.Contains(t, prompt, "- Fabricio Alvarado Muñoz (PNR) - Partido Nueva República\n\nREGLAS IMPORTANTES:")
	assert.Contains(t, prompt, "TEMAS PRINCIPALES EN LA CAMPAÑA:\n- social: 33 menciones\n- ambiente: 30 menciones\n")
	assert.True(t, strings.HasSuffix(prompt, "para dar respuestas precisas y citables."))
}

func TestContextMessage(t *testing.T) {
	assert.Equal(t, "hola", ContextMessage("hola", nil, SessionQuestionLabel))

	msg := ContextMessage("¿y el empleo?", []retrieval.Chunk{
		{CandidateName: "Juan Carlos Hidalgo", CandidateCode: "PUSC", SourceLabel: "TSE (Entrevista Oficial)", Text: "Texto A"},
		{CandidateName: "Claudia Dobles", CandidateCode: "CAC", SourceLabel: "Otro", Text: "Texto B"},
	}, AskQuestionLabel)

	assert.Equal(t, "CONTEXTO DE TRANSCRIPCIONES:\n\n"+
		"=== Juan Carlos Hidalgo (PUSC) - TSE (Entrevista Oficial) ===\nTexto A\n\n"+
		"=== Claudia Dobles (CAC) - Otro ===\nTexto B\n\n"+
		"\n---\nPREGUNTA: ¿y el empleo?", msg)
}

func TestNewSession_Required(t *testing.T) {
	c, texts := corpus.NewTestCorpus()
	r, err := retrieval.NewRetriever(c, texts)
	require.NoError(t, err)
	model := mock.NewMockChatModel()

	_, err = NewSession(nil, r, c)
	assert.ErrorIs(t, err, ErrModelRequired)
	_, err = NewSession(model, nil, c)
	assert.ErrorIs(t, err, ErrRetrieverRequired)
	_, err = NewSession(model, r, nil)
	assert.ErrorIs(t, err, ErrCorpusRequired)
}

func TestSession_Send(t *testing.T) {
	s, model := newTestSession(t)
	ctx := context.Background()

	reply, err := s.Send(ctx, "  ¿Qué dice el PUSC?  ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply, "eco: CONTEXTO DE TRANSCRIPCIONES:"))
	assert.True(t, strings.HasSuffix(reply, "PREGUNTA DEL USUARIO: ¿Qué dice el PUSC?"))

	sent := model.LastHistory()
	require.Len(t, sent, 2)
	assert.Equal(t, ai.RoleSystem, sent[0].Role)
	assert.Contains(t, sent[1].Content, "=== Juan Carlos Hidalgo Bogantes (PUSC) - TSE (Entrevista Oficial) ===")

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, ai.RoleAssistant, history[2].Role)
	assert.Equal(t, reply, history[2].Content)
}

func TestSession_EmptyInput(t *testing.T) {
	s, model := newTestSession(t)

	_, err := s.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Zero(t, model.CallCount())
	assert.Len(t, s.History(), 1)
}

func TestSession_FailureKeepsSession(t *testing.T) {
	s, model := newTestSession(t)
	ctx := context.Background()
	model.SendFunc = func(context.Context, []ai.Message) (string, error) {
		return "", ai.NewProviderError(ai.Ollama, ai.ErrNetwork, errors.New("connection refused"))
	}

	_, err := s.Send(ctx, "hola")
	assert.ErrorIs(t, err, ai.ErrNetwork)
	assert.Len(t, s.History(), 1)

	model.Reset()
	reply, err := s.Send(ctx, "hola de nuevo")
	require.NoError(t, err)
	assert.Contains(t, reply, "hola de nuevo")
	assert.Len(t, s.History(), 3)
}

func TestSession_Trim(t *testing.T) {
	s, model := newTestSession(t)
	ctx := context.Background()
	model.SendFunc = func(_ context.Context, h []ai.Message) (string, error) {
		return fmt.Sprintf("respuesta %d", len(h)), nil
	}

	for i := 1; i <= 4; i++ {
		_, err := s.Send(ctx, fmt.Sprintf("pregunta %d", i))
		require.NoError(t, err)
	}
	assert.Len(t, s.History(), 9)

	_, err := s.Send(ctx, "pregunta 5")
	require.NoError(t, err)
	history := s.History()
	require.Len(t, history, 9)
	assert.Equal(t, ai.RoleSystem, history[0].Role)
	assert.Contains(t, history[1].Content, "pregunta 2")
	assert.Contains(t, history[7].Content, "pregunta 5")

	_, err = s.Send(ctx, "pregunta 6")
	require.NoError(t, err)
	history = s.History()
	require.Len(t, history, 9)
	assert.Contains(t, history[1].Content, "pregunta 3")
}

func TestTrimHistory(t *testing.T) {
	msgs := func(n int) []ai.Message {
		out := make([]ai.Message, n)
		for i := range out {
			out[i] = ai.Message{Content: fmt.Sprint(i)}
		}
		return out
	}

	assert.Len(t, TrimHistory(msgs(10)), 10)

	trimmed := TrimHistory(msgs(11))
	require.Len(t, trimmed, 9)
	assert.Equal(t, "0", trimmed[0].Content)
	assert.Equal(t, "3", trimmed[1].Content)
	assert.Equal(t, "10", trimmed[8].Content)
}

func TestIsExit(t *testing.T) {
	assert.True(t, IsExit("salir"))
	assert.True(t, IsExit(" SALIR "))
	assert.True(t, IsExit("Exit"))
	assert.False(t, IsExit("salirme"))
	assert.False(t, IsExit(""))
}

func TestAsk(t *testing.T) {
	c, texts := corpus.NewTestCorpus()
	r, err := retrieval.NewRetriever(c, texts)
	require.NoError(t, err)
	model := mock.NewMockChatModel()
	ctx := context.Background()

	reply, err := Ask(ctx, model, r, c, "¿Qué propone Dobles?")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(reply, "PREGUNTA: ¿Qué propone Dobles?"))

	sent := model.LastHistory()
	require.Len(t, sent, 2)
	assert.Equal(t, SystemPrompt(c), sent[0].Content)
	assert.Contains(t, sent[1].Content, "=== Claudia Dobles Camargo (CAC) - TSE (Entrevista Oficial) ===\nEl medio ambiente y la igualdad de género.")

	_, err = Ask(ctx, model, r, c, " ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = Ask(ctx, nil, r, c, "x")
	assert.ErrorIs(t, err, ErrModelRequired)
}

type failingRetriever struct{}

func (failingRetriever) Retrieve(context.Context, string) ([]retrieval.Chunk, error) {
	return nil, errors.New("disk on fire")
}

func TestSession_RetrieverFailure(t *testing.T) {
	c, _ := corpus.NewTestCorpus()
	model := mock.NewMockChatModel()
	s, err := NewSession(model, failingRetriever{}, c)
	require.NoError(t, err)

	_, err = s.Send(context.Background(), "hola")
	assert.EqualError(t, err, "disk on fire")
	assert.Zero(t, model.CallCount())
}
