package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/voto/ai"
)

type fakeSender struct {
	inputs []string
	reply  string
	err    error
}

func (f *fakeSender) Send(_ context.Context, input string) (string, error) {
	f.inputs = append(f.inputs, input)
	return f.reply, f.err
}

func sized(t *testing.T, s Sender) Model {
	t.Helper()
	m := New(context.Background(), s, ai.Ollama)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func enter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestModel_NotReady(t *testing.T) {
	m := New(context.Background(), &fakeSender{}, ai.Ollama)
	assert.Equal(t, "Cargando...", m.View())
}

func TestModel_SendTurn(t *testing.T) {
	sender := &fakeSender{reply: "El PLN propone fortalecer la Caja."}
	m := sized(t, sender)

	m = typeText(m, "¿qué dice el PLN?")
	m, cmd := enter(t, m)
	require.NotNil(t, cmd)
	assert.True(t, m.waiting)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, 1, m.Turns())

	next, _ := m.Update(cmd())
	m = next.(Model)
	assert.False(t, m.waiting)
	assert.Equal(t, []string{"¿qué dice el PLN?"}, sender.inputs)
	assert.Equal(t, 2, m.Turns())
	assert.Contains(t, m.View(), "fortalecer la Caja")
	assert.Contains(t, m.View(), "Listo.")
}

func TestModel_IgnoresInputWhileWaiting(t *testing.T) {
	m := sized(t, &fakeSender{reply: "ok"})
	m = typeText(m, "primera")
	m, cmd := enter(t, m)
	require.NotNil(t, cmd)

	m = typeText(m, "segunda")
	m, cmd = enter(t, m)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.Turns())
}

func TestModel_EmptyInput(t *testing.T) {
	m := sized(t, &fakeSender{})
	m = typeText(m, "   ")
	m, cmd := enter(t, m)
	assert.Nil(t, cmd)
	assert.Zero(t, m.Turns())
}

func TestModel_Failure(t *testing.T) {
	sender := &fakeSender{err: ai.NewProviderError(ai.Ollama, ai.ErrNetwork, errors.New("connection refused"))}
	m := sized(t, sender)
	m = typeText(m, "hola")
	m, cmd := enter(t, m)
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	m = next.(Model)
	assert.Equal(t, 2, m.Turns())
	assert.True(t, m.turns[1].failed)
	assert.Contains(t, m.status, "ollama serve")
}

func TestModel_Exit(t *testing.T) {
	for _, word := range []string{"salir", "SALIR", "exit"} {
		m := sized(t, &fakeSender{})
		m = typeText(m, word)
		m, cmd := enter(t, m)
		require.NotNil(t, cmd, word)
		assert.Equal(t, tea.Quit(), cmd(), word)
		assert.Contains(t, m.View(), "Tu voto hace la diferencia")
	}
}

func TestModel_CtrlC(t *testing.T) {
	m := sized(t, &fakeSender{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, next.(Model).quitting)
}
