package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/poiesic/voto/ai"
	"github.com/poiesic/voto/chat"
)

// Sender is the part of chat.Session the screen drives.
type Sender interface {
	Send(ctx context.Context, input string) (string, error)
}

var _ Sender = (*chat.Session)(nil)

type turn struct {
	speaker string
	text    string
	failed  bool
}

// replyMsg carries the outcome of one Send.
type replyMsg struct {
	reply string
	err   error
}

// Model is the Bubble Tea model of the chat screen.
type Model struct {
	ctx      context.Context
	session  Sender
	provider ai.Provider
	input    textinput.Model
	viewport viewport.Model
	turns    []turn
	status   string
	waiting  bool
	ready    bool
	quitting bool
}

// New creates a chat screen over session.
func New(ctx context.Context, session Sender, provider ai.Provider) Model {
	ti := textinput.New()
	ti.Prompt = "Vos: "
	ti.Placeholder = "Escribí tu pregunta y presioná Enter"
	ti.Focus()
	ti.CharLimit = 0
	return Model{
		ctx:      ctx,
		session:  session,
		provider: provider,
		input:    ti,
		viewport: viewport.New(0, 0),
		status:   "Usando: " + provider.Info().Name + `. Escribí "salir" para terminar.`,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) send(input string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.session.Send(m.ctx, input)
		return replyMsg{reply: reply, err: err}
	}
}

// Update handles window, key and reply events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, frame := historyBoxStyle.GetFrameSize()
		_, inputFrame := inputBoxStyle.GetFrameSize()
		reserved := 2 + 1 + inputFrame + 1 // header, status, input line
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = max(3, msg.Height-reserved-frame)
		m.refresh()
		return m, nil

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.turns = append(m.turns, turn{speaker: "❌ Error", text: msg.err.Error(), failed: true})
			m.status = "La consulta falló; podés intentar de nuevo."
			if strings.Contains(msg.err.Error(), "Ollama") {
				m.status = "💡 Tip: Asegurate de que Ollama esté corriendo (ollama serve)"
			}
		} else {
			m.turns = append(m.turns, turn{speaker: "🤖 Asistente", text: msg.reply})
			m.status = "Listo."
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			m.quitting = true
			return m, tea.Quit
		}
		switch msg.Type {
		case tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			if input == "" || m.waiting {
				return m, nil
			}
			if chat.IsExit(input) {
				m.quitting = true
				return m, tea.Quit
			}
			m.input.SetValue("")
			m.turns = append(m.turns, turn{speaker: "Vos", text: input})
			m.waiting = true
			m.status = "Pensando..."
			m.refresh()
			return m, m.send(input)
		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}

func (m Model) transcript() string {
	if len(m.turns) == 0 {
		return mutedStyle.Render("Preguntame sobre los candidatos, sus propuestas, o pedime que te ayude a decidir.")
	}
	width := max(20, m.viewport.Width-2)
	var b strings.Builder
	for i, t := range m.turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		speaker := speakerStyle
		switch {
		case t.failed:
			speaker = errorStyle
		case t.speaker == "Vos":
			speaker = userStyle
		}
		b.WriteString(speaker.Render(t.speaker + ":"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Render(t.text))
	}
	return b.String()
}

// View renders the header, the conversation, the input and the status line.
func (m Model) View() string {
	if m.quitting {
		return "¡Gracias por informarte! Tu voto hace la diferencia. 🇨🇷\n"
	}
	if !m.ready {
		return "Cargando..."
	}
	header := headerStyle.Render("🗳️  ASISTENTE DE VOTO INFORMADO CR 2026")
	sub := mutedStyle.Render(m.provider.Info().Name)
	history := historyBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + sub + "\n" + history + "\n" + input + "\n" + status
}

// Turns returns the number of exchanges shown on screen.
func (m Model) Turns() int {
	return len(m.turns)
}

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	userStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	speakerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	historyBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Run starts the chat screen on the terminal and blocks until the user leaves.
func Run(ctx context.Context, session Sender, provider ai.Provider) error {
	_, err := tea.NewProgram(New(ctx, session, provider), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
