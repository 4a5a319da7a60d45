package render

import (
	"fmt"
	"strings"

	"github.com/poiesic/voto/ai"
)

// Reply headers.
const (
	SessionReplyHeader = "🤖 Asistente:"
	AskReplyHeader     = "🤖 Respuesta:"
)

// ChatExamples are suggested first questions.
var ChatExamples = []string{
	"¿Qué propone Claudia Dobles sobre educación?",
	"Compará a Álvaro Ramos y Juan Carlos Hidalgo",
	"¿Quién habla más de seguridad?",
	"Ayudame a elegir, me importa la salud y el ambiente",
}

// ChatBanner opens an interactive chat session.
func (p *Printer) ChatBanner(provider ai.Provider) {
	p.banner("     🗳️  ASISTENTE DE VOTO INFORMADO CR 2026")
	p.println(styled(p.muted, "Usando: "+provider.Info().Name))
	p.println(styled(p.strong.UnsetBold(), "\nPreguntame sobre los candidatos, sus propuestas, o pedime"))
	p.println(styled(p.strong.UnsetBold(), "que te ayude a decidir basado en tus prioridades.\n"))
	p.println(styled(p.muted, "Ejemplos:"))
	for _, ex := range ChatExamples {
		p.println(styled(p.muted, fmt.Sprintf("  • %q", ex)))
	}
	p.println(styled(p.muted, "\nEscribí \"salir\" para terminar.\n"))
}

// Prompt is the label shown before the user's input.
func (p *Printer) Prompt() string {
	return styled(p.good, "Vos:") + " "
}

// Reply prints a model answer under header.
func (p *Printer) Reply(header, text string) {
	p.println(styled(p.title.UnsetBold(), "\n"+header+"\n"))
	p.println(text)
	p.println()
}

// Failure reports a failed turn. Ollama failures get a hint to start the server.
func (p *Printer) Failure(err error) {
	msg := err.Error()
	p.println(styled(p.bad, fmt.Sprintf("\n❌ Error: %s\n", msg)))
	if strings.Contains(msg, "Ollama") {
		p.println(styled(p.accent, "💡 Tip: Asegurate de que Ollama esté corriendo (ollama serve)\n"))
	}
}

// Farewell closes an interactive chat session.
func (p *Printer) Farewell() {
	p.println(styled(p.title.UnsetBold(), "\n¡Gracias por informarte! Tu voto hace la diferencia. 🇨🇷\n"))
}

// Unavailable reports that the selected provider cannot be reached.
func (p *Printer) Unavailable(provider ai.Provider) {
	p.println(styled(p.bad, fmt.Sprintf("\n❌ %s no está disponible.", provider.Info().Name)))
	if provider == ai.Ollama {
		p.println(styled(p.accent, "   Ejecutá \"ollama serve\" en otra terminal.\n"))
		return
	}
	p.println(styled(p.accent, "   Verificá tu API key con \"voto config\".\n"))
}

// NotConfigured reports that no provider has been chosen yet.
func (p *Printer) NotConfigured() {
	p.println(styled(p.bad, "❌ LLM no configurado. Ejecutá \"voto config\" primero."))
}

// ConfiguringFirst announces that chat will run the configuration first.
func (p *Printer) ConfiguringFirst() {
	p.println(styled(p.accent, "\n⚠️  LLM no configurado. Vamos a configurarlo...\n"))
}

// ConfigHeader opens the provider configuration.
func (p *Printer) ConfigHeader() {
	p.println(styled(p.title, "\n⚙️  CONFIGURACIÓN DE LLM\n"))
}

// ProviderChoice formats one provider menu entry with its availability.
func (p *Printer) ProviderChoice(provider ai.Provider, available bool) string {
	info := provider.Info()
	var status string
	switch {
	case provider == ai.Ollama && available:
		status = styled(p.good, " ✓ Disponible")
	case provider == ai.Ollama:
		status = styled(p.accent, " (Requiere: ollama serve)")
	case available:
		status = styled(p.good, " ✓ API Key configurada")
	default:
		status = styled(p.muted, " (Requiere API Key)")
	}
	return fmt.Sprintf("%s - %s%s", info.Name, info.Description, status)
}

// Menu prints numbered choices under a question.
func (p *Printer) Menu(question string, choices []string) {
	p.println(styled(p.strong, question))
	for i, c := range choices {
		p.printf("  %d) %s\n", i+1, c)
	}
}

// NoModels warns that the local Ollama server has no models installed.
func (p *Printer) NoModels() {
	p.println(styled(p.accent, "\n⚠️  No se encontraron modelos. Instalá uno con: ollama pull llama3.2\n"))
}

// ConfigSaved confirms the saved provider.
func (p *Printer) ConfigSaved(provider ai.Provider, path string) {
	p.println(styled(p.good, fmt.Sprintf("\n✓ Configuración guardada en %s. Usando %s\n", path, provider.Info().Name)))
}

// Notice prints a dimmed informational line.
func (p *Printer) Notice(msg string) {
	p.println(styled(p.muted, msg))
}
