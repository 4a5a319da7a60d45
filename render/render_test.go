package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/voto/ai"
	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/corpus"
	"github.com/poiesic/voto/ingestion"
	"github.com/poiesic/voto/quiz"
	"github.com/poiesic/voto/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrinter() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(&buf), &buf
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(buf.String(), "\n")
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "ñu  ", padRight("ñu", 4))
	assert.Equal(t, "largo", padRight("largo", 3))
	assert.Equal(t, "  ñu", padLeft("ñu", 4))
}

func TestStyled_PlainWriter(t *testing.T) {
	p, _ := newTestPrinter()
	assert.Equal(t, "\nhola\n", styled(p.title, "\nhola\n"))
	assert.Equal(t, "a\nbbb", styled(p.muted, "a\nbbb"))
}

func TestCandidates(t *testing.T) {
	c, _ := corpus.NewTestCorpus()

	t.Run("compact", func(t *testing.T) {
		p, buf := newTestPrinter()
		p.Candidates(c, false)
		out := lines(buf)
		assert.Contains(t, out, "PLN    Álvaro Ramos Chaves                 ███ (3)")
		assert.Contains(t, buf.String(), "PNR    Fabricio Alvarado Muñoz              (0)")
		assert.Contains(t, out, "Total: 6 candidatos")
	})

	t.Run("detail", func(t *testing.T) {
		p, buf := newTestPrinter()
		p.Candidates(c, true)
		out := buf.String()
		assert.Contains(t, out, "PLN - Álvaro Ramos Chaves\n   Partido: Partido Liberación Nacional\n   Documentos disponibles: 3\n   Fuentes: TSE, NPN, EP\n")
		assert.Contains(t, out, "PNR - Fabricio Alvarado Muñoz\n   Partido: Partido Nueva República\n   Documentos disponibles: 0\n\n")
	})
}

func TestTopics(t *testing.T) {
	c, _ := corpus.NewTestCorpus()
	p, buf := newTestPrinter()
	p.Topics(c, 2)

	out := lines(buf)
	assert.Contains(t, out, "social               "+strings.Repeat("█", 30)+" 33")
	assert.Contains(t, out, "ambiente             "+strings.Repeat("█", 27)+" 30")
	assert.NotContains(t, buf.String(), "educación")
}

func TestProfile(t *testing.T) {
	c, _ := corpus.NewTestCorpus()
	cand, err := c.LookupCandidate("PLN")
	require.NoError(t, err)

	p, buf := newTestPrinter()
	p.Profile(c, cand)
	out := buf.String()

	assert.Contains(t, out, "👤 PERFIL: Álvaro Ramos Chaves")
	assert.Contains(t, out, "Partido: Partido Liberación Nacional (PLN)\nDocumentos: 3 entrevistas/apariciones\n")
	assert.Contains(t, out, "  • TSE (Entrevista Oficial): TSE-01-PLN-Alvaro_Ramos.txt (15 palabras)\n")
	assert.Contains(t, out, "Temas principales:\n  salud: 14 menciones\n  CCSS: 8 menciones\n  infraestructura: 6 menciones\n")

	p, buf = newTestPrinter()
	cand, _ = c.LookupCandidate("PNR")
	p.Profile(c, cand)
	assert.NotContains(t, buf.String(), "Fuentes disponibles")
}

func TestComparison(t *testing.T) {
	c, _ := corpus.NewTestCorpus()
	cmp, err := corpus.Compare(c, "PLN", "PUSC")
	require.NoError(t, err)

	p, buf := newTestPrinter()
	p.Comparison(cmp)
	out := lines(buf)

	assert.Contains(t, out, "⚔️  COMPARACIÓN: Álvaro Ramos Chaves vs Juan Carlos Hidalgo Bogantes")
	assert.Contains(t, out, "TEMA                      PLN     PUSC  Diferencia")
	assert.Contains(t, out, "educación                   3       20  -17")
	assert.Contains(t, out, "salud                      14        0  +14")
}

func TestSearchResults(t *testing.T) {
	t.Run("no hits", func(t *testing.T) {
		p, buf := newTestPrinter()
		p.SearchResults("agua", nil)
		assert.Contains(t, buf.String(), `No se encontró "agua" en los documentos.`)
	})

	t.Run("hits", func(t *testing.T) {
		hits := make([]corpus.Hit, 12)
		for i := range hits {
			hits[i] = corpus.Hit{DocumentID: "DOC", Filename: "DOC.txt", Count: 12 - i, Context: " la Salud y la salud "}
		}
		hits[0].DocumentID = "TSE-01-PLN-Alvaro_Ramos"

		p, buf := newTestPrinter()
		p.SearchResults("salud", hits)
		out := buf.String()
		assert.Contains(t, out, `🔍 RESULTADOS PARA "salud"`)
		assert.Contains(t, out, "TSE-01-PLN-Alvaro_Ramos (12 menciones)\n  \"...la Salud y la salud...\"\n")
		assert.Equal(t, SearchLimit, strings.Count(out, "menciones)"))
		assert.Contains(t, out, "Total: 12 documentos con coincidencias")
	})
}

func TestPreview(t *testing.T) {
	words := make([]string, 25)
	for i := range words {
		words[i] = "w"
	}
	p, buf := newTestPrinter()
	p.Preview("DOC", strings.Join(words, " "), 2)

	out := buf.String()
	assert.Contains(t, out, "📄 DOC")
	assert.Contains(t, out, "\n"+strings.Join(words[:20], " ")+"\n")
	assert.Contains(t, out, "... (mostrando ~20 palabras de 25 total)")
}

func TestNotFound(t *testing.T) {
	p, buf := newTestPrinter()
	p.CandidateNotFound("xyz")
	p.DocumentNotFound("NADA")
	p.PartyNotFound()

	out := buf.String()
	assert.Contains(t, out, `Candidato "XYZ" no encontrado.`)
	assert.Contains(t, out, `Documento "NADA" no encontrado.`)
	assert.Contains(t, out, "Uno o ambos partidos no encontrados en el espectro.")
}

func TestBuildSummary(t *testing.T) {
	c, _ := corpus.NewTestCorpus()
	p, buf := newTestPrinter()
	p.BuildSummary(c, "data/knowledge-base.json")

	out := buf.String()
	assert.Contains(t, out, "  ✓ TSE-01-PLN-Alvaro_Ramos.txt (PLN)\n")
	assert.Contains(t, out, "  ✓ DEBATE-01-Primer_Debate.txt (DEBATE)\n")
	assert.Contains(t, out, "Documentos: 8\nCandidatos: 6\n")
	assert.Contains(t, out, "  - social: 33 menciones\n")
}

func TestProcessSummary(t *testing.T) {
	p, buf := newTestPrinter()
	p.ProcessSummary("data/processed", []ingestion.Processed{
		{Source: "TSE-01-PLN-Alvaro_Ramos.es.vtt", Output: "TSE-01-PLN-Alvaro_Ramos.txt", Length: 48600},
		{Source: "EP-X.vtt", Output: "EP-X.txt", Length: 300},
	})

	out := buf.String()
	assert.Contains(t, out, "Procesando 2 transcripciones...\n")
	assert.Contains(t, out, "  ✓ TSE-01-PLN-Alvaro_Ramos.txt (49KB)\n")
	assert.Contains(t, out, "  ✓ EP-X.txt (0KB)\n")
	assert.Contains(t, out, "2 archivos procesados en data/processed")
}

func TestSpectrum(t *testing.T) {
	c, _ := corpus.NewTestCorpus()

	t.Run("compact", func(t *testing.T) {
		p, buf := newTestPrinter()
		p.Spectrum(c, false)
		out := lines(buf)

		assert.Contains(t, out, "              ESPECTRO POLITICO - CR 2026")
		assert.Contains(t, out, "  IZQUIERDA                     CENTRO                      DERECHA")
		assert.Contains(t, out, "  ·      ·      ·      ·      │      ·      ·      ·      ·      ")
		assert.Contains(t, out, "FA")
		assert.Contains(t, out, strings.Repeat(" ", 56)+"PLP")
		assert.Contains(t, out, "  FA     Ariel Robles           Izquierda progresista")
		assert.Contains(t, out, "  PDLCT                         Izquierda")
		assert.Contains(t, out, "  LEYENDA")
		assert.NotContains(t, out, "  DETALLE POR PARTIDO")
	})

	t.Run("detail", func(t *testing.T) {
		p, buf := newTestPrinter()
		p.Spectrum(c, true)
		out := buf.String()

		assert.Contains(t, out, "  DETALLE POR PARTIDO")
		assert.Contains(t, out, "\n  IZQUIERDA\n")
		assert.Contains(t, out, "\n  CENTRO-DERECHA\n")
		assert.Contains(t, out, "  FA     Ariel Robles Barrantes\n         Frente Amplio\n         Izquierda progresista\n")
		assert.Contains(t, out, "         Económico: [·●········]\n         Social:    [·●········]\n")
		assert.Contains(t, out, "  PDLCT  Desconocido\n")
		assert.NotContains(t, out, "LEYENDA")
	})
}

func TestSpectrumComparison(t *testing.T) {
	c, _ := corpus.NewTestCorpus()
	cmp, err := spectrum.Compare("fa", "PLP")
	require.NoError(t, err)

	p, buf := newTestPrinter()
	p.SpectrumComparison(c, cmp)
	out := buf.String()

	assert.Contains(t, out, "  FA - Ariel Robles Barrantes\n  Izquierda progresista\n")
	assert.Contains(t, out, "  PLP - Eliécer Feinzaig Mintz\n")
	assert.Contains(t, out, "  Eje Económico (Izq ◄──► Der):\n  [·●·········] FA\n  [·········●·] PLP\n")
	assert.Contains(t, out, "  Eje Social (Prog ◄──► Cons):\n  [·●·········] FA\n  [·····●·····] PLP\n")
	assert.Contains(t, out, "  Distancia ideológica: 8.9 (escala 0-14)\n  → Posiciones muy distintas\n")

	cmp, err = spectrum.Compare("CR1", "PIN")
	require.NoError(t, err)
	p, buf = newTestPrinter()
	p.SpectrumComparison(c, cmp)
	assert.Contains(t, buf.String(), "  CR1 - Desconocido\n")
	assert.Contains(t, buf.String(), "  → Muy cercanos ideológicamente\n")
}

func TestQuizResults(t *testing.T) {
	ranking := []quiz.Ranked{
		{
			Candidate: core.Candidate{Code: "PUSC", Name: "Juan Carlos Hidalgo Bogantes", Party: "Partido Unidad Social Cristiana"},
			Profile:   quiz.Profile{Code: "PUSC", Summary: "Liberal clásico"},
			Score:     quiz.Score{Total: 8, Reasons: []string{"Enfocado en Educación"}, Coincidences: []string{"Enfoque económico", "Reforma de CCSS"}},
			Documents: 1,
		},
		{
			Candidate: core.Candidate{Code: "PLN", Name: "Álvaro Ramos Chaves", Party: "Partido Liberación Nacional"},
			Score:     quiz.Score{Total: 4},
			Documents: 3,
		},
	}
	answers := quiz.Answers{Priority1: quiz.Educacion, Priority2: quiz.Salud}

	p, buf := newTestPrinter()
	p.QuizResults(ranking, answers)
	out := buf.String()

	assert.Contains(t, out, "🥇 #1 - 100% de afinidad\n"+strings.Repeat("─", 45)+"\nJuan Carlos Hidalgo Bogantes (PUSC)\n")
	assert.Contains(t, out, "   Liberal clásico\n   ✓ Coincidencias: Enfoque económico, Reforma de CCSS\n   ★ Enfocado en Educación\n")
	assert.Contains(t, out, "   (1 entrevistas disponibles para investigar más)\n")
	assert.Contains(t, out, "🥈 #2 - 50% de afinidad")
	assert.NotContains(t, out, "🥉")
	assert.Contains(t, out, "1. Educación: Calidad educativa, oportunidades para jóvenes\n2. Salud Pública: ")
	assert.Contains(t, out, "  voto comparar PUSC PLN   # Comparar los dos primeros")
	assert.Contains(t, out, "  voto leer TSE-*-PUSC-*   # Leer entrevista completa")
}

func TestQuestion(t *testing.T) {
	q, ok := quiz.LookupQuestion(quiz.KeyGroups)
	require.True(t, ok)

	p, buf := newTestPrinter()
	p.Question(9, q)
	out := buf.String()
	assert.Contains(t, out, "9. ¿Con cuáles grupos te identificás más? (podés elegir varios)\n")
	assert.Contains(t, out, "   1) 👨‍💼 Trabajador/empleado\n")
	assert.Contains(t, out, "(números separados por coma)")
}

func TestChatViews(t *testing.T) {
	p, buf := newTestPrinter()
	p.ChatBanner(ai.Ollama)
	out := buf.String()
	assert.Contains(t, out, "🗳️  ASISTENTE DE VOTO INFORMADO CR 2026")
	assert.Contains(t, out, "Usando: Ollama (Local)")
	assert.Contains(t, out, `  • "¿Quién habla más de seguridad?"`)
	assert.Contains(t, out, `Escribí "salir" para terminar.`)

	p, buf = newTestPrinter()
	p.Failure(ai.NewProviderError(ai.Ollama, ai.ErrNetwork, errors.New("connection refused")))
	assert.Contains(t, buf.String(), "❌ Error: Ollama error: connection refused. ¿Está corriendo Ollama? (ollama serve)")
	assert.Contains(t, buf.String(), "💡 Tip: Asegurate de que Ollama esté corriendo (ollama serve)")

	p, buf = newTestPrinter()
	p.Failure(errors.New("OpenAI error: boom"))
	assert.NotContains(t, buf.String(), "💡")

	p, buf = newTestPrinter()
	p.Unavailable(ai.OpenAI)
	assert.Contains(t, buf.String(), "❌ OpenAI no está disponible.\n   Verificá tu API key con \"voto config\".")

	p, buf = newTestPrinter()
	p.Reply(AskReplyHeader, "Hola.")
	assert.Equal(t, "\n🤖 Respuesta:\n\nHola.\n\n", buf.String())
}

func TestProviderChoice(t *testing.T) {
	p, _ := newTestPrinter()
	assert.Equal(t, "Ollama (Local) - Gratis, privado, corre en tu máquina ✓ Disponible", p.ProviderChoice(ai.Ollama, true))
	assert.Equal(t, "Ollama (Local) - Gratis, privado, corre en tu máquina (Requiere: ollama serve)", p.ProviderChoice(ai.Ollama, false))
	assert.Equal(t, "OpenAI - GPT-4o, rápido y preciso ✓ API Key configurada", p.ProviderChoice(ai.OpenAI, true))
	assert.Equal(t, "Google Gemini - Free tier generoso (Requiere API Key)", p.ProviderChoice(ai.Gemini, false))
}
