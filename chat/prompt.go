// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package chat

import (
	"fmt"
	"strings"

	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/retrieval"
)

// promptTopics is how many global topics the system prompt lists.
const promptTopics = 10

// Labels that introduce the user's question after the transcript context.
const (
	SessionQuestionLabel = "PREGUNTA DEL USUARIO"
	AskQuestionLabel     = "PREGUNTA"
)

// SystemPrompt describes the assistant's role, the candidates and the most
// discussed topics of the corpus.
func SystemPrompt(c *core.Corpus) string {
	var b strings.Builder
	b.WriteString("Sos un asistente experto en las elecciones presidenciales de Costa Rica 2026. " +
		"Tu trabajo es ayudar a los votantes a informarse sobre los candidatos de manera objetiva y basada en datos.\n\n")

	b.WriteString("CANDIDATOS PRESIDENCIALES 2026:\n")
	for i, cand := range c.Candidates {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s (%s) - %s", cand.Name, cand.Code, cand.Party)
	}

	b.WriteString(`

REGLAS IMPORTANTES:
1. Sé objetivo y neutral - no favorezcas a ningún candidato
2. Basá tus respuestas en las transcripciones de entrevistas que te proporciono
3. Cuando cites algo, indicá la fuente (ej: "En la entrevista del TSE, X dijo...")
4. Si no tenés información sobre algo, decilo claramente
5. Respondé en español costarricense (vos, tico, mae, etc.)
6. Sé conciso pero informativo
7. Si te preguntan por quién votar, explicá que eso es decisión personal y ofrecé comparar opciones

TEMAS PRINCIPALES EN LA CAMPAÑA:
`)
	for i, t := range c.TopTopics(promptTopics) {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s: %d menciones", t.Topic, t.Count)
	}

	b.WriteString("\n\nCuando el usuario pregunte sobre un candidato o tema, " +
		"usá el contexto de las transcripciones para dar respuestas precisas y citables.")
	return b.String()
}

// ContextMessage prefixes the question with the retrieved excerpts, one
// "=== name (CODE) - source ===" block per chunk. Without chunks the
// question is returned unchanged.
func ContextMessage(question string, chunks []retrieval.Chunk, label string) string {
	if len(chunks) == 0 {
		return question
	}
	var b strings.Builder
	b.WriteString("CONTEXTO DE TRANSCRIPCIONES:\n\n")
	for _, ch := range chunks {
		fmt.Fprintf(&b, "=== %s (%s) - %s ===\n", ch.CandidateName, ch.CandidateCode, ch.SourceLabel)
		b.WriteString(ch.Text)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "\n---\n%s: %s", label, question)
	return b.String()
}
