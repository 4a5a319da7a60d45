package render

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/corpus"
	"github.com/poiesic/voto/ingestion"
)

const (
	// maxCandidateBar caps the document bar of the candidate list.
	maxCandidateBar = 10

	// topicBarWidth is the bar length of the most mentioned topic.
	topicBarWidth = 30

	// profileTopics is how many topics a profile lists.
	profileTopics = 8

	// SearchLimit is how many hits the search view lists.
	SearchLimit = 10
)

// Candidates lists every candidate with a bar of its document count, or with
// party, count and source prefixes when detail is set.
func (p *Printer) Candidates(c *core.Corpus, detail bool) {
	p.println(styled(p.title, "\n🗳️  CANDIDATOS PRESIDENCIALES 2026\n"))

	for _, cand := range c.Candidates {
		ids := c.DocumentIDs(cand.Code)
		if detail {
			p.println(styled(p.accent, cand.Code), " - ", styled(p.strong, cand.Name))
			p.printf("   Partido: %s\n", cand.Party)
			p.printf("   Documentos disponibles: %d\n", len(ids))
			if len(ids) > 0 {
				prefixes := make([]string, len(ids))
				for i, id := range ids {
					prefixes[i], _, _ = strings.Cut(id, "-")
				}
				p.printf("   Fuentes: %s\n", strings.Join(prefixes, ", "))
			}
			p.println()
			continue
		}
		bar := rule("█", min(len(ids), maxCandidateBar))
		p.println(styled(p.accent, padRight(cand.Code, 6)), " ", padRight(cand.Name, 35), " ",
			styled(p.good, bar), fmt.Sprintf(" (%d)", len(ids)))
	}

	p.println(styled(p.muted, fmt.Sprintf("\nTotal: %d candidatos\n", len(c.Candidates))))
}

// Topics charts the n most mentioned topics, bars scaled against the first.
func (p *Printer) Topics(c *core.Corpus, n int) {
	p.println(styled(p.title, "\n📊 TEMAS MÁS DISCUTIDOS\n"))

	top := c.TopTopics(n)
	maxCount := 1
	if len(top) > 0 && top[0].Count > 0 {
		maxCount = top[0].Count
	}
	for _, t := range top {
		width := int(float64(t.Count)/float64(maxCount)*topicBarWidth + 0.5)
		p.println(padRight(t.Topic, 20), " ", styled(p.good, rule("█", width)), fmt.Sprintf(" %d", t.Count))
	}
	p.println()
}

// CandidateNotFound reports an unknown candidate code.
func (p *Printer) CandidateNotFound(code string) {
	p.println(styled(p.bad, fmt.Sprintf("\nCandidato %q no encontrado.", strings.ToUpper(code))))
	p.println(styled(p.muted, "Usa \"voto candidatos\" para ver la lista completa.\n"))
}

// Profile shows a candidate's documents and most mentioned topics.
func (p *Printer) Profile(c *core.Corpus, cand core.Candidate) {
	docs := c.CandidateDocuments(cand.Code)

	p.println(styled(p.title, fmt.Sprintf("\n👤 PERFIL: %s\n", cand.Name)))
	p.println("Partido: ", styled(p.accent, cand.Party), fmt.Sprintf(" (%s)", cand.Code))
	p.printf("Documentos: %d entrevistas/apariciones\n\n", len(c.DocumentIDs(cand.Code)))

	if len(docs) > 0 {
		p.println(styled(p.strong, "Fuentes disponibles:"))
		for _, doc := range docs {
			p.println(fmt.Sprintf("  • %s: ", doc.Source), styled(p.muted, doc.Filename),
				fmt.Sprintf(" (%d palabras)", doc.Words))
		}

		p.println(styled(p.strong, "\nTemas principales:"))
		topics := corpus.SortedTopics(corpus.CandidateTopics(c, cand.Code))
		for _, t := range topics[:min(len(topics), profileTopics)] {
			p.printf("  %s: %d menciones\n", t.Topic, t.Count)
		}
	}
	p.println()
}

// Comparison tabulates two candidates' topic counts and their difference.
func (p *Printer) Comparison(cmp *corpus.Comparison) {
	p.println(styled(p.title, fmt.Sprintf("\n⚔️  COMPARACIÓN: %s vs %s\n", cmp.Left.Name, cmp.Right.Name)))
	p.printf("%s %s %s  Diferencia\n", padRight("TEMA", 20), padLeft(cmp.Left.Code, 8), padLeft(cmp.Right.Code, 8))
	p.println(rule("-", 55))

	for _, row := range cmp.Rows {
		var diff string
		switch {
		case row.Diff > 0:
			diff = styled(p.good, fmt.Sprintf("+%d", row.Diff))
		case row.Diff < 0:
			diff = styled(p.bad, fmt.Sprintf("%d", row.Diff))
		default:
			diff = styled(p.muted, "=")
		}
		p.printf("%s %s %s  %s\n", padRight(row.Topic, 20),
			padLeft(fmt.Sprint(row.Left), 8), padLeft(fmt.Sprint(row.Right), 8), diff)
	}
	p.println()
}

// SearchResults lists the first SearchLimit hits with the term highlighted.
func (p *Printer) SearchResults(term string, hits []corpus.Hit) {
	if len(hits) == 0 {
		p.println(styled(p.accent, fmt.Sprintf("\nNo se encontró %q en los documentos.\n", term)))
		return
	}

	p.println(styled(p.title, fmt.Sprintf("\n🔍 RESULTADOS PARA %q\n", term)))
	pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
	for _, hit := range hits[:min(len(hits), SearchLimit)] {
		p.println(styled(p.strong, hit.DocumentID), styled(p.muted, fmt.Sprintf(" (%d menciones)", hit.Count)))
		p.println(styled(p.muted, `  "...`), p.highlight(strings.TrimSpace(hit.Context), pattern), styled(p.muted, `..."`))
		p.println()
	}
	p.println(styled(p.muted, fmt.Sprintf("Total: %d documentos con coincidencias\n", len(hits))))
}

func (p *Printer) highlight(text string, pattern *regexp.Regexp) string {
	var b strings.Builder
	last := 0
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		b.WriteString(styled(p.muted, text[last:loc[0]]))
		b.WriteString(styled(p.mark, text[loc[0]:loc[1]]))
		last = loc[1]
	}
	b.WriteString(styled(p.muted, text[last:]))
	return b.String()
}

// DocumentNotFound reports a transcript that does not exist.
func (p *Printer) DocumentNotFound(id string) {
	p.println(styled(p.bad, fmt.Sprintf("\nDocumento %q no encontrado.", id)))
	p.println(styled(p.muted, "Usa \"voto candidatos -d\" para ver documentos disponibles.\n"))
}

// Preview shows roughly lines*10 words of a transcript.
func (p *Printer) Preview(id, text string, lines int) {
	words := corpus.SplitWords(text)
	shown := max(lines, 0) * 10

	p.println(styled(p.title, fmt.Sprintf("\n📄 %s\n", id)))
	p.println(strings.Join(words[:min(len(words), shown)], " "))
	p.println(styled(p.muted, fmt.Sprintf("\n... (mostrando ~%d palabras de %d total)\n", shown, len(words))))
}

// BuildSummary reports a freshly built knowledge base.
func (p *Printer) BuildSummary(c *core.Corpus, path string) {
	for _, doc := range c.Documents {
		owner, ok := doc.Owner()
		if !ok {
			owner = "DEBATE"
		}
		p.printf("  ✓ %s (%s)\n", doc.Filename, owner)
	}
	p.println(styled(p.good, fmt.Sprintf("\n✓ Knowledge base guardada en %s", path)))
	p.println(styled(p.title, "\n=== RESUMEN ==="))
	p.printf("Documentos: %d\n", len(c.Documents))
	p.printf("Candidatos: %d\n", len(c.Candidates))
	p.println("Temas más mencionados:")
	for _, t := range c.TopTopics(10) {
		p.printf("  - %s: %d menciones\n", t.Topic, t.Count)
	}
}

// ProcessSummary lists the transcripts written from subtitle files.
func (p *Printer) ProcessSummary(dir string, processed []ingestion.Processed) {
	p.printf("Procesando %d transcripciones...\n", len(processed))
	for _, f := range processed {
		p.printf("  ✓ %s (%dKB)\n", f.Output, int(math.Round(float64(f.Length)/1000)))
	}
	p.println(styled(p.good, fmt.Sprintf("\n%d archivos procesados en %s\n", len(processed), dir)))
}
