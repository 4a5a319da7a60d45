package render

import (
	"fmt"
	"strings"

	"github.com/poiesic/voto/quiz"
)

const quizRuleWidth = 55

var medals = []string{"🥇", "🥈", "🥉"}

func (p *Printer) banner(title string) {
	p.println(styled(p.title, "\n"+rule("═", quizRuleWidth)))
	p.println(styled(p.title, title))
	p.println(styled(p.title, rule("═", quizRuleWidth)+"\n"))
}

// QuizIntro opens the questionnaire.
func (p *Printer) QuizIntro() {
	p.banner("       🗳️  DESCUBRÍ TU CANDIDATO IDEAL - CR 2026")
	p.println(styled(p.muted, "Respondé las siguientes preguntas para encontrar"))
	p.println(styled(p.muted, "los candidatos más alineados con tus valores y prioridades.\n"))
}

// Question prints one numbered question with its choices.
func (p *Printer) Question(n int, q quiz.Question) {
	p.println(styled(p.strong, fmt.Sprintf("\n%d. %s", n, q.Message)))
	for i, c := range q.Choices {
		p.printf("   %d) %s\n", i+1, c.Label)
	}
	if q.Multi {
		p.println(styled(p.muted, "   (números separados por coma)"))
	}
}

// QuizResults shows the three best matches, the voter's priorities and next steps.
func (p *Printer) QuizResults(ranking []quiz.Ranked, a quiz.Answers) {
	p.println(styled(p.title, "\n⏳ Analizando tus respuestas...\n"))
	p.banner("              📊 TUS RESULTADOS")
	p.println(styled(p.strong, "Basado en tus respuestas, estos son los candidatos"))
	p.println(styled(p.strong, "que podrían estar más alineados con vos:\n"))

	top := 0.0
	if len(ranking) > 0 {
		top = ranking[0].Score.Total
	}
	for i, r := range ranking[:min(len(ranking), len(medals))] {
		pct := quiz.Affinity(r.Score.Total, top)
		p.println(styled(p.title, fmt.Sprintf("\n%s #%d - %d%% de afinidad", medals[i], i+1, pct)))
		p.println(rule("─", 45))
		p.recommendation(r)
	}

	p.banner("              📝 RESUMEN DE TUS PRIORIDADES")
	for i, id := range []quiz.CategoryID{a.Priority1, a.Priority2} {
		cat, ok := quiz.LookupCategory(id)
		if !ok {
			continue
		}
		p.println(styled(p.accent, fmt.Sprintf("%d.", i+1)), fmt.Sprintf(" %s: %s", cat.Name, cat.Description))
	}

	if len(ranking) > 0 {
		p.banner("              🔍 PRÓXIMOS PASOS")
		first := ranking[0].Candidate.Code
		p.println(styled(p.strong, "Para conocer más sobre tus candidatos recomendados:\n"))
		p.println(styled(p.muted, fmt.Sprintf("  voto perfil %s         # Ver perfil detallado", first)))
		if len(ranking) > 1 {
			p.println(styled(p.muted, fmt.Sprintf("  voto comparar %s %s   # Comparar los dos primeros", first, ranking[1].Candidate.Code)))
		}
		p.println(styled(p.muted, "  voto buscar educación   # Buscar tema específico"))
		p.println(styled(p.muted, fmt.Sprintf("  voto leer TSE-*-%s-*   # Leer entrevista completa", first)))
	}

	p.println(styled(p.title, "\n"+rule("═", quizRuleWidth)))
	p.println(styled(p.mark, "  ⚠️  IMPORTANTE: Esta es solo una guía inicial."))
	p.println(styled(p.strong, "  Investigá más, leé los planes de gobierno y"))
	p.println(styled(p.strong, "  escuchá los debates antes de decidir tu voto."))
	p.println(styled(p.title, rule("═", quizRuleWidth)+"\n"))
	p.println(styled(p.good.Bold(true), "¡Tu voto informado hace la diferencia! 🇨🇷\n"))
}

func (p *Printer) recommendation(r quiz.Ranked) {
	p.println(styled(p.mark, r.Candidate.Name), fmt.Sprintf(" (%s)", r.Candidate.Code))
	p.println("   ", styled(p.muted, r.Candidate.Party))
	if r.Profile.Summary != "" {
		p.println("   ", styled(p.strong, r.Profile.Summary))
	}
	if len(r.Score.Coincidences) > 0 {
		p.println("   ", styled(p.good, "✓"), " Coincidencias: ", strings.Join(r.Score.Coincidences, ", "))
	}
	if len(r.Score.Reasons) > 0 {
		p.println("   ", styled(p.title, "★"), " ", strings.Join(r.Score.Reasons, ", "))
	}
	p.println("   ", styled(p.muted, fmt.Sprintf("(%d entrevistas disponibles para investigar más)", r.Documents)))
	p.println()
}
