package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/spectrum"
)

const (
	spectrumWidth   = 70
	comparisonWidth = 60
	bucketWidth     = 7
)

var scaleLabels = map[int]string{
	spectrum.FirstBucket: "IZQUIERDA",
	0:                    "CENTRO",
	spectrum.LastBucket:  "DERECHA",
}

// Spectrum draws every party along the economic axis followed by a compact
// legend, or by per-group detail cards when detail is set. Candidate names
// come from c; parties without a candidate in c are still drawn.
func (p *Printer) Spectrum(c *core.Corpus, detail bool) {
	p.println(styled(p.title, "\n"+rule("═", spectrumWidth)))
	p.println(styled(p.title, "              ESPECTRO POLITICO - CR 2026"))
	p.println(styled(p.title, rule("═", spectrumWidth)+"\n"))

	p.println(styled(p.strong, "  EJE ECONOMICO"))
	p.println(styled(p.muted, "  Estado activo ◄─────────────────────────────────► Libre mercado\n"))

	var scale, markers strings.Builder
	scale.WriteString("  ")
	markers.WriteString("  ")
	for pos := spectrum.FirstBucket; pos <= spectrum.LastBucket; pos++ {
		scale.WriteString(padRight(scaleLabels[pos], bucketWidth))
		marker := "·"
		if pos == 0 {
			marker = "│"
		}
		markers.WriteString(padRight(marker, bucketWidth))
	}
	p.println(styled(p.muted, scale.String()))
	p.println(styled(p.muted, markers.String()))

	p.println()
	for _, b := range spectrum.Buckets() {
		indent := rule(" ", bucketWidth*(b.Position-spectrum.FirstBucket))
		for _, e := range b.Entries {
			p.println(indent, styled(p.paint(e.Color).Bold(true), e.Code))
		}
	}
	p.println()

	if detail {
		p.spectrumDetail(c)
	} else {
		p.spectrumLegend(c)
	}

	p.println(styled(p.title, "\n"+rule("─", spectrumWidth)))
	p.println(styled(p.strong, "  EJE SOCIAL (valores)"))
	p.println(styled(p.muted, "  Progresista ◄───────────────────────────────────► Conservador"))
	p.println(styled(p.muted, "  (igualdad de género, diversidad)    (familia tradicional, fe)\n"))

	p.println(styled(p.title, rule("═", spectrumWidth)))
	p.println(styled(p.muted, "  Nota: Esta clasificación es aproximada y basada en declaraciones"))
	p.println(styled(p.muted, "  públicas. Usá \"voto perfil <SIGLAS>\" para ver más detalles."))
	p.println(styled(p.title, rule("═", spectrumWidth)+"\n"))
}

func (p *Printer) sectionHeader(title string) {
	p.println(styled(p.title, rule("─", spectrumWidth)))
	p.println(styled(p.title, "  "+title))
	p.println(styled(p.title, rule("─", spectrumWidth)+"\n"))
}

func (p *Printer) spectrumLegend(c *core.Corpus) {
	p.sectionHeader("LEYENDA")
	for _, e := range spectrum.ByEconomic() {
		name := ""
		if cand, ok := c.Candidate(e.Code); ok {
			name = cand.ShortName()
		}
		p.println("  ", styled(p.paint(e.Color), padRight(e.Code, 6)), " ", padRight(name, 22), " ", styled(p.muted, e.Label))
	}
}

func (p *Printer) spectrumDetail(c *core.Corpus) {
	p.sectionHeader("DETALLE POR PARTIDO")
	for _, g := range spectrum.Groups() {
		color := p.paint(g.Color)
		p.println(styled(color.Bold(true), "\n  "+strings.ToUpper(g.Name)))
		p.println(styled(p.muted, "  "+rule("─", 40)))

		for _, e := range g.Entries {
			name, party := "Desconocido", ""
			if cand, ok := c.Candidate(e.Code); ok {
				name, party = cand.Name, cand.Party
			}
			p.println("  ", styled(color, padRight(e.Code, 6)), " ", styled(p.strong, name))
			p.println("         ", styled(p.muted, party))
			p.println("         ", styled(p.accent, e.Label))
			p.println("         ", styled(p.muted, e.Description))
			p.println("         Económico: [", p.detailDot(e.Economic, p.accent), "]")
			p.println("         Social:    [", p.detailDot(e.Social, p.title.UnsetBold()), "]")
			p.println()
		}
	}
}

// detailDot draws a ten-cell position gauge: v+5 dots, the marker, 4-v dots.
func (p *Printer) detailDot(v int, marker lipgloss.Style) string {
	return rule("·", max(v+5, 0)) + marker.Render("●") + rule("·", max(4-v, 0))
}

// SpectrumComparison shows two parties side by side on both axes with their
// ideological distance.
func (p *Printer) SpectrumComparison(c *core.Corpus, cmp *spectrum.Comparison) {
	p.println(styled(p.title, "\n"+rule("═", comparisonWidth)))
	p.println(styled(p.title, "  COMPARACION DE ESPECTRO POLITICO"))
	p.println(styled(p.title, rule("═", comparisonWidth)+"\n"))

	for _, e := range []spectrum.Entry{cmp.Left, cmp.Right} {
		name := "Desconocido"
		if cand, ok := c.Candidate(e.Code); ok {
			name = cand.Name
		}
		p.println(styled(p.paint(e.Color).Bold(true), fmt.Sprintf("  %s - %s", e.Code, name)))
		p.println("  ", styled(p.muted, e.Label))
		p.println("  ", e.Description, "\n")
	}

	p.println(styled(p.strong, "  Posición en el espectro:"))
	p.println(styled(p.muted, "  "+rule("─", 50)))

	p.println(styled(p.strong.UnsetBold(), "\n  Eje Económico (Izq ◄──► Der):"))
	p.println(p.axis(cmp.Left, cmp.Left.Economic))
	p.println(p.axis(cmp.Right, cmp.Right.Economic))

	p.println(styled(p.strong.UnsetBold(), "\n  Eje Social (Prog ◄──► Cons):"))
	p.println(p.axis(cmp.Left, cmp.Left.Social))
	p.println(p.axis(cmp.Right, cmp.Right.Social))

	p.println(styled(p.strong.UnsetBold(), "\n  Distancia ideológica: "),
		styled(p.mark, fmt.Sprintf("%.1f", cmp.Distance)), styled(p.muted, " (escala 0-14)"))

	band := p.good
	switch cmp.Band {
	case spectrum.RelativelyClose:
		band = p.accent
	case spectrum.ModerateDifferences:
		band = p.title.UnsetBold()
	case spectrum.VeryDifferent:
		band = p.bad
	}
	p.println(styled(band, "  → "+cmp.Band.String()))
	p.println(styled(p.title, "\n"+rule("═", comparisonWidth)+"\n"))
}

func (p *Printer) axis(e spectrum.Entry, v int) string {
	pos := spectrum.AxisOffset(v)
	return "  [" + rule("·", pos) + p.paint(e.Color).Render("●") + rule("·", 10-pos) + "] " + e.Code
}

// PartyNotFound reports that a spectrum comparison named an unknown party.
func (p *Printer) PartyNotFound() {
	p.println(styled(p.bad, "\nUno o ambos partidos no encontrados en el espectro."))
}
