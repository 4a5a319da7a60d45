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


package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/poiesic/voto/spectrum"
)

// ANSI palette indices.
const (
	colorRed     = lipgloss.Color("1")
	colorGreen   = lipgloss.Color("2")
	colorYellow  = lipgloss.Color("3")
	colorBlue    = lipgloss.Color("4")
	colorMagenta = lipgloss.Color("5")
	colorCyan    = lipgloss.Color("6")
	colorWhite   = lipgloss.Color("7")
	colorGray    = lipgloss.Color("8")
)

// Printer renders views onto a writer.
type Printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer

	title  lipgloss.Style
	strong lipgloss.Style
	muted  lipgloss.Style
	accent lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	mark   lipgloss.Style
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:        w,
		renderer: r,
		title:    r.NewStyle().Foreground(colorCyan).Bold(true),
		strong:   r.NewStyle().Foreground(colorWhite).Bold(true),
		muted:    r.NewStyle().Foreground(colorGray),
		accent:   r.NewStyle().Foreground(colorYellow),
		good:     r.NewStyle().Foreground(colorGreen),
		bad:      r.NewStyle().Foreground(colorRed),
		mark:     r.NewStyle().Foreground(colorYellow).Bold(true),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) println(parts ...string) {
	fmt.Fprintln(p.w, strings.Join(parts, ""))
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// paint returns the style for a spectrum display color.
func (p *Printer) paint(c spectrum.Color) lipgloss.Style {
	var fg lipgloss.Color
	switch c {
	case spectrum.Red:
		fg = colorRed
	case spectrum.Magenta:
		fg = colorMagenta
	case spectrum.Green:
		fg = colorGreen
	case spectrum.Blue:
		fg = colorBlue
	case spectrum.Cyan:
		fg = colorCyan
	case spectrum.Yellow:
		fg = colorYellow
	default:
		fg = colorWhite
	}
	return p.renderer.NewStyle().Foreground(fg)
}

// padRight pads s with spaces to n characters. Longer strings are kept whole.
func padRight(s string, n int) string {
	if k := utf8.RuneCountInString(s); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}

// padLeft right-aligns s in n characters.
func padLeft(s string, n int) string {
	if k := utf8.RuneCountInString(s); k < n {
		return strings.Repeat(" ", n-k) + s
	}
	return s
}

func rule(r string, n int) string {
	return strings.Repeat(r, n)
}

// styled applies st to each line of s separately, so multi-line text is not
// padded to a common width.
func styled(st lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
