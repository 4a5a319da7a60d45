package corpus

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/poiesic/voto/core"
)

// MapTextLoader serves transcripts from memory, keyed by filename.
type MapTextLoader map[string]string

var _ TextSource = MapTextLoader(nil)

// LoadText returns the stored text or ErrDocumentNotFound.
func (m MapTextLoader) LoadText(ctx context.Context, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, ok := m[filename]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, filename)
	}
	return text, nil
}

// ListTexts returns the stored filenames in lexical order.
func (m MapTextLoader) ListTexts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func testDoc(id string, code string, name string, topics map[string]int, text string) *core.Document {
	doc := &core.Document{
		ID:       id,
		Filename: id + TextSuffix,
		Source:   core.SourceTypeFromFilename(id),
		Length:   len(text),
		Words:    len(SplitWords(text)),
		Topics:   topics,
		Summary:  text,
	}
	if code != "" {
		doc.CandidateCode = &code
		doc.CandidateName = &name
	}
	return doc
}

// NewTestCorpus builds a small, valid corpus together with the texts of its
// documents. PNR has no documents, FA has no official interview and the debate
// has no owner.
func NewTestCorpus() (*core.Corpus, MapTextLoader) {
	candidates := []core.Candidate{
		{Code: "PLN", Name: "Álvaro Ramos Chaves", Party: "Partido Liberación Nacional"},
		{Code: "PUSC", Name: "Juan Carlos Hidalgo Bogantes", Party: "Partido Unidad Social Cristiana"},
		{Code: "CAC", Name: "Claudia Dobles Camargo", Party: "Coalición Acción Ciudadana"},
		{Code: "FA", Name: "Ariel Robles Barrantes", Party: "Frente Amplio"},
		{Code: "PLP", Name: "Eliécer Feinzaig Mintz", Party: "Partido Liberal Progresista"},
		{Code: "PNR", Name: "Fabricio Alvarado Muñoz", Party: "Partido Nueva República"},
	}
	names := make(map[string]string, len(candidates))
	for _, c := range candidates {
		names[c.Code] = c.Name
	}

	texts := MapTextLoader{}
	var documents []*core.Document
	add := func(id, code string, topics map[string]int, text string) {
		texts[id+TextSuffix] = text
		documents = append(documents, testDoc(id, code, names[code], topics, text))
	}

	add("TSE-01-PLN-Alvaro_Ramos", "PLN",
		map[string]int{"salud": 12, "CCSS": 8, "empleo": 5, "educación": 3},
		"Entrevista oficial. La salud y la CCSS son prioridad. Empleo para todos. La Salud primero.")
	add("NPN-PLN-Alvaro_Ramos", "PLN",
		map[string]int{"seguridad": 4, "salud": 2},
		"Conversación informal sobre seguridad y salud.")
	add("EP-PLN-Alvaro_Ramos", "PLN",
		map[string]int{"infraestructura": 6},
		"Infraestructura, carreteras y puentes.")
	add("TSE-02-PUSC-Juan_Carlos_Hidalgo", "PUSC",
		map[string]int{"educación": 20, "empleo": 15, "seguridad": 10, "economía": 9},
		"Educación, educación y más educación. El empleo crece con la economía.")
	add("TSE-03-CAC-Claudia_Dobles", "CAC",
		map[string]int{"ambiente": 30, "género": 10, "social": 8},
		"El medio ambiente y la igualdad de género.")
	add("SSL-FA-Ariel_Robles", "FA",
		map[string]int{"social": 25, "educación": 7, "desigualdad": 5},
		"La desigualdad social y la educación pública.")
	add("TSE-05-PLP-Eliecer_Feinzaig", "PLP",
		map[string]int{"impuestos": 14, "seguridad": 9, "empresas": 6},
		"Bajar impuestos, más seguridad y apoyo a empresas.")
	add("DEBATE-01-Primer_Debate", "",
		map[string]int{"seguridad": 5},
		"Debate entre todos los candidatos sobre seguridad.")

	byCandidate := make(map[string][]string, len(candidates))
	for _, c := range candidates {
		byCandidate[c.Code] = []string{}
	}
	bySource := make(map[string][]string)
	global := make(map[string]int)
	for _, doc := range documents {
		if code, ok := doc.Owner(); ok {
			byCandidate[code] = append(byCandidate[code], doc.ID)
		}
		bySource[string(doc.Source)] = append(bySource[string(doc.Source)], doc.ID)
		for topic, count := range doc.Topics {
			global[topic] += count
		}
	}

	meta := core.Metadata{
		Version:         "1.0.0",
		Created:         time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
		TotalDocuments:  len(documents),
		TotalCandidates: len(candidates),
	}
	c := core.NewCorpus(meta, candidates, documents, byCandidate, bySource, SortedTopics(global))
	return c, texts
}

