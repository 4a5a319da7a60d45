package corpus

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/voto/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKB = `{
  "metadata": {"version": "1.0.0", "created": "2026-01-10T12:00:00.000Z", "totalDocuments": 2, "totalCandidates": 3},
  "candidatos": {
    "PUSC": {"nombre": "Juan Carlos Hidalgo Bogantes", "partido": "Partido Unidad Social Cristiana", "siglas": "PUSC"},
    "PLN": {"nombre": "Álvaro Ramos Chaves", "partido": "Partido Liberación Nacional", "siglas": "PLN"},
    "FA": {"nombre": "Ariel Robles Barrantes", "partido": "Frente Amplio"}
  },
  "documentos": [
    {"id": "TSE-01-PLN-Alvaro_Ramos", "archivo": "TSE-01-PLN-Alvaro_Ramos.txt", "candidato_siglas": "PLN",
     "candidato_nombre": "Álvaro Ramos Chaves", "fuente": "TSE (Entrevista Oficial)", "longitud": 120,
     "palabras": 20, "temas": {"salud": 4, "CCSS": 2}, "resumen": "Hola..."},
    {"id": "DEBATE-01", "archivo": "DEBATE-01.txt", "candidato_siglas": null, "candidato_nombre": null,
     "fuente": "Debate TSE", "longitud": 50, "palabras": 9, "temas": {"salud": 1}, "resumen": "..."}
  ],
  "indice_por_candidato": {"PUSC": [], "PLN": ["TSE-01-PLN-Alvaro_Ramos"], "FA": []},
  "indice_por_fuente": {"TSE (Entrevista Oficial)": ["TSE-01-PLN-Alvaro_Ramos"], "Debate TSE": ["DEBATE-01"]},
  "temas_globales": {"salud": 5, "CCSS": 2}
}`

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(sampleKB))
	require.NoError(t, err)

	t.Run("candidates keep declaration order", func(t *testing.T) {
		codes := make([]string, len(c.Candidates))
		for i, cand := range c.Candidates {
			codes[i] = cand.Code
		}
		assert.Equal(t, []string{"PUSC", "PLN", "FA"}, codes)
	})

	t.Run("code falls back to the object key", func(t *testing.T) {
		fa, ok := c.Candidate("FA")
		require.True(t, ok)
		assert.Equal(t, "Frente Amplio", fa.Party)
	})

	t.Run("global topics keep file order", func(t *testing.T) {
		assert.Equal(t, []core.TopicCount{{Topic: "salud", Count: 5}, {Topic: "CCSS", Count: 2}}, c.GlobalTopics)
	})

	t.Run("null owner", func(t *testing.T) {
		doc, ok := c.Document("DEBATE-01")
		require.True(t, ok)
		_, owned := doc.Owner()
		assert.False(t, owned)
	})

	t.Run("metadata", func(t *testing.T) {
		assert.Equal(t, "1.0.0", c.Metadata.Version)
		assert.Equal(t, 2026, c.Metadata.Created.Year())
	})
}

func TestDecode_Invalid(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"candidatos": [`))
		assert.ErrorIs(t, err, ErrInvalidCorpusFile)
	})

	t.Run("candidates must be an object", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"candidatos": ["PLN"]}`))
		assert.ErrorIs(t, err, ErrInvalidCorpusFile)
	})

	t.Run("null document", func(t *testing.T) {
		var err error
		assert.NotPanics(t, func() {
			_, err = Decode(strings.NewReader(`{"candidatos": {}, "documentos": [null]}`))
		})
		assert.ErrorIs(t, err, ErrInvalidCorpusFile)
	})

	t.Run("dangling index entry", func(t *testing.T) {
		bad := strings.Replace(sampleKB, `"PLN": ["TSE-01-PLN-Alvaro_Ramos"]`, `"PLN": ["NOPE"]`, 1)
		_, err := Decode(strings.NewReader(bad))
		assert.ErrorIs(t, err, core.ErrInvalidCorpus)
		assert.ErrorIs(t, err, core.ErrDanglingDocument)
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original, _ := NewTestCorpus()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, original))
	assert.Contains(t, buf.String(), `"candidatos": {`)
	assert.Contains(t, buf.String(), "Álvaro")

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, original.Candidates, decoded.Candidates)
	assert.Equal(t, original.GlobalTopics, decoded.GlobalTopics)
	assert.Equal(t, original.ByCandidate, decoded.ByCandidate)
	assert.Len(t, decoded.Documents, len(original.Documents))
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), DefaultFilename))
		assert.ErrorIs(t, err, ErrCorpusMissing)
	})

	t.Run("save then load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", DefaultFilename)
		original, _ := NewTestCorpus()
		require.NoError(t, Save(path, original))

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, original.Candidates, loaded.Candidates)
	})

	t.Run("from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultFilename)
		require.NoError(t, os.WriteFile(path, []byte(sampleKB), 0o644))
		c, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, c.Documents, 2)
	})
}
