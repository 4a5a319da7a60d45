package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestIDFromContent(t *testing.T) {
	a := IDFromContent("TSE-01-PLN-Alvaro_Ramos.txt")
	b := IDFromContent("TSE-01-PLN-Alvaro_Ramos.txt")
	c := IDFromContent("TSE-02-PUSC-Juan_Carlos_Hidalgo.txt")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSourceTypeFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     SourceType
	}{
		{"TSE-01-PJSC-Walter_Hernandez.txt", SourceOfficialInterview},
		{"DEBATE-01-Primer_Debate.txt", SourceDebate},
		{"NPN-PLN-Alvaro_Ramos.txt", SourceNoPasaNada},
		{"SSL-PLP-Eliecer_Feinzaig.txt", SourceSepamosSerLibres},
		{"EP-CAC-Claudia_Dobles.txt", SourceEnProfundidad},
		{"HC-FA-Ariel_Robles.txt", SourceHablandoClaro},
		{"entrevista-suelta.txt", SourceOther},
		{"tse-lowercase.txt", SourceOther},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, SourceTypeFromFilename(tt.filename))
		})
	}
}

func TestCandidateNames(t *testing.T) {
	c := Candidate{Code: "PUSC", Name: "Juan Carlos  Hidalgo Bogantes", Party: "Partido Unidad Social Cristiana"}

	assert.Equal(t, []string{"Juan", "Carlos", "Hidalgo", "Bogantes"}, c.NameTokens())
	assert.Equal(t, "Juan Carlos", c.ShortName())

	single := Candidate{Code: "X", Name: "Solo"}
	assert.Equal(t, "Solo", single.ShortName())
}

func TestDocumentOwner(t *testing.T) {
	t.Run("with owner", func(t *testing.T) {
		doc := &Document{ID: "TSE-01-PLN", CandidateCode: strPtr("PLN")}
		code, ok := doc.Owner()
		assert.True(t, ok)
		assert.Equal(t, "PLN", code)
	})

	t.Run("debate without owner", func(t *testing.T) {
		doc := &Document{ID: "DEBATE-01"}
		_, ok := doc.Owner()
		assert.False(t, ok)
	})

	t.Run("missing topic defaults to zero", func(t *testing.T) {
		doc := &Document{ID: "x", Topics: map[string]int{"salud": 3}}
		assert.Equal(t, 3, doc.TopicCount("salud"))
		assert.Equal(t, 0, doc.TopicCount("agua"))
	})
}

func TestCorpusLookups(t *testing.T) {
	docs := []*Document{
		{ID: "TSE-01-PLN", CandidateCode: strPtr("PLN")},
		{ID: "NPN-PLN", CandidateCode: strPtr("PLN")},
	}
	c := NewCorpus(Metadata{}, []Candidate{{Code: "PLN", Name: "Álvaro Ramos Chaves"}}, docs,
		map[string][]string{"PLN": {"TSE-01-PLN", "NPN-PLN", "GONE"}}, nil,
		[]TopicCount{{"salud", 10}, {"agua", 4}, {"campo", 1}})

	t.Run("candidate lookup is case-insensitive", func(t *testing.T) {
		cand, err := c.LookupCandidate(" pln ")
		require.NoError(t, err)
		assert.Equal(t, "PLN", cand.Code)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := c.LookupCandidate("XYZ")
		assert.ErrorIs(t, err, ErrUnknownCandidate)
		var codeErr *UnknownCodeError
		require.ErrorAs(t, err, &codeErr)
		assert.Equal(t, "XYZ", codeErr.Code)
	})

	t.Run("candidate documents skip unknown ids", func(t *testing.T) {
		got := c.CandidateDocuments("PLN")
		require.Len(t, got, 2)
		assert.Equal(t, "TSE-01-PLN", got[0].ID)
		assert.Equal(t, "NPN-PLN", got[1].ID)
	})

	t.Run("top topics", func(t *testing.T) {
		assert.Len(t, c.TopTopics(2), 2)
		assert.Len(t, c.TopTopics(10), 3)
		assert.Len(t, c.TopTopics(-1), 3)
	})
}

func TestSortTopicCounts(t *testing.T) {
	counts := []TopicCount{{"b", 1}, {"a", 1}, {"c", 5}}
	SortTopicCounts(counts)
	assert.Equal(t, []TopicCount{{"c", 5}, {"a", 1}, {"b", 1}}, counts)
}
