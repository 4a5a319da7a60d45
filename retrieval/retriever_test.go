package retrieval

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRetriever(t *testing.T, opts ...Option) (*Retriever, corpus.MapTextLoader) {
	t.Helper()
	c, texts := corpus.NewTestCorpus()
	r, err := NewRetriever(c, texts, opts...)
	require.NoError(t, err)
	return r, texts
}

func docIDs(chunks []Chunk) []string {
	ids := make([]string, len(chunks))
	for i, c := range chunks {
		ids[i] = c.DocumentID
	}
	return ids
}

func TestNewRetriever_Required(t *testing.T) {
	c, texts := corpus.NewTestCorpus()

	_, err := NewRetriever(nil, texts)
	assert.ErrorIs(t, err, ErrCorpusRequired)

	_, err = NewRetriever(c, nil)
	assert.ErrorIs(t, err, ErrTextLoaderRequired)
}

func TestRetrieve_CandidateMatch(t *testing.T) {
	r, _ := newTestRetriever(t)
	ctx := context.Background()

	t.Run("code in any case", func(t *testing.T) {
		chunks, err := r.Retrieve(ctx, "¿Qué propone el pUsC sobre empleo?")
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, Chunk{
			CandidateName: "Juan Carlos Hidalgo Bogantes",
			CandidateCode: "PUSC",
			SourceLabel:   string(core.SourceOfficialInterview),
			DocumentID:    "TSE-02-PUSC-Juan_Carlos_Hidalgo",
			Text:          "Educación, educación y más educación. El empleo crece con la economía.",
		}, chunks[0])
	})

	t.Run("first two documents in index order", func(t *testing.T) {
		chunks, err := r.Retrieve(ctx, "qué dijo álvaro")
		require.NoError(t, err)
		assert.Equal(t, []string{"TSE-01-PLN-Alvaro_Ramos", "NPN-PLN-Alvaro_Ramos"}, docIDs(chunks))
	})

	t.Run("any single name token matches", func(t *testing.T) {
		chunks, err := r.Retrieve(ctx, "conozco a un tal carlos")
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, "PUSC", chunks[0].CandidateCode)
	})

	t.Run("code inside another word matches", func(t *testing.T) {
		chunks, err := r.Retrieve(ctx, "políticas de familia")
		require.NoError(t, err)
		assert.Equal(t, []string{"SSL-FA-Ariel_Robles"}, docIDs(chunks))
	})

	t.Run("several candidates in declaration order", func(t *testing.T) {
		chunks, err := r.Retrieve(ctx, "compará a Dobles con Hidalgo")
		require.NoError(t, err)
		assert.Equal(t, []string{"TSE-02-PUSC-Juan_Carlos_Hidalgo", "TSE-03-CAC-Claudia_Dobles"}, docIDs(chunks))
	})

	t.Run("candidate with no documents falls back", func(t *testing.T) {
		chunks, err := r.Retrieve(ctx, "y Alvarado?")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"TSE-01-PLN-Alvaro_Ramos",
			"TSE-02-PUSC-Juan_Carlos_Hidalgo",
			"TSE-03-CAC-Claudia_Dobles",
		}, docIDs(chunks))
	})
}

func TestRetrieve_Fallback(t *testing.T) {
	ctx := context.Background()

	t.Run("default three candidates", func(t *testing.T) {
		r, _ := newTestRetriever(t)
		chunks, err := r.Retrieve(ctx, "hola mundo")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"TSE-01-PLN-Alvaro_Ramos",
			"TSE-02-PUSC-Juan_Carlos_Hidalgo",
			"TSE-03-CAC-Claudia_Dobles",
		}, docIDs(chunks))
	})

	t.Run("candidates without official interview are skipped", func(t *testing.T) {
		r, _ := newTestRetriever(t, WithMaxFallbackDocs(5))
		chunks, err := r.Retrieve(ctx, "hola mundo")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"TSE-01-PLN-Alvaro_Ramos",
			"TSE-02-PUSC-Juan_Carlos_Hidalgo",
			"TSE-03-CAC-Claudia_Dobles",
			"TSE-05-PLP-Eliecer_Feinzaig",
		}, docIDs(chunks))
	})

	t.Run("zero fallback docs", func(t *testing.T) {
		r, _ := newTestRetriever(t, WithMaxFallbackDocs(0))
		chunks, err := r.Retrieve(ctx, "hola mundo")
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})
}

func TestRetrieve_Truncation(t *testing.T) {
	r, texts := newTestRetriever(t, WithMaxFallbackDocs(5))
	long := strings.Repeat("ñ", 20000)
	for name := range texts {
		texts[name] = long
	}
	ctx := context.Background()

	matched, err := r.Retrieve(ctx, "PLN")
	require.NoError(t, err)
	require.NotEmpty(t, matched)
	for _, c := range matched {
		assert.Equal(t, MatchTextLimit, utf8.RuneCountInString(c.Text))
	}

	fallback, err := r.Retrieve(ctx, "hola mundo")
	require.NoError(t, err)
	require.NotEmpty(t, fallback)
	for _, c := range fallback {
		assert.Equal(t, FallbackTextLimit, utf8.RuneCountInString(c.Text))
	}
}

func TestRetrieve_MissingText(t *testing.T) {
	r, texts := newTestRetriever(t)
	delete(texts, "TSE-01-PLN-Alvaro_Ramos.txt")

	chunks, err := r.Retrieve(context.Background(), "PLN")
	require.NoError(t, err)
	assert.Equal(t, []string{"NPN-PLN-Alvaro_Ramos"}, docIDs(chunks))
}

type failingLoader struct{}

func (failingLoader) LoadText(context.Context, string) (string, error) {
	return "", errors.New("disk on fire")
}

func TestRetrieve_LoaderFailure(t *testing.T) {
	c, _ := corpus.NewTestCorpus()
	r, err := NewRetriever(c, failingLoader{})
	require.NoError(t, err)

	_, err = r.Retrieve(context.Background(), "PLN")
	assert.EqualError(t, err, "disk on fire")
}

func TestRetrieve_Deterministic(t *testing.T) {
	r, _ := newTestRetriever(t)
	ctx := context.Background()
	for _, q := range []string{"PLN y PUSC", "hola", "Ariel Robles"} {
		first, err := r.Retrieve(ctx, q)
		require.NoError(t, err)
		second, err := r.Retrieve(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, first, second, q)
	}
}

type recordingMonitor struct {
	noopMonitor
	matched  []string
	skipped  []string
	fallback []string
	emitted  int
	finished int
}

func (m *recordingMonitor) CandidateMatched(c core.Candidate, on string) {
	m.matched = append(m.matched, c.Code+":"+on)
}

func (m *recordingMonitor) DocumentSkipped(id string, _ error) {
	m.skipped = append(m.skipped, id)
}

func (m *recordingMonitor) FallbackStarted(codes []string) {
	m.fallback = codes
}

func (m *recordingMonitor) ChunkEmitted(Chunk) { m.emitted++ }
func (m *recordingMonitor) Finish([]Chunk)     { m.finished++ }

func TestRetrieve_Monitor(t *testing.T) {
	monitor := &recordingMonitor{}
	r, texts := newTestRetriever(t, WithMonitor(monitor))
	delete(texts, "NPN-PLN-Alvaro_Ramos.txt")

	_, err := r.Retrieve(context.Background(), "Ramos")
	require.NoError(t, err)
	assert.Equal(t, []string{"PLN:Ramos"}, monitor.matched)
	assert.Equal(t, []string{"NPN-PLN-Alvaro_Ramos"}, monitor.skipped)
	assert.Nil(t, monitor.fallback)
	assert.Equal(t, 1, monitor.emitted)
	assert.Equal(t, 1, monitor.finished)

	_, err = r.Retrieve(context.Background(), "nadie")
	require.NoError(t, err)
	assert.Equal(t, []string{"PLN", "PUSC", "CAC"}, monitor.fallback)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "áé", truncate("áéí", 2))
	assert.Equal(t, "", truncate("áéí", 0))
}
