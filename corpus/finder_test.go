package corpus

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFinder(t *testing.T, source TextSource) *Finder {
	t.Helper()
	f, err := NewFinder(source, WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(f.Release)
	return f
}

func TestFinder_Find(t *testing.T) {
	_, texts := NewTestCorpus()
	f := newTestFinder(t, texts)
	ctx := context.Background()

	t.Run("case insensitive count and order", func(t *testing.T) {
		hits, err := f.Find(ctx, Query{Term: "SALUD"})
		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "TSE-01-PLN-Alvaro_Ramos", hits[0].DocumentID)
		assert.Equal(t, 2, hits[0].Count)
		assert.Equal(t, "NPN-PLN-Alvaro_Ramos", hits[1].DocumentID)
		assert.Equal(t, 1, hits[1].Count)
	})

	t.Run("ties ordered by filename", func(t *testing.T) {
		hits, err := f.Find(ctx, Query{Term: "seguridad"})
		require.NoError(t, err)
		names := make([]string, len(hits))
		for i, h := range hits {
			names[i] = h.Filename
		}
		assert.Equal(t, []string{
			"DEBATE-01-Primer_Debate.txt",
			"NPN-PLN-Alvaro_Ramos.txt",
			"TSE-05-PLP-Eliecer_Feinzaig.txt",
		}, names)
	})

	t.Run("candidate filter", func(t *testing.T) {
		hits, err := f.Find(ctx, Query{Term: "seguridad", CandidateCode: "plp"})
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "TSE-05-PLP-Eliecer_Feinzaig", hits[0].DocumentID)
	})

	t.Run("term is literal", func(t *testing.T) {
		hits, err := f.Find(ctx, Query{Term: "s.lud"})
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("accent folding", func(t *testing.T) {
		hits, err := f.Find(ctx, Query{Term: "educacion"})
		require.NoError(t, err)
		assert.Empty(t, hits)

		hits, err = f.Find(ctx, Query{Term: "educacion", FoldAccents: true})
		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "TSE-02-PUSC-Juan_Carlos_Hidalgo", hits[0].DocumentID)
		assert.Equal(t, 3, hits[0].Count)
	})

	t.Run("no matches", func(t *testing.T) {
		hits, err := f.Find(ctx, Query{Term: "criptomonedas"})
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("empty term", func(t *testing.T) {
		_, err := f.Find(ctx, Query{Term: "  "})
		assert.ErrorIs(t, err, ErrEmptyTerm)
	})
}

func TestFinder_ContextWindow(t *testing.T) {
	prefix := strings.Repeat("á", 150)
	suffix := strings.Repeat("ñ", 150)
	f := newTestFinder(t, MapTextLoader{"doc.txt": prefix + "CCSS" + suffix})

	hits, err := f.Find(context.Background(), Query{Term: "ccss"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, strings.Repeat("á", 100)+"CCSS"+strings.Repeat("ñ", 100), hits[0].Context)
}

func TestNewFinder_RequiresSource(t *testing.T) {
	_, err := NewFinder(nil)
	assert.ErrorIs(t, err, ErrTextLoaderRequired)
}
