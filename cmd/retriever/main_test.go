package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/voto/corpus"
)

func writeTestData(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	c, texts := corpus.NewTestCorpus()
	processed := filepath.Join(dataDir, corpus.ProcessedDir)
	require.NoError(t, os.MkdirAll(processed, 0o755))
	for name, text := range texts {
		require.NoError(t, os.WriteFile(filepath.Join(processed, name), []byte(text), 0o644))
	}
	require.NoError(t, corpus.Save(filepath.Join(dataDir, corpus.DefaultFilename), c))
	return dataDir
}

func TestRetrieverTrace(t *testing.T) {
	dataDir := writeTestData(t)

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		err := newApp(&out).Run(append([]string{"retriever", "--data", dataDir}, args...))
		return out.String(), err
	}

	t.Run("named candidate", func(t *testing.T) {
		out, err := run("¿Qué", "piensa", "Robles?")
		require.NoError(t, err)
		assert.Contains(t, out, "match FA")
		assert.Contains(t, out, "chunk SSL-FA-Ariel_Robles")
		assert.Contains(t, out, "Found 1 excerpts")
	})

	t.Run("fallback", func(t *testing.T) {
		out, err := run("--fallback", "2", "hola")
		require.NoError(t, err)
		assert.Contains(t, out, "falling back to PLN, PUSC\n")
		assert.Contains(t, out, "Found 2 excerpts")
	})

	t.Run("preview truncates", func(t *testing.T) {
		out, err := run("--preview", "5", "Robles")
		require.NoError(t, err)
		assert.Contains(t, out, "La de...")
	})

	t.Run("needs a question", func(t *testing.T) {
		_, err := run()
		assert.Error(t, err)
	})
}
