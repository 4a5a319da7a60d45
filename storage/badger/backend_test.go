package badger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/voto/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend()
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "cache")
	backend, err := OpenBackend(WithDir(tmpDir))
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
	info, err := os.Stat(tmpDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpenBackend_FileInsteadOfDirectory(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0o644))

	backend, err := OpenBackend(WithDir(tmpFile))
	assert.Error(t, err)
	assert.Nil(t, backend)
}

func TestOpenBackend_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	backend, err := OpenBackend(WithLogger(logger), WithLogger(nil))
	require.NoError(t, err)
	defer backend.Close()

	assert.Contains(t, buf.String(), "component=badger")
	assert.Contains(t, buf.String(), "in_memory=true")
}

func TestOpenBackend_Reopen(t *testing.T) {
	dir := t.TempDir()
	repo, backend, err := OpenTextRepository(WithDir(dir))
	require.NoError(t, err)
	require.NoError(t, repo.PutText(context.Background(), "a.txt", "hola"))
	require.NoError(t, repo.Close())
	require.NoError(t, backend.Close())

	repo, backend, err = OpenTextRepository(WithDir(dir))
	require.NoError(t, err)
	defer backend.Close()
	text, err := repo.GetText(context.Background(), "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hola", text)
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend()
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestWithTx_ClosedBackend(t *testing.T) {
	backend, err := OpenBackend()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	err = backend.WithTx(func(tx *badger.Txn) error { return nil }, false)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestWithTx_RollbackOnError(t *testing.T) {
	backend, err := OpenBackend()
	require.NoError(t, err)
	defer backend.Close()

	key := makeTextKey("rollback.txt")
	err = backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(key, []byte("value")); err != nil {
			return err
		}
		return assert.AnError
	}, true)
	assert.ErrorIs(t, err, assert.AnError)

	err = backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(key)
		return err
	}, false)
	assert.ErrorIs(t, err, badger.ErrKeyNotFound)
}

func TestMakeTextKey(t *testing.T) {
	a := makeTextKey("TSE-01-PLN-Alvaro.txt")
	b := makeTextKey("TSE-01-PLN-Alvaro.txt")
	c := makeTextKey("TSE-02-PUSC-Hidalgo.txt")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, len(textKeyPrefix())+8)
	assert.Equal(t, textKeyPrefix(), a[:len(textKeyPrefix())])
}
