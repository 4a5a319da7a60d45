package badger

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/voto/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTextRepo(t *testing.T) (storage.TextRepository, *Backend) {
	t.Helper()
	repo, backend, err := OpenTextRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo, backend
}

func TestNewTextRepository_RequiresBackend(t *testing.T) {
	repo, err := NewTextRepository(nil)
	assert.ErrorIs(t, err, ErrBackendRequired)
	assert.Nil(t, repo)
}

func TestTextRepository_PutGet(t *testing.T) {
	repo, _ := newTestTextRepo(t)
	ctx := context.Background()

	err := repo.PutText(ctx, "TSE-01-PLN-Alvaro.txt", "Hablemos de la Caja y la salud pública")
	require.NoError(t, err)

	text, err := repo.GetText(ctx, "TSE-01-PLN-Alvaro.txt")
	require.NoError(t, err)
	assert.Equal(t, "Hablemos de la Caja y la salud pública", text)

	has, err := repo.HasText(ctx, "TSE-01-PLN-Alvaro.txt")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestTextRepository_Replace(t *testing.T) {
	repo, _ := newTestTextRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PutText(ctx, "doc.txt", "uno"))
	require.NoError(t, repo.PutText(ctx, "doc.txt", "dos"))

	text, err := repo.GetText(ctx, "doc.txt")
	require.NoError(t, err)
	assert.Equal(t, "dos", text)

	count, err := repo.CountTexts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTextRepository_Missing(t *testing.T) {
	repo, _ := newTestTextRepo(t)
	ctx := context.Background()

	_, err := repo.GetText(ctx, "nada.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	has, err := repo.HasText(ctx, "nada.txt")
	require.NoError(t, err)
	assert.False(t, has)

	err = repo.DeleteText(ctx, "nada.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTextRepository_DeleteAndCount(t *testing.T) {
	repo, _ := newTestTextRepo(t)
	ctx := context.Background()

	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		require.NoError(t, repo.PutText(ctx, name, "texto "+name))
	}
	count, err := repo.CountTexts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, repo.DeleteText(ctx, "b.txt"))

	count, err = repo.CountTexts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = repo.GetText(ctx, "b.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTextRepository_DetectsCollision(t *testing.T) {
	repo, backend := newTestTextRepo(t)
	ctx := context.Background()

	// Plant a record under one filename's key that claims to be another file.
	err := backend.WithTx(func(tx *badger.Txn) error {
		return tx.Set(makeTextKey("real.txt"), storage.MarshalText("other.txt", "contenido"))
	}, true)
	require.NoError(t, err)

	_, err = repo.GetText(ctx, "real.txt")
	assert.ErrorIs(t, err, storage.ErrKeyCollision)
}

func TestTextRepository_ClosedBackend(t *testing.T) {
	repo, backend, err := OpenTextRepository()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	_, err = repo.GetText(context.Background(), "a.txt")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
