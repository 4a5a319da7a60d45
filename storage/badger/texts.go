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


package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/voto/storage"
)

// TextRepository implements storage.TextRepository on a Badger backend.
type TextRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.TextRepository = (*TextRepository)(nil)

// NewTextRepository creates a transcript text repository on the given backend.
// The backend is shared; closing the repository leaves it open.
func NewTextRepository(backend *Backend) (storage.TextRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &TextRepository{
		backend: backend,
		logger:  slog.Default().With("component", "text-repository"),
	}, nil
}

// Close releases repository resources. The backend must be closed separately.
func (r *TextRepository) Close() error {
	return nil
}

// GetText retrieves the cached text for a filename.
func (r *TextRepository) GetText(ctx context.Context, filename string) (string, error) {
	var text string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeTextKey(filename))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			stored, body, err := storage.UnmarshalText(val)
			if err != nil {
				return err
			}
			if stored != filename {
				return fmt.Errorf("%w: %q holds %q", storage.ErrKeyCollision, filename, stored)
			}
			text = body
			return nil
		})
	}, false)
	if err != nil {
		return "", err
	}
	return text, nil
}

// PutText stores or replaces the text for a filename.
func (r *TextRepository) PutText(ctx context.Context, filename, text string) error {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		return tx.Set(makeTextKey(filename), storage.MarshalText(filename, text))
	}, true)
	if err != nil {
		r.logger.Error("error caching transcript text", "filename", filename, "err", err)
		return err
	}
	r.logger.Debug("cached transcript text", "filename", filename, "bytes", len(text))
	return nil
}

// HasText reports whether text for the filename is cached.
func (r *TextRepository) HasText(ctx context.Context, filename string) (bool, error) {
	found := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeTextKey(filename))
		if err == nil {
			found = true
			return nil
		}
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	}, false)
	return found, err
}

// DeleteText removes the cached text for a filename.
func (r *TextRepository) DeleteText(ctx context.Context, filename string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeTextKey(filename)
		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return tx.Delete(key)
	}, true)
}

// CountTexts returns the number of cached texts.
func (r *TextRepository) CountTexts(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = textKeyPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			count++
		}
		return nil
	}, false)
	return count, err
}
