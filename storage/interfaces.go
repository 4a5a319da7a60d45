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


package storage

import (
	"context"
)

// Repository is the base interface shared by all repositories.
type Repository interface {
	// Close releases resources held by the repository.
	// It does not close the shared backend.
	Close() error
}

// TextRepository caches full transcript texts keyed by transcript filename.
type TextRepository interface {
	Repository

	// GetText retrieves the cached text for a filename.
	// Returns ErrNotFound if the text has not been cached.
	GetText(ctx context.Context, filename string) (string, error)

	// PutText stores or replaces the text for a filename.
	PutText(ctx context.Context, filename, text string) error

	// HasText reports whether text for the filename is cached.
	HasText(ctx context.Context, filename string) (bool, error)

	// DeleteText removes the cached text for a filename.
	// Returns ErrNotFound if nothing was cached.
	DeleteText(ctx context.Context, filename string) error

	// CountTexts returns the number of cached texts.
	CountTexts(ctx context.Context) (int, error)
}
