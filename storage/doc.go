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


// Package storage provides the storage abstraction layer for voto.
//
// The only persistent-looking state in the tool is a cache of transcript texts.
// Transcripts are read from plain files on demand; the chat assistant asks for the
// same few transcripts on every turn, so loaded texts are kept in a
// TextRepository for the life of the process.
//
// # Constructor Return Type Pattern
//
// Public constructors return the interface:
//
//	repo, err := badger.NewTextRepository(backend)  // returns storage.TextRepository
//
// # Usage
//
// Use an in-memory backend for the CLI and for tests:
//
//	repo, backend, err := badger.OpenTextRepository()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	defer repo.Close()
//
// # Thread Safety
//
// Repository implementations must be safe for concurrent use; the term search
// and the knowledge-base builder read transcripts from a worker pool.
package storage
