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


package core

import (
	"errors"
	"fmt"
)

// Domain validation errors
var (
	// ErrInvalidCorpus indicates the corpus violates an integrity invariant.
	ErrInvalidCorpus = errors.New("invalid corpus")

	// ErrInvalidCandidate indicates a Candidate failed validation.
	ErrInvalidCandidate = errors.New("invalid candidate")

	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEmptyCode indicates a candidate code is empty.
	ErrEmptyCode = errors.New("candidate code cannot be empty")

	// ErrEmptyDocumentID indicates a document ID is empty.
	ErrEmptyDocumentID = errors.New("document id cannot be empty")

	// ErrDuplicateCandidate indicates two candidates share a code.
	ErrDuplicateCandidate = errors.New("duplicate candidate code")

	// ErrDuplicateDocument indicates two documents share an ID.
	ErrDuplicateDocument = errors.New("duplicate document id")

	// ErrDanglingDocument indicates an index references a document that does not exist.
	ErrDanglingDocument = errors.New("index references unknown document")

	// ErrUnknownCandidate indicates a candidate code is not in the corpus.
	ErrUnknownCandidate = errors.New("unknown candidate")

	// ErrNegativeCount indicates a topic count below zero.
	ErrNegativeCount = errors.New("topic count cannot be negative")
)

// UnknownCodeError reports a user-supplied code that could not be resolved.
type UnknownCodeError struct {
	Code string
	Err  error
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.Code)
}

func (e *UnknownCodeError) Unwrap() error {
	return e.Err
}
