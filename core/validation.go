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
	"fmt"
)

// ValidateCandidate validates a Candidate according to domain rules.
//
// Validation rules:
//   - Code must not be empty
//
// Name and Party may be empty for placeholder entries.
func ValidateCandidate(c Candidate) error {
	if c.Code == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptyCode)
	}
	return nil
}

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Topic counts must not be negative
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}
	if doc.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocumentID)
	}
	for topic, count := range doc.Topics {
		if count < 0 {
			return fmt.Errorf("%w: %s: %w (%q)", ErrInvalidDocument, doc.ID, ErrNegativeCount, topic)
		}
	}
	return nil
}

// ValidateCorpus checks the integrity invariants of a corpus.
//
// Validation rules:
//   - every candidate and document is individually valid
//   - candidate codes and document IDs are unique
//   - a document's candidate code, if present, names a known candidate
//   - every ID in ByCandidate and BySource names a known document
//   - every key in ByCandidate names a known candidate
func ValidateCorpus(c *Corpus) error {
	if c == nil {
		return fmt.Errorf("%w: corpus is nil", ErrInvalidCorpus)
	}

	codes := make(map[string]struct{}, len(c.Candidates))
	for _, cand := range c.Candidates {
		if err := ValidateCandidate(cand); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCorpus, err)
		}
		if _, dup := codes[cand.Code]; dup {
			return fmt.Errorf("%w: %w: %s", ErrInvalidCorpus, ErrDuplicateCandidate, cand.Code)
		}
		codes[cand.Code] = struct{}{}
	}

	ids := make(map[string]struct{}, len(c.Documents))
	for _, doc := range c.Documents {
		if err := ValidateDocument(doc); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCorpus, err)
		}
		if _, dup := ids[doc.ID]; dup {
			return fmt.Errorf("%w: %w: %s", ErrInvalidCorpus, ErrDuplicateDocument, doc.ID)
		}
		ids[doc.ID] = struct{}{}
		if owner, ok := doc.Owner(); ok {
			if _, known := codes[owner]; !known {
				return fmt.Errorf("%w: document %s: %w: %s", ErrInvalidCorpus, doc.ID, ErrUnknownCandidate, owner)
			}
		}
	}

	for code, docIDs := range c.ByCandidate {
		if _, known := codes[code]; !known {
			return fmt.Errorf("%w: candidate index: %w: %s", ErrInvalidCorpus, ErrUnknownCandidate, code)
		}
		for _, id := range docIDs {
			if _, ok := ids[id]; !ok {
				return fmt.Errorf("%w: candidate index %s: %w: %s", ErrInvalidCorpus, code, ErrDanglingDocument, id)
			}
		}
	}
	for source, docIDs := range c.BySource {
		for _, id := range docIDs {
			if _, ok := ids[id]; !ok {
				return fmt.Errorf("%w: source index %s: %w: %s", ErrInvalidCorpus, source, ErrDanglingDocument, id)
			}
		}
	}
	return nil
}
