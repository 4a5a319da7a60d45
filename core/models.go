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
	"cmp"
	"encoding/binary"
	"slices"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a deterministic 64-bit identifier derived from content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// SourceType labels the show or format a transcript came from.
type SourceType string

const (
	SourceOfficialInterview SourceType = "TSE (Entrevista Oficial)"
	SourceDebate            SourceType = "Debate TSE"
	SourceNoPasaNada        SourceType = "No Pasa Nada / Apolítico"
	SourceSepamosSerLibres  SourceType = "Sepamos Ser Libres"
	SourceEnProfundidad     SourceType = "En Profundidad (Teletica)"
	SourceHablandoClaro     SourceType = "Hablando Claro (Columbia)"
	SourceOther             SourceType = "Otro"
)

// OfficialInterviewPrefix marks documents from the official TSE interview series.
const OfficialInterviewPrefix = "TSE-"

// sourcePrefixes is checked in order; the first matching prefix wins.
var sourcePrefixes = []struct {
	prefix string
	source SourceType
}{
	{OfficialInterviewPrefix, SourceOfficialInterview},
	{"DEBATE-", SourceDebate},
	{"NPN-", SourceNoPasaNada},
	{"SSL-", SourceSepamosSerLibres},
	{"EP-", SourceEnProfundidad},
	{"HC-", SourceHablandoClaro},
}

// SourceTypeFromFilename derives the source label from a transcript filename prefix.
func SourceTypeFromFilename(filename string) SourceType {
	for _, sp := range sourcePrefixes {
		if strings.HasPrefix(filename, sp.prefix) {
			return sp.source
		}
	}
	return SourceOther
}

// Candidate is immutable reference data for a presidential candidate.
type Candidate struct {
	Code  string `json:"siglas"`
	Name  string `json:"nombre"`
	Party string `json:"partido"`
}

// NameTokens returns the whitespace-delimited parts of the candidate's full name.
func (c Candidate) NameTokens() []string {
	return strings.Fields(c.Name)
}

// ShortName returns the first two name tokens, e.g. "Álvaro Ramos".
func (c Candidate) ShortName() string {
	tokens := c.NameTokens()
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	return strings.Join(tokens, " ")
}

// Document is one indexed transcript.
type Document struct {
	ID            string         `json:"id"`
	Filename      string         `json:"archivo"`
	CandidateCode *string        `json:"candidato_siglas"` // nil for debates and multi-candidate sources
	CandidateName *string        `json:"candidato_nombre"`
	Source        SourceType     `json:"fuente"`
	Length        int            `json:"longitud"` // bytes of raw text
	Words         int            `json:"palabras"`
	Topics        map[string]int `json:"temas"`
	Summary       string         `json:"resumen"`
}

// Owner returns the owning candidate code, if the document has one.
func (d *Document) Owner() (string, bool) {
	if d.CandidateCode == nil || *d.CandidateCode == "" {
		return "", false
	}
	return *d.CandidateCode, true
}

// TopicCount returns the mention count for a topic, zero when absent.
func (d *Document) TopicCount(topic string) int {
	return d.Topics[topic]
}

// TopicCount pairs a topic keyword with a mention total.
type TopicCount struct {
	Topic string
	Count int
}

// SortTopicCounts orders counts descending, ties by topic name.
func SortTopicCounts(counts []TopicCount) {
	slices.SortStableFunc(counts, func(a, b TopicCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Topic, b.Topic)
	})
}

// Metadata describes how and when a corpus was built.
type Metadata struct {
	Version         string    `json:"version"`
	Created         time.Time `json:"created"`
	TotalDocuments  int       `json:"totalDocuments"`
	TotalCandidates int       `json:"totalCandidates"`
}

// Corpus is the read-only knowledge base: candidates, documents and their indices.
// Build it once and share it by pointer; nothing in this module mutates a loaded corpus.
type Corpus struct {
	Metadata Metadata

	// Candidates in declaration order.
	Candidates []Candidate

	// Documents in build order.
	Documents []*Document

	// ByCandidate maps a candidate code to its document IDs in build order.
	ByCandidate map[string][]string

	// BySource maps a source label to document IDs.
	BySource map[string][]string

	// GlobalTopics holds corpus-wide totals sorted descending by count.
	GlobalTopics []TopicCount

	candidateIndex map[string]int
	documentIndex  map[string]*Document
}

// NewCorpus assembles a Corpus and builds its lookup tables.
func NewCorpus(meta Metadata, candidates []Candidate, documents []*Document,
	byCandidate, bySource map[string][]string, globalTopics []TopicCount) *Corpus {
	c := &Corpus{
		Metadata:     meta,
		Candidates:   candidates,
		Documents:    documents,
		ByCandidate:  byCandidate,
		BySource:     bySource,
		GlobalTopics: globalTopics,
	}
	if c.ByCandidate == nil {
		c.ByCandidate = make(map[string][]string)
	}
	if c.BySource == nil {
		c.BySource = make(map[string][]string)
	}
	c.reindex()
	return c
}

func (c *Corpus) reindex() {
	c.candidateIndex = make(map[string]int, len(c.Candidates))
	for i, cand := range c.Candidates {
		c.candidateIndex[cand.Code] = i
	}
	c.documentIndex = make(map[string]*Document, len(c.Documents))
	for _, doc := range c.Documents {
		if doc != nil {
			c.documentIndex[doc.ID] = doc
		}
	}
}

// Candidate looks up a candidate by exact code.
func (c *Corpus) Candidate(code string) (Candidate, bool) {
	i, ok := c.candidateIndex[code]
	if !ok {
		return Candidate{}, false
	}
	return c.Candidates[i], true
}

// LookupCandidate resolves a user-supplied code case-insensitively.
func (c *Corpus) LookupCandidate(code string) (Candidate, error) {
	cand, ok := c.Candidate(strings.ToUpper(strings.TrimSpace(code)))
	if !ok {
		return Candidate{}, &UnknownCodeError{Code: code, Err: ErrUnknownCandidate}
	}
	return cand, nil
}

// Document looks up a document by ID.
func (c *Corpus) Document(id string) (*Document, bool) {
	doc, ok := c.documentIndex[id]
	return doc, ok
}

// DocumentIDs returns the candidate's document IDs in build order.
func (c *Corpus) DocumentIDs(code string) []string {
	return c.ByCandidate[code]
}

// CandidateDocuments resolves the candidate's indexed documents, skipping unknown IDs.
func (c *Corpus) CandidateDocuments(code string) []*Document {
	ids := c.ByCandidate[code]
	docs := make([]*Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := c.documentIndex[id]; ok {
			docs = append(docs, doc)
		}
	}
	return docs
}

// TopTopics returns at most n global topic totals.
func (c *Corpus) TopTopics(n int) []TopicCount {
	if n < 0 || n > len(c.GlobalTopics) {
		n = len(c.GlobalTopics)
	}
	return c.GlobalTopics[:n]
}
