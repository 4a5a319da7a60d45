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


package ingestion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/corpus"
)

// KnowledgeBaseVersion is written into the metadata of every built corpus.
const KnowledgeBaseVersion = "1.0.0"

// Builder assembles a corpus from a directory of processed transcripts.
type Builder struct {
	source     corpus.TextSource
	candidates []core.Candidate
	pool       *ants.Pool
	progress   io.Writer
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithPoolSize sets the worker pool size for concurrent analysis.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}
		if b.pool != nil {
			b.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// WithCandidates replaces the default candidate roster.
func WithCandidates(candidates ...core.Candidate) Option {
	return func(b *Builder) error {
		if len(candidates) == 0 {
			return ErrNoCandidates
		}
		b.candidates = slices.Clone(candidates)
		return nil
	}
}

// WithProgress reports progress on w while building.
func WithProgress(w io.Writer) Option {
	return func(b *Builder) error {
		b.progress = w
		return nil
	}
}

// WithClock sets the function used to stamp the metadata creation time.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) error {
		if now != nil {
			b.now = now
		}
		return nil
	}
}

// NewBuilder creates a knowledge-base builder over source.
func NewBuilder(source corpus.TextSource, opts ...Option) (*Builder, error) {
	if source == nil {
		return nil, ErrTextSourceRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		source:     source,
		candidates: DefaultCandidates(),
		pool:       pool,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if optErr := opt(b); optErr != nil {
			b.Release()
			return nil, optErr
		}
	}
	b.logger = b.logger.With("component", "kb-builder")
	return b, nil
}

type analysis struct {
	doc *core.Document
	err error
}

// Build reads every transcript and returns the assembled, validated corpus.
// Documents keep filename order regardless of which worker analyzed them.
func (b *Builder) Build(ctx context.Context) (*core.Corpus, error) {
	names, err := b.source.ListTexts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing transcripts: %w", err)
	}
	b.logger.Info("building knowledge base", "documents", len(names))

	known := make(map[string]*core.Candidate, len(b.candidates))
	for i := range b.candidates {
		known[b.candidates[i].Code] = &b.candidates[i]
	}
	isKnown := func(code string) bool {
		_, ok := known[code]
		return ok
	}

	var tracker *ProgressTracker
	if b.progress != nil {
		tracker = NewProgressTracker(b.progress, len(names), 1)
		tracker.Start()
	}

	results := make([]analysis, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			text, err := b.source.LoadText(ctx, name)
			if err != nil {
				results[i] = analysis{err: fmt.Errorf("reading %s: %w", name, err)}
				return
			}
			var owner *core.Candidate
			if code, ok := CandidateFromFilename(name, isKnown); ok {
				owner = known[code]
			}
			results[i] = analysis{doc: Analyze(name, text, owner)}
			if tracker != nil {
				tracker.Done(name)
			}
		}
		if err := b.pool.Submit(task); err != nil {
			wg.Done()
			results[i] = analysis{err: err}
		}
	}
	wg.Wait()
	if tracker != nil {
		tracker.Finish()
	}

	documents := make([]*core.Document, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		documents = append(documents, r.doc)
		b.logger.Debug("document analyzed", "id", r.doc.ID, "source", r.doc.Source, "topics", len(r.doc.Topics))
	}

	c := b.assemble(documents)
	if err := core.ValidateCorpus(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (b *Builder) assemble(documents []*core.Document) *core.Corpus {
	byCandidate := make(map[string][]string, len(b.candidates))
	for _, cand := range b.candidates {
		byCandidate[cand.Code] = []string{}
	}
	bySource := make(map[string][]string)
	global := make(map[string]int)

	for _, doc := range documents {
		if code, ok := doc.Owner(); ok {
			byCandidate[code] = append(byCandidate[code], doc.ID)
		}
		bySource[string(doc.Source)] = append(bySource[string(doc.Source)], doc.ID)
		for topic, count := range doc.Topics {
			global[topic] += count
		}
	}

	meta := core.Metadata{
		Version:         KnowledgeBaseVersion,
		Created:         b.now().UTC(),
		TotalDocuments:  len(documents),
		TotalCandidates: len(b.candidates),
	}
	return core.NewCorpus(meta, slices.Clone(b.candidates), documents, byCandidate, bySource,
		corpus.SortedTopics(global))
}

// Release releases the worker pool.
// The builder should not be used after calling Release.
func (b *Builder) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}
