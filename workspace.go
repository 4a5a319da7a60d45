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


package voto

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/poiesic/voto/ai"
	"github.com/poiesic/voto/ai/llm"
	"github.com/poiesic/voto/chat"
	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/corpus"
	"github.com/poiesic/voto/ingestion"
	"github.com/poiesic/voto/quiz"
	"github.com/poiesic/voto/retrieval"
	"github.com/poiesic/voto/storage"
	"github.com/poiesic/voto/storage/badger"
)

const (
	// DefaultDataDir is the data directory used when none is given.
	DefaultDataDir = "data"

	// TranscriptsDir holds the raw WebVTT subtitles inside the data directory.
	TranscriptsDir = "transcripts"
)

// Workspace is one data directory: the knowledge base, its transcripts and
// the provider configuration. The knowledge base is read on first use.
type Workspace struct {
	dataDir  string
	backend  *badger.Backend
	textRepo storage.TextRepository
	dirTexts *corpus.DirTextLoader
	texts    *corpus.CachingTextLoader
	aiConfig *ai.Config
	base     *slog.Logger
	logger   *slog.Logger

	mu     sync.Mutex
	corpus *core.Corpus
}

// WorkspaceOption configures a Workspace.
type WorkspaceOption func(*workspaceOptions)

type workspaceOptions struct {
	aiConfig *ai.Config
	corpus   *core.Corpus
	logger   *slog.Logger
}

// WithAIConfig sets the provider configuration.
// Default is ai.DefaultConfig(), which has no provider selected.
func WithAIConfig(cfg *ai.Config) WorkspaceOption {
	return func(o *workspaceOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithCorpus uses an already loaded knowledge base instead of reading it
// from the data directory.
func WithCorpus(c *core.Corpus) WorkspaceOption {
	return func(o *workspaceOptions) {
		o.corpus = c
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) WorkspaceOption {
	return func(o *workspaceOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// OpenWorkspace prepares the workspace rooted at dataDir. Nothing under
// dataDir has to exist yet; the transcript cache lives in memory.
func OpenWorkspace(dataDir string, opts ...WorkspaceOption) (*Workspace, error) {
	options := &workspaceOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	dirTexts, err := corpus.NewDirTextLoader(filepath.Join(dataDir, corpus.ProcessedDir))
	if err != nil {
		return nil, err
	}

	textRepo, backend, err := badger.OpenTextRepository(badger.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	texts, err := corpus.NewCachingTextLoader(dirTexts, textRepo, corpus.WithLogger(options.logger))
	if err != nil {
		textRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Workspace{
		dataDir:  dataDir,
		backend:  backend,
		textRepo: textRepo,
		dirTexts: dirTexts,
		texts:    texts,
		aiConfig: options.aiConfig,
		base:     options.logger,
		logger:   options.logger.With("component", "workspace"),
		corpus:   options.corpus,
	}, nil
}

// Close releases the transcript cache.
func (w *Workspace) Close() error {
	if n, err := w.texts.Cached(context.Background()); err == nil {
		w.logger.Debug("closing text cache", "texts", n)
	}
	if err := w.textRepo.Close(); err != nil {
		w.logger.Error("error closing text repository", "err", err)
		return err
	}
	if err := w.backend.Close(); err != nil {
		w.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// DataDir is the directory holding the knowledge base and transcripts.
func (w *Workspace) DataDir() string {
	return w.dataDir
}

// CorpusPath is where the knowledge base is read from and written to.
func (w *Workspace) CorpusPath() string {
	return filepath.Join(w.dataDir, corpus.DefaultFilename)
}

// ProcessedDir holds the plain-text transcripts, one .txt per document.
func (w *Workspace) ProcessedDir() string {
	return w.dirTexts.Dir()
}

// TranscriptsDir holds the downloaded .vtt subtitles read by the processor.
func (w *Workspace) TranscriptsDir() string {
	return filepath.Join(w.dataDir, TranscriptsDir)
}

// AIConfig returns the provider configuration the workspace was opened with.
func (w *Workspace) AIConfig() *ai.Config {
	return w.aiConfig
}

// Texts returns the cached transcript source.
func (w *Workspace) Texts() corpus.TextSource {
	return w.texts
}

// ForgetTexts drops cached transcripts, typically after they were rewritten on disk.
func (w *Workspace) ForgetTexts(ctx context.Context, filenames ...string) error {
	return w.texts.Forget(ctx, filenames...)
}

// Corpus loads the knowledge base once and returns it on every call.
// A missing file is reported as corpus.ErrCorpusMissing and retried next time.
func (w *Workspace) Corpus() (*core.Corpus, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.corpus != nil {
		return w.corpus, nil
	}
	c, err := corpus.Load(w.CorpusPath())
	if err != nil {
		return nil, err
	}
	w.logger.Debug("knowledge base loaded", "path", w.CorpusPath(),
		"documents", len(c.Documents), "candidates", len(c.Candidates))
	w.corpus = c
	return c, nil
}

// SaveCorpus writes c to CorpusPath and makes it the workspace's knowledge base.
func (w *Workspace) SaveCorpus(c *core.Corpus) error {
	if err := corpus.Save(w.CorpusPath(), c); err != nil {
		return err
	}
	w.mu.Lock()
	w.corpus = c
	w.mu.Unlock()
	return nil
}

// NewRetriever creates a context retriever over the knowledge base and the
// cached transcripts.
func (w *Workspace) NewRetriever(opts ...retrieval.Option) (*retrieval.Retriever, error) {
	c, err := w.Corpus()
	if err != nil {
		return nil, err
	}
	return retrieval.NewRetriever(c, w.texts, append([]retrieval.Option{retrieval.WithLogger(w.base)}, opts...)...)
}

// NewChatModel connects to the selected provider.
func (w *Workspace) NewChatModel(ctx context.Context, opts ...llm.Option) (*llm.Model, error) {
	settings, err := w.aiConfig.Selected()
	if err != nil {
		return nil, err
	}
	return llm.New(ctx, settings, append([]llm.Option{llm.WithLogger(w.base)}, opts...)...)
}

// NewSession starts a chat session over model with a retriever on this workspace.
func (w *Workspace) NewSession(model ai.ChatModel, opts ...chat.Option) (*chat.Session, error) {
	c, err := w.Corpus()
	if err != nil {
		return nil, err
	}
	r, err := retrieval.NewRetriever(c, w.texts, retrieval.WithLogger(w.base))
	if err != nil {
		return nil, err
	}
	return chat.NewSession(model, r, c, append([]chat.Option{chat.WithLogger(w.base)}, opts...)...)
}

// NewQuizEngine creates an engine over the curated candidate profiles.
func (w *Workspace) NewQuizEngine(opts ...quiz.Option) (*quiz.Engine, error) {
	return quiz.NewEngine(quiz.DefaultProfiles(), append([]quiz.Option{quiz.WithLogger(w.base)}, opts...)...)
}

// NewFinder creates a term search over the processed transcripts.
// The caller must Release it.
func (w *Workspace) NewFinder(opts ...corpus.Option) (*corpus.Finder, error) {
	return corpus.NewFinder(w.texts, append([]corpus.Option{corpus.WithLogger(w.base)}, opts...)...)
}

// NewBuilder creates a knowledge-base builder reading the processed
// transcripts straight from disk. The caller must Release it.
func (w *Workspace) NewBuilder(opts ...ingestion.Option) (*ingestion.Builder, error) {
	return ingestion.NewBuilder(w.dirTexts, append([]ingestion.Option{ingestion.WithLogger(w.base)}, opts...)...)
}

// NewProcessor creates a subtitle cleaner from the transcripts directory to
// the processed directory.
func (w *Workspace) NewProcessor(opts ...ingestion.ProcessorOption) (*ingestion.Processor, error) {
	return ingestion.NewProcessor(w.TranscriptsDir(), w.ProcessedDir(),
		append([]ingestion.ProcessorOption{ingestion.WithProcessorLogger(w.base)}, opts...)...)
}
