package retrieval

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/corpus"
)

const (
	// DocsPerMatch is how many documents a matching candidate contributes.
	DocsPerMatch = 2

	// MatchTextLimit caps the characters of a chunk found by candidate match.
	MatchTextLimit = 15000

	// FallbackTextLimit caps the characters of a fallback chunk.
	FallbackTextLimit = 8000

	// DefaultMaxFallbackDocs is the default number of fallback candidates consulted.
	DefaultMaxFallbackDocs = 3
)

// FallbackCodes lists, in priority order, the candidates whose official
// interviews are used when a query names nobody.
var FallbackCodes = []string{"PLN", "PUSC", "CAC", "FA", "PLP"}

// Chunk is one retrieved transcript excerpt with its attribution.
type Chunk struct {
	CandidateName string
	CandidateCode string
	SourceLabel   string
	DocumentID    string
	Text          string
}

// Retriever selects transcript excerpts relevant to a query.
type Retriever struct {
	corpus          *core.Corpus
	loader          corpus.TextLoader
	maxFallbackDocs int
	monitor         RetrievalMonitor
	logger          *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithMaxFallbackDocs sets how many fallback candidates are consulted.
// Values below zero are treated as zero. Default is 3.
func WithMaxFallbackDocs(n int) Option {
	return func(r *Retriever) error {
		if n < 0 {
			n = 0
		}
		r.maxFallbackDocs = n
		return nil
	}
}

// WithMonitor attaches a monitor to every retrieval.
func WithMonitor(monitor RetrievalMonitor) Option {
	return func(r *Retriever) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		r.monitor = monitor
		return nil
	}
}

// NewRetriever creates a retriever over the corpus, reading texts through loader.
func NewRetriever(c *core.Corpus, loader corpus.TextLoader, opts ...Option) (*Retriever, error) {
	if c == nil {
		return nil, ErrCorpusRequired
	}
	if loader == nil {
		return nil, ErrTextLoaderRequired
	}

	r := &Retriever{
		corpus:          c,
		loader:          loader,
		maxFallbackDocs: DefaultMaxFallbackDocs,
		monitor:         &noopMonitor{},
		logger:          slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Retrieve returns the chunks relevant to query.
//
// Every candidate whose code, or any single token of whose name, appears in the
// lowercased query contributes its first DocsPerMatch documents, each truncated
// to MatchTextLimit characters. When that yields nothing, the official
// interview of each of the first maxFallbackDocs FallbackCodes is used instead,
// truncated to FallbackTextLimit characters. Documents whose text cannot be
// found are skipped.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]Chunk, error) {
	r.monitor.Start(query)
	q := strings.ToLower(query)

	var chunks []Chunk
	for _, cand := range r.corpus.Candidates {
		matchedOn, ok := matchCandidate(q, cand)
		if !ok {
			continue
		}
		r.monitor.CandidateMatched(cand, matchedOn)

		ids := r.corpus.DocumentIDs(cand.Code)
		if len(ids) > DocsPerMatch {
			ids = ids[:DocsPerMatch]
		}
		for _, id := range ids {
			chunk, ok, err := r.chunk(ctx, cand, id, MatchTextLimit)
			if err != nil {
				return nil, err
			}
			if ok {
				chunks = append(chunks, chunk)
			}
		}
	}

	if len(chunks) == 0 {
		fallback, err := r.fallback(ctx)
		if err != nil {
			return nil, err
		}
		chunks = fallback
	}

	r.logger.Debug("retrieved context", "query", query, "chunks", len(chunks))
	r.monitor.Finish(chunks)
	return chunks, nil
}

func (r *Retriever) fallback(ctx context.Context) ([]Chunk, error) {
	codes := FallbackCodes
	if r.maxFallbackDocs < len(codes) {
		codes = codes[:r.maxFallbackDocs]
	}
	r.monitor.FallbackStarted(codes)

	var chunks []Chunk
	for _, code := range codes {
		cand, ok := r.corpus.Candidate(code)
		if !ok {
			continue
		}
		id, ok := officialInterview(r.corpus.DocumentIDs(code))
		if !ok {
			continue
		}
		chunk, ok, err := r.chunk(ctx, cand, id, FallbackTextLimit)
		if err != nil {
			return nil, err
		}
		if ok {
			chunks = append(chunks, chunk)
		}
	}
	return chunks, nil
}

// chunk resolves a document and loads its text. A document that is not in the
// corpus, or whose text is missing, is reported as skipped rather than failing.
func (r *Retriever) chunk(ctx context.Context, cand core.Candidate, docID string, limit int) (Chunk, bool, error) {
	doc, ok := r.corpus.Document(docID)
	if !ok {
		r.monitor.DocumentSkipped(docID, corpus.ErrDocumentNotFound)
		return Chunk{}, false, nil
	}
	text, err := r.loader.LoadText(ctx, doc.Filename)
	if err != nil {
		if errors.Is(err, corpus.ErrDocumentNotFound) {
			r.logger.Warn("transcript missing", "document", docID, "filename", doc.Filename)
			r.monitor.DocumentSkipped(docID, err)
			return Chunk{}, false, nil
		}
		r.logger.Error("error loading transcript", "document", docID, "err", err)
		return Chunk{}, false, err
	}
	chunk := Chunk{
		CandidateName: cand.Name,
		CandidateCode: cand.Code,
		SourceLabel:   string(doc.Source),
		DocumentID:    doc.ID,
		Text:          truncate(text, limit),
	}
	r.monitor.ChunkEmitted(chunk)
	return chunk, true, nil
}

// matchCandidate reports whether the lowercased query mentions the candidate,
// and on what. Any single name token is enough, so a common given name matches
// every candidate who carries it.
func matchCandidate(q string, cand core.Candidate) (string, bool) {
	if code := strings.ToLower(cand.Code); code != "" && strings.Contains(q, code) {
		return cand.Code, true
	}
	for _, token := range cand.NameTokens() {
		if strings.Contains(q, strings.ToLower(token)) {
			return token, true
		}
	}
	return "", false
}

func officialInterview(ids []string) (string, bool) {
	for _, id := range ids {
		if strings.HasPrefix(id, core.OfficialInterviewPrefix) {
			return id, true
		}
	}
	return "", false
}

// truncate keeps at most limit characters of s.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
