package ingestion

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/poiesic/voto/corpus"
)

const (
	// SubtitleSuffix is the extension of raw subtitle files.
	SubtitleSuffix = ".vtt"

	// SpanishSubtitleSuffix is stripped from subtitle names before adding TextSuffix.
	SpanishSubtitleSuffix = ".es.vtt"
)

// Processed describes one transcript written by a Processor.
type Processed struct {
	Source string
	Output string
	Length int
}

// Processor converts a directory of .vtt subtitles into .txt transcripts.
type Processor struct {
	inDir  string
	outDir string
	logger *slog.Logger
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor) error

// WithProcessorLogger sets a custom logger.
// Default is slog.Default().
func WithProcessorLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewProcessor creates a processor reading from inDir and writing to outDir.
func NewProcessor(inDir, outDir string, opts ...ProcessorOption) (*Processor, error) {
	if inDir == "" || outDir == "" {
		return nil, ErrDirectoryRequired
	}
	p := &Processor{inDir: inDir, outDir: outDir, logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.logger = p.logger.With("component", "vtt-processor")
	return p, nil
}

// TranscriptName maps a subtitle filename to its transcript filename:
// "TSE-01-PLN-Alvaro_Ramos.es.vtt" becomes "TSE-01-PLN-Alvaro_Ramos.txt".
func TranscriptName(subtitle string) string {
	base := filepath.Base(subtitle)
	if stem, ok := strings.CutSuffix(base, SpanishSubtitleSuffix); ok {
		return stem + corpus.TextSuffix
	}
	return base + corpus.TextSuffix
}

// Run cleans every subtitle file in the input directory, in name order,
// overwriting existing transcripts.
func (p *Processor) Run(ctx context.Context) ([]Processed, error) {
	entries, err := os.ReadDir(p.inDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(p.outDir, 0o755); err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), SubtitleSuffix) {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	out := make([]Processed, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		raw, err := os.ReadFile(filepath.Join(p.inDir, name))
		if err != nil {
			return out, err
		}
		text := CleanVTT(string(raw))
		target := TranscriptName(name)
		if err := os.WriteFile(filepath.Join(p.outDir, target), []byte(text), 0o644); err != nil {
			return out, err
		}
		p.logger.Debug("transcript written", "source", name, "output", target, "bytes", len(text))
		out = append(out, Processed{Source: name, Output: target, Length: len(text)})
	}
	return out, nil
}
