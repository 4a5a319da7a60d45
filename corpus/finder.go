package corpus

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// contextRadius is how many characters of surrounding text a hit carries on each side.
const contextRadius = 100

// Query describes a term search.
type Query struct {
	// Term is matched literally and case-insensitively.
	Term string

	// CandidateCode restricts the search to files containing "-CODE-".
	CandidateCode string

	// FoldAccents compares text with diacritics removed, so "educacion"
	// finds "educación".
	FoldAccents bool
}

// Hit is one transcript that contains the term.
type Hit struct {
	// DocumentID is the filename without its .txt suffix.
	DocumentID string
	Filename   string
	Count      int

	// Context is the text around the first match.
	Context string
}

// Finder searches every transcript for a term.
type Finder struct {
	source TextSource
	pool   *ants.Pool
	logger *slog.Logger
}

// NewFinder creates a term finder over the transcripts of source.
// Call Release when done.
func NewFinder(source TextSource, opts ...Option) (*Finder, error) {
	if source == nil {
		return nil, ErrTextLoaderRequired
	}
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	pool, err := ants.NewPool(s.poolSize)
	if err != nil {
		return nil, err
	}
	return &Finder{
		source: source,
		pool:   pool,
		logger: s.logger.With("component", "finder"),
	}, nil
}

// Release releases the worker pool.
// The Finder should not be used after calling Release.
func (f *Finder) Release() {
	if f.pool != nil {
		f.pool.Release()
	}
}

// Find scans the transcripts and returns every hit, sorted by match count
// descending, then by filename.
func (f *Finder) Find(ctx context.Context, q Query) ([]Hit, error) {
	term := strings.TrimSpace(q.Term)
	if term == "" {
		return nil, ErrEmptyTerm
	}
	if q.FoldAccents {
		term = foldAccents(term)
	}
	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(term))
	if err != nil {
		return nil, err
	}

	files, err := f.source.ListTexts(ctx)
	if err != nil {
		return nil, err
	}
	if code := strings.ToUpper(strings.TrimSpace(q.CandidateCode)); code != "" {
		marker := "-" + code + "-"
		files = slices.DeleteFunc(files, func(name string) bool {
			return !strings.Contains(name, marker)
		})
	}
	f.logger.Debug("searching transcripts", "term", term, "files", len(files))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		hits     = make([]*Hit, len(files))
	)
	for i, name := range files {
		wg.Add(1)
		err := f.pool.Submit(func() {
			defer wg.Done()
			hit, err := f.scan(ctx, name, pattern, q.FoldAccents)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			hits[i] = hit
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	out := make([]Hit, 0, len(hits))
	for _, hit := range hits {
		if hit != nil {
			out = append(out, *hit)
		}
	}
	slices.SortStableFunc(out, func(a, b Hit) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Filename, b.Filename)
	})
	return out, nil
}

func (f *Finder) scan(ctx context.Context, name string, pattern *regexp.Regexp, fold bool) (*Hit, error) {
	text, err := f.source.LoadText(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if fold {
		text = foldAccents(text)
	}
	matches := pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil, nil
	}
	first := matches[0]
	return &Hit{
		DocumentID: strings.TrimSuffix(name, TextSuffix),
		Filename:   name,
		Count:      len(matches),
		Context:    window(text, first[0], first[1], contextRadius),
	}, nil
}

// window returns text[start:end] widened by up to radius runes on each side.
func window(text string, start, end, radius int) string {
	for i := 0; i < radius && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:start])
		start -= size
	}
	for i := 0; i < radius && end < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	return text[start:end]
}

// foldAccents strips combining marks, leaving the base letters.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
