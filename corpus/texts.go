package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/poiesic/voto/storage"
)

// TextSuffix is the extension of processed transcript files.
const TextSuffix = ".txt"

// TextLoader loads the full text of a transcript by filename.
type TextLoader interface {
	// LoadText returns the transcript body, or an error wrapping
	// ErrDocumentNotFound when there is none.
	LoadText(ctx context.Context, filename string) (string, error)
}

// TextSource is a TextLoader that can also enumerate its transcripts.
type TextSource interface {
	TextLoader

	// ListTexts returns every transcript filename in lexical order.
	ListTexts(ctx context.Context) ([]string, error)
}

// DirTextLoader reads transcripts from a directory of .txt files.
type DirTextLoader struct {
	dir string
}

var _ TextSource = (*DirTextLoader)(nil)

// NewDirTextLoader creates a loader rooted at dir.
func NewDirTextLoader(dir string) (*DirTextLoader, error) {
	if dir == "" {
		return nil, ErrDirectoryRequired
	}
	return &DirTextLoader{dir: dir}, nil
}

// Dir returns the directory the loader reads from.
func (l *DirTextLoader) Dir() string {
	return l.dir
}

// LoadText reads a transcript. Only the base name of filename is used.
func (l *DirTextLoader) LoadText(ctx context.Context, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(l.dir, filepath.Base(filename)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, filename)
		}
		return "", err
	}
	return string(data), nil
}

// ListTexts returns every .txt file in the directory, sorted.
func (l *DirTextLoader) ListTexts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, l.dir)
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), TextSuffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)
	return names, nil
}

// CachingTextLoader serves transcripts from a TextRepository, filling it from
// the next loader on a miss.
type CachingTextLoader struct {
	next   TextLoader
	cache  storage.TextRepository
	logger *slog.Logger
}

var _ TextLoader = (*CachingTextLoader)(nil)

// NewCachingTextLoader wraps next with a text cache.
func NewCachingTextLoader(next TextLoader, cache storage.TextRepository, opts ...Option) (*CachingTextLoader, error) {
	if next == nil {
		return nil, ErrTextLoaderRequired
	}
	if cache == nil {
		return nil, ErrTextRepositoryRequired
	}
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	return &CachingTextLoader{
		next:   next,
		cache:  cache,
		logger: s.logger.With("component", "text-cache"),
	}, nil
}

// LoadText returns the cached text or loads and caches it.
// Cache failures are logged and never hide a readable transcript.
func (l *CachingTextLoader) LoadText(ctx context.Context, filename string) (string, error) {
	text, err := l.cache.GetText(ctx, filename)
	if err == nil {
		return text, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		l.logger.Warn("error reading text cache", "filename", filename, "err", err)
	}

	text, err = l.next.LoadText(ctx, filename)
	if err != nil {
		return "", err
	}
	if err := l.cache.PutText(ctx, filename, text); err != nil {
		l.logger.Warn("error filling text cache", "filename", filename, "err", err)
	}
	return text, nil
}

// Forget drops cached texts so the next load reads them again.
// Names that were never cached are ignored.
func (l *CachingTextLoader) Forget(ctx context.Context, filenames ...string) error {
	for _, name := range filenames {
		err := l.cache.DeleteText(ctx, name)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("forgetting %s: %w", name, err)
		}
	}
	return nil
}

// Cached returns how many texts are currently held in the cache.
func (l *CachingTextLoader) Cached(ctx context.Context) (int, error) {
	return l.cache.CountTexts(ctx)
}

// ListTexts delegates to the wrapped loader when it can enumerate transcripts.
func (l *CachingTextLoader) ListTexts(ctx context.Context) ([]string, error) {
	src, ok := l.next.(TextSource)
	if !ok {
		return nil, fmt.Errorf("%w: wrapped loader cannot list transcripts", ErrTextLoaderRequired)
	}
	return src.ListTexts(ctx)
}
