package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/poiesic/voto/core"
)

const (
	// DefaultFilename is the knowledge-base file name inside the data directory.
	DefaultFilename = "knowledge-base.json"

	// ProcessedDir is the transcript directory inside the data directory.
	ProcessedDir = "processed"
)

// Load reads and validates the knowledge base at path.
// A missing file yields ErrCorpusMissing; the corpus is never rebuilt implicitly.
func Load(path string) (*core.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCorpusMissing, path)
		}
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Save writes the knowledge base to path, creating parent directories.
func Save(path string, c *core.Corpus) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := Encode(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
