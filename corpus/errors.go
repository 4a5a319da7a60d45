package corpus

import "errors"

var (
	// ErrCorpusMissing is returned when the knowledge-base file does not exist.
	ErrCorpusMissing = errors.New("corpus missing")

	// ErrInvalidCorpusFile is returned when the knowledge-base file cannot be decoded.
	ErrInvalidCorpusFile = errors.New("invalid corpus file")

	// ErrDocumentNotFound is returned when a transcript text cannot be found.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrCorpusRequired is returned when a component is created without a corpus.
	ErrCorpusRequired = errors.New("corpus required")

	// ErrTextLoaderRequired is returned when a text loader is not provided.
	ErrTextLoaderRequired = errors.New("text loader required")

	// ErrTextRepositoryRequired is returned when a caching loader has no repository.
	ErrTextRepositoryRequired = errors.New("text repository required")

	// ErrDirectoryRequired is returned when a directory loader has no directory.
	ErrDirectoryRequired = errors.New("directory required")

	// ErrEmptyTerm is returned when a term search is given a blank term.
	ErrEmptyTerm = errors.New("search term cannot be empty")
)
