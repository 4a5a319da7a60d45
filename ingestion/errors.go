package ingestion

import "errors"

var (
	// ErrTextSourceRequired is returned when a builder has no transcript source.
	ErrTextSourceRequired = errors.New("text source required")

	// ErrNoCandidates is returned when a builder is configured with an empty roster.
	ErrNoCandidates = errors.New("candidate roster cannot be empty")

	// ErrDirectoryRequired is returned when a processor has no input or output directory.
	ErrDirectoryRequired = errors.New("directory required")
)
