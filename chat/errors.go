package chat

import "errors"

var (
	// ErrModelRequired is returned when a session is created without a chat model.
	ErrModelRequired = errors.New("chat model required")

	// ErrRetrieverRequired is returned when a session is created without a retriever.
	ErrRetrieverRequired = errors.New("retriever required")

	// ErrCorpusRequired is returned when a session is created without a corpus.
	ErrCorpusRequired = errors.New("corpus required")

	// ErrEmptyInput is returned for blank user input.
	ErrEmptyInput = errors.New("empty input")
)
