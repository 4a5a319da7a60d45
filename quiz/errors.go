package quiz

import "errors"

var (
	// ErrUnknownQuestion is returned for an answer key the questionnaire does not ask.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrInvalidAnswer is returned for a value that is not one of the question's choices.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrCorpusRequired is returned when scoring is attempted without a corpus.
	ErrCorpusRequired = errors.New("corpus required")

	// ErrProfilesRequired is returned when an engine is created without profiles.
	ErrProfilesRequired = errors.New("profile table required")
)
