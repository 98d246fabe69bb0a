package catalog

import "errors"

var (
	// ErrNoQuestions is returned when a lens has no questions to ask.
	ErrNoQuestions = errors.New("no questions available")

	// ErrUnknownLens is returned when a lens name does not resolve.
	ErrUnknownLens = errors.New("unknown lens")
)
