package run

import (
	"errors"
	"fmt"

	"github.com/abhisek/trifactor/internal/catalog"
)

var (
	// ErrInvalidAnswer is returned for raw answers outside the Likert scale.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrNoAnswers is returned when a phase is finished before anything was
	// answered.
	ErrNoAnswers = errors.New("no answers recorded")

	// ErrInvalidTransition is returned when an action is not allowed in the
	// current stage.
	ErrInvalidTransition = errors.New("invalid transition")
)

// AnswerError reports a rejected raw answer.
type AnswerError struct {
	Value int
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("answer %d out of range [%d, %d]", e.Value, catalog.MinAnswer, catalog.MaxAnswer)
}

func (e *AnswerError) Unwrap() error { return ErrInvalidAnswer }

// TransitionError reports an action attempted in a stage that does not
// accept it.
type TransitionError struct {
	Action string
	Stage  Stage
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s not allowed in stage %s", e.Action, e.Stage)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// ValidateAnswer rejects raw values outside [MinAnswer, MaxAnswer].
func ValidateAnswer(v int) error {
	if v < catalog.MinAnswer || v > catalog.MaxAnswer {
		return &AnswerError{Value: v}
	}
	return nil
}
