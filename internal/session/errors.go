package session

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when an operation's outcome was discarded because the
// session had already been torn down.
var ErrClosed = errors.New("session closed")

// LoadError reports a failed quiz fetch at session start. The session stays in
// StatusError; starting a fresh session is the only recovery.
type LoadError struct {
	QuizID uint
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading quiz %d: %v", e.QuizID, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// GradingError reports a failed submission. The session stays in StatusError
// and is never retried automatically: the grading engine keeps no idempotence
// guard, so a blind retry could append a duplicate attempt row.
type GradingError struct {
	QuizID uint
	Err    error
}

func (e *GradingError) Error() string {
	return fmt.Sprintf("grading attempt for quiz %d: %v", e.QuizID, e.Err)
}

func (e *GradingError) Unwrap() error { return e.Err }
