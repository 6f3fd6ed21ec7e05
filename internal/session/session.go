package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hasanarofid/lms-assessment/internal/dto"
	"github.com/rs/zerolog/log"
)

// Status is the lifecycle state of one quiz-taking session.
type Status string

const (
	StatusLoading    Status = "loading"
	StatusActive     Status = "active"
	StatusSubmitting Status = "submitting"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// tickInterval is the countdown resolution. Overridden in tests.
var tickInterval = time.Second

// Store is the narrow backend contract a session drives: one read at start,
// one write at submission. Implementations may go over the wire or call the
// services in-process.
type Store interface {
	FetchQuiz(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error)
	SubmitAttempt(ctx context.Context, sub dto.AttemptSubmitDTO) (*dto.ScoreResultDTO, error)
}

// Session owns one user's in-progress quiz attempt: the question cursor, the
// captured answers and the countdown. It is an explicitly owned object with a
// create/Close lifecycle, not ambient UI state, so it runs headless.
//
// A Session is safe for one caller goroutine plus the countdown goroutine
// acquired by StartCountdown.
type Session struct {
	id    string
	store Store

	mu        sync.Mutex
	status    Status
	quiz      *dto.QuizDetailDTO
	questions []dto.QuestionResponseDTO
	answers   map[uint]string
	current   int
	remaining int
	result    *dto.ScoreResultDTO
	err       error
	closed    bool
	stopTimer chan struct{} // non-nil while a countdown goroutine owns the ticker
}

func New(store Store) *Session {
	return &Session{
		id:      uuid.NewString(),
		store:   store,
		status:  StatusLoading,
		answers: make(map[uint]string),
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Start fetches the quiz once and arms the countdown state. It does not start
// wall-clock ticking; call StartCountdown for that, or drive Tick directly.
func (s *Session) Start(ctx context.Context, quizID uint) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.status != StatusLoading {
		s.mu.Unlock()
		return fmt.Errorf("session %s already started", s.id)
	}
	s.mu.Unlock()

	quiz, err := s.store.FetchQuiz(ctx, quizID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err != nil {
		s.status = StatusError
		s.err = &LoadError{QuizID: quizID, Err: err}
		log.Warn().Err(err).Str("sessionID", s.id).Uint("quizID", quizID).Msg("quiz session failed to load")
		return s.err
	}

	s.quiz = quiz
	s.questions = quiz.Questions
	s.answers = make(map[uint]string)
	s.current = 0
	s.remaining = quiz.TimeLimitMinutes * 60
	s.status = StatusActive
	log.Info().Str("sessionID", s.id).Uint("quizID", quizID).Int("questions", len(s.questions)).Int("remainingSeconds", s.remaining).Msg("quiz session started")
	return nil
}

// Tick advances the countdown by one second while the session is active. When
// the countdown reaches zero the session submits itself; the status guard
// makes that timeout submission fire exactly once, no matter how many more
// ticks arrive.
func (s *Session) Tick() {
	s.mu.Lock()
	if s.closed || s.status != StatusActive {
		s.mu.Unlock()
		return
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining > 0 {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	log.Info().Str("sessionID", s.id).Msg("quiz time limit reached, submitting")
	if err := s.Submit(context.Background()); err != nil {
		log.Error().Err(err).Str("sessionID", s.id).Msg("timeout submission failed")
	}
}

// StartCountdown acquires the one-second ticker that drives Tick. The
// goroutine owns the ticker and releases it when the session leaves the
// active state, when ctx ends, or when Close is called — whichever comes
// first. A second call while a countdown is running is a no-op.
func (s *Session) StartCountdown(ctx context.Context) {
	s.mu.Lock()
	if s.closed || s.status != StatusActive || s.stopTimer != nil {
		s.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	s.stopTimer = stop
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C:
				s.Tick()
				if s.Status() != StatusActive {
					return
				}
			}
		}
	}()
}

// RecordAnswer captures the submitted value for a question, replacing any
// previous value for the same question. Values are not validated against the
// question type here; interpreting them is the grading engine's job.
func (s *Session) RecordAnswer(questionID uint, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.status != StatusActive {
		return
	}
	s.answers[questionID] = value
}

// GoTo moves the cursor to index, clamped to the question range.
func (s *Session) GoTo(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goToLocked(index)
}

func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goToLocked(s.current + 1)
}

func (s *Session) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goToLocked(s.current - 1)
}

func (s *Session) goToLocked(index int) {
	if s.closed || s.status != StatusActive || len(s.questions) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.questions)-1 {
		index = len(s.questions) - 1
	}
	s.current = index
}

// Submit grades the session. It is reentrancy-guarded: once a submission is in
// flight or the session has left the active state, further calls are no-ops.
// A failed submission parks the session in StatusError; it is never retried
// automatically.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.status != StatusActive {
		s.mu.Unlock()
		return nil
	}
	s.status = StatusSubmitting
	s.releaseTimerLocked()
	quizID := s.quiz.ID
	elapsed := (s.quiz.TimeLimitMinutes*60 - s.remaining) / 60
	answers := make(map[uint]string, len(s.answers))
	for id, value := range s.answers {
		answers[id] = value
	}
	s.mu.Unlock()

	result, err := s.store.SubmitAttempt(ctx, dto.AttemptSubmitDTO{
		QuizID:           quizID,
		Answers:          answers,
		TimeTakenMinutes: elapsed,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		// The session was torn down while the submission was in flight; the
		// response belongs to nobody now.
		return ErrClosed
	}
	if err != nil {
		s.status = StatusError
		s.err = &GradingError{QuizID: quizID, Err: err}
		log.Warn().Err(err).Str("sessionID", s.id).Uint("quizID", quizID).Msg("quiz submission failed")
		return s.err
	}

	s.result = result
	s.status = StatusCompleted
	log.Info().Str("sessionID", s.id).Uint("quizID", quizID).Int("score", result.Score).Bool("passed", result.Passed).Msg("quiz session completed")
	return nil
}

// Close tears the session down: the countdown is released and the outcome of
// any in-flight submission is discarded. Safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.releaseTimerLocked()
}

func (s *Session) releaseTimerLocked() {
	if s.stopTimer != nil {
		close(s.stopTimer)
		s.stopTimer = nil
	}
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Remaining reports the countdown in seconds.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentQuestion returns the question under the cursor, or nil before the
// quiz has loaded.
func (s *Session) CurrentQuestion() *dto.QuestionResponseDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current < 0 || s.current >= len(s.questions) {
		return nil
	}
	q := s.questions[s.current]
	return &q
}

// Answers returns a copy of the captured answer map.
func (s *Session) Answers() map[uint]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	answers := make(map[uint]string, len(s.answers))
	for id, value := range s.answers {
		answers[id] = value
	}
	return answers
}

// Result is non-nil once the session has completed.
func (s *Session) Result() *dto.ScoreResultDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Err reports why the session is in StatusError, if it is.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
