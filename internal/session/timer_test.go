package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hasanarofid/lms-assessment/internal/dto"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	quiz *dto.QuizDetailDTO

	mu      sync.Mutex
	submits int
}

func (s *countingStore) FetchQuiz(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error) {
	return s.quiz, nil
}

func (s *countingStore) SubmitAttempt(ctx context.Context, sub dto.AttemptSubmitDTO) (*dto.ScoreResultDTO, error) {
	s.mu.Lock()
	s.submits++
	s.mu.Unlock()
	return &dto.ScoreResultDTO{Score: 0, TotalQuestions: 1}, nil
}

func (s *countingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submits
}

func TestCountdownDrivesTimeoutSubmission(t *testing.T) {
	old := tickInterval
	tickInterval = time.Millisecond
	defer func() { tickInterval = old }()

	store := &countingStore{quiz: &dto.QuizDetailDTO{
		ID:               1,
		TimeLimitMinutes: 1,
		Questions:        []dto.QuestionResponseDTO{{ID: 1}},
	}}
	s := New(store)
	defer s.Close()

	require.NoError(t, s.Start(context.Background(), 1))
	s.StartCountdown(context.Background())

	require.Eventually(t, func() bool {
		return s.Status() == StatusCompleted
	}, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, 1, store.count())

	// The ticker goroutine released its handle when the session left the
	// active state; acquiring again on a finished session is a no-op.
	s.StartCountdown(context.Background())
	require.Equal(t, 1, store.count())
}

func TestCountdownReleasedOnClose(t *testing.T) {
	old := tickInterval
	tickInterval = time.Millisecond
	defer func() { tickInterval = old }()

	store := &countingStore{quiz: &dto.QuizDetailDTO{
		ID:               1,
		TimeLimitMinutes: 60,
		Questions:        []dto.QuestionResponseDTO{{ID: 1}},
	}}
	s := New(store)
	require.NoError(t, s.Start(context.Background(), 1))
	s.StartCountdown(context.Background())

	require.Eventually(t, func() bool { return s.Remaining() < 3600 }, 2*time.Second, 5*time.Millisecond)
	s.Close()
	before := s.Remaining()

	// A torn-down session must not keep ticking toward a stale submission.
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, before, s.Remaining())
	require.Zero(t, store.count())
}
