package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/hasanarofid/lms-assessment/internal/dto"
	"github.com/hasanarofid/lms-assessment/internal/model"
	"github.com/hasanarofid/lms-assessment/internal/repository"
	"github.com/rs/zerolog/log"
)

// PassThresholdPercent is the fixed pass mark. A score of exactly 70 passes.
const PassThresholdPercent = 70

// GradingService is the sole source of truth for correctness and score. It
// regrades every submission against the current question/option rows; nothing
// the client claims about correctness is trusted.
type GradingService interface {
	Grade(ctx context.Context, quizID, userID uint, answers map[uint]string, elapsedMinutes int) (*dto.ScoreResultDTO, error)
}

type gradingService struct {
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
}

func NewGradingService(questionRepo repository.QuestionRepository, attemptRepo repository.AttemptRepository) GradingService {
	return &gradingService{questionRepo: questionRepo, attemptRepo: attemptRepo}
}

// Grade scores one answer map against one quiz and appends an attempt row.
//
// Only questions with at least one option row are gradable: essay and
// true/false questions carry no options and never enter the denominator, even
// when an answer for them is present in the map. A gradable question counts as
// correct when the submitted value equals the id of its correct option.
// Scoring is count-based; per-question point values are recorded against the
// rows but do not weight the score.
//
// There is no idempotence guard. Submitting the same answers twice appends two
// attempt rows; the ledger is history, not state.
func (s *gradingService) Grade(ctx context.Context, quizID, userID uint, answers map[uint]string, elapsedMinutes int) (*dto.ScoreResultDTO, error) {
	rows, err := s.questionRepo.FindGradingRows(quizID)
	if err != nil {
		return nil, fmt.Errorf("loading grading rows for quiz %d: %w", quizID, err)
	}

	graded := make(map[uint]bool)
	correct := make(map[uint]bool)
	totalPoints := 0
	for _, row := range rows {
		if row.OptionID == nil {
			continue
		}
		if !graded[row.QuestionID] {
			graded[row.QuestionID] = true
			totalPoints += row.Points
		}
		answer, answered := answers[row.QuestionID]
		if answered && row.IsCorrect && answer == strconv.FormatUint(uint64(*row.OptionID), 10) {
			correct[row.QuestionID] = true
		}
	}

	totalQuestions := len(graded)
	correctAnswers := len(correct)
	score := 0
	if totalQuestions > 0 {
		score = int(math.Round(100 * float64(correctAnswers) / float64(totalQuestions)))
	}

	attempt := &model.QuizAttempt{
		UserID:           userID,
		QuizID:           quizID,
		Score:            score,
		TotalQuestions:   totalQuestions,
		CorrectAnswers:   correctAnswers,
		TimeTakenMinutes: elapsedMinutes,
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		return nil, fmt.Errorf("recording attempt for quiz %d: %w", quizID, err)
	}

	log.Info().
		Uint("quizID", quizID).
		Uint("userID", userID).
		Int("score", score).
		Int("correct", correctAnswers).
		Int("total", totalQuestions).
		Int("totalPoints", totalPoints).
		Int("elapsedMinutes", elapsedMinutes).
		Msg("quiz attempt graded")

	return &dto.ScoreResultDTO{
		Score:          score,
		CorrectAnswers: correctAnswers,
		TotalQuestions: totalQuestions,
		Passed:         score >= PassThresholdPercent,
	}, nil
}
