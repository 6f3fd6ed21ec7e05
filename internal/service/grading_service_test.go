package service_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/hasanarofid/lms-assessment/internal/model"
	"github.com/hasanarofid/lms-assessment/internal/repository"
	"github.com/hasanarofid/lms-assessment/internal/service"
	"github.com/stretchr/testify/require"
)

type fakeQuestionRepo struct {
	rows []repository.GradingRow
	err  error
}

func (f *fakeQuestionRepo) FindGradingRows(quizID uint) ([]repository.GradingRow, error) {
	return f.rows, f.err
}

type fakeAttemptRepo struct {
	created []model.QuizAttempt
	err     error
}

func (f *fakeAttemptRepo) Create(attempt *model.QuizAttempt) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *attempt)
	return nil
}

func (f *fakeAttemptRepo) FindByUser(userID uint, quizID *uint) ([]model.QuizAttempt, error) {
	return f.created, nil
}

func optID(id uint) *uint { return &id }

// mcRows builds the join rows of one multiple choice question: the correct
// option first, then the wrong ones.
func mcRows(questionID uint, points int, correct uint, wrong ...uint) []repository.GradingRow {
	rows := []repository.GradingRow{
		{QuestionID: questionID, Points: points, OptionID: optID(correct), IsCorrect: true},
	}
	for _, w := range wrong {
		rows = append(rows, repository.GradingRow{QuestionID: questionID, Points: points, OptionID: optID(w), IsCorrect: false})
	}
	return rows
}

func TestGradeTwoQuestionScenario(t *testing.T) {
	// Q1 correct option 1, Q2 correct option 4. The user picks option 1 for Q1
	// and option 3 (wrong) for Q2.
	rows := append(mcRows(1, 2, 1, 2), mcRows(2, 2, 4, 3)...)
	questionRepo := &fakeQuestionRepo{rows: rows}
	attemptRepo := &fakeAttemptRepo{}
	svc := service.NewGradingService(questionRepo, attemptRepo)

	result, err := svc.Grade(context.Background(), 10, 42, map[uint]string{1: "1", 2: "3"}, 4)
	require.NoError(t, err)
	require.Equal(t, 50, result.Score)
	require.Equal(t, 1, result.CorrectAnswers)
	require.Equal(t, 2, result.TotalQuestions)
	require.False(t, result.Passed)

	require.Len(t, attemptRepo.created, 1)
	attempt := attemptRepo.created[0]
	require.Equal(t, uint(42), attempt.UserID)
	require.Equal(t, uint(10), attempt.QuizID)
	require.Equal(t, 50, attempt.Score)
	require.Equal(t, 2, attempt.TotalQuestions)
	require.Equal(t, 1, attempt.CorrectAnswers)
	require.Equal(t, 4, attempt.TimeTakenMinutes)
}

func TestGradeWrongOptionDoesNotCount(t *testing.T) {
	// A row-oriented pass that only checked "question has an answer and some
	// row is the correct one" would mark Q1 correct here. The submitted option
	// id has to match the correct option's id.
	questionRepo := &fakeQuestionRepo{rows: mcRows(1, 1, 5, 6, 7)}
	attemptRepo := &fakeAttemptRepo{}
	svc := service.NewGradingService(questionRepo, attemptRepo)

	result, err := svc.Grade(context.Background(), 1, 1, map[uint]string{1: "6"}, 0)
	require.NoError(t, err)
	require.Equal(t, 0, result.CorrectAnswers)
	require.Equal(t, 1, result.TotalQuestions)
	require.Equal(t, 0, result.Score)
}

func TestGradeUnansweredQuestion(t *testing.T) {
	questionRepo := &fakeQuestionRepo{rows: append(mcRows(1, 1, 1, 2), mcRows(2, 1, 3, 4)...)}
	attemptRepo := &fakeAttemptRepo{}
	svc := service.NewGradingService(questionRepo, attemptRepo)

	result, err := svc.Grade(context.Background(), 1, 1, map[uint]string{1: "1"}, 1)
	require.NoError(t, err)
	require.Equal(t, 1, result.CorrectAnswers)
	require.Equal(t, 2, result.TotalQuestions)
	require.Equal(t, 50, result.Score)
}

func TestGradeScoreRounding(t *testing.T) {
	rows := append(mcRows(1, 1, 1, 2), mcRows(2, 1, 3, 4)...)
	rows = append(rows, mcRows(3, 1, 5, 6)...)
	attemptRepo := &fakeAttemptRepo{}
	svc := service.NewGradingService(&fakeQuestionRepo{rows: rows}, attemptRepo)

	// 1 of 3 -> 33.33 rounds to 33
	result, err := svc.Grade(context.Background(), 1, 1, map[uint]string{1: "1"}, 0)
	require.NoError(t, err)
	require.Equal(t, 33, result.Score)

	// 2 of 3 -> 66.67 rounds to 67
	result, err = svc.Grade(context.Background(), 1, 1, map[uint]string{1: "1", 2: "3"}, 0)
	require.NoError(t, err)
	require.Equal(t, 67, result.Score)
}

func TestGradePassBoundary(t *testing.T) {
	var rows []repository.GradingRow
	answers := make(map[uint]string)
	for q := uint(1); q <= 10; q++ {
		correct := q * 100
		rows = append(rows, mcRows(q, 1, correct, correct+1)...)
		if q <= 7 {
			answers[q] = itoa(correct)
		}
	}
	svc := service.NewGradingService(&fakeQuestionRepo{rows: rows}, &fakeAttemptRepo{})

	// 7 of 10 is exactly 70: passes.
	result, err := svc.Grade(context.Background(), 1, 1, answers, 0)
	require.NoError(t, err)
	require.Equal(t, 70, result.Score)
	require.True(t, result.Passed)

	// 9 of 13 is 69.2, rounds to 69: fails.
	rows = nil
	answers = make(map[uint]string)
	for q := uint(1); q <= 13; q++ {
		correct := q * 100
		rows = append(rows, mcRows(q, 1, correct, correct+1)...)
		if q <= 9 {
			answers[q] = itoa(correct)
		}
	}
	svc = service.NewGradingService(&fakeQuestionRepo{rows: rows}, &fakeAttemptRepo{})
	result, err = svc.Grade(context.Background(), 1, 1, answers, 0)
	require.NoError(t, err)
	require.Equal(t, 69, result.Score)
	require.False(t, result.Passed)
}

func TestGradeEssayExcludedFromDenominator(t *testing.T) {
	// Three questions, one of them an essay with no option rows. The essay
	// answer is present in the map but never graded.
	rows := append(mcRows(1, 2, 1, 2), mcRows(2, 2, 3, 4)...)
	rows = append(rows, repository.GradingRow{QuestionID: 3, Points: 5, OptionID: nil})
	attemptRepo := &fakeAttemptRepo{}
	svc := service.NewGradingService(&fakeQuestionRepo{rows: rows}, attemptRepo)

	result, err := svc.Grade(context.Background(), 1, 1, map[uint]string{
		1: "1",
		2: "3",
		3: "channels communicate, mutexes protect",
	}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, result.TotalQuestions)
	require.Equal(t, 2, result.CorrectAnswers)
	require.Equal(t, 100, result.Score)
	require.True(t, result.Passed)
}

func TestGradeNoGradableQuestions(t *testing.T) {
	rows := []repository.GradingRow{
		{QuestionID: 1, Points: 1, OptionID: nil},
		{QuestionID: 2, Points: 1, OptionID: nil},
	}
	attemptRepo := &fakeAttemptRepo{}
	svc := service.NewGradingService(&fakeQuestionRepo{rows: rows}, attemptRepo)

	result, err := svc.Grade(context.Background(), 1, 1, map[uint]string{1: "true"}, 1)
	require.NoError(t, err)
	require.Equal(t, 0, result.Score)
	require.Equal(t, 0, result.TotalQuestions)
	require.False(t, result.Passed)
	// The attempt row is still appended: zero gradable questions is history too.
	require.Len(t, attemptRepo.created, 1)
}

func TestGradeRepositoryErrors(t *testing.T) {
	svc := service.NewGradingService(&fakeQuestionRepo{err: errors.New("connection refused")}, &fakeAttemptRepo{})
	_, err := svc.Grade(context.Background(), 1, 1, nil, 0)
	require.Error(t, err)

	svc = service.NewGradingService(&fakeQuestionRepo{rows: mcRows(1, 1, 1, 2)}, &fakeAttemptRepo{err: errors.New("insert failed")})
	_, err = svc.Grade(context.Background(), 1, 1, map[uint]string{1: "1"}, 0)
	require.Error(t, err)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
