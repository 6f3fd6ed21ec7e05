package session

import (
	"context"

	"github.com/hasanarofid/lms-assessment/internal/dto"
	"github.com/hasanarofid/lms-assessment/internal/service"
)

// servicesStore adapts the in-process quiz and grading services to the Store
// contract for a fixed authenticated user.
type servicesStore struct {
	quizSvc    service.QuizService
	gradingSvc service.GradingService
	userID     uint
}

func NewServiceStore(quizSvc service.QuizService, gradingSvc service.GradingService, userID uint) Store {
	return &servicesStore{quizSvc: quizSvc, gradingSvc: gradingSvc, userID: userID}
}

func (s *servicesStore) FetchQuiz(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error) {
	return s.quizSvc.GetQuizForTaking(ctx, quizID)
}

func (s *servicesStore) SubmitAttempt(ctx context.Context, sub dto.AttemptSubmitDTO) (*dto.ScoreResultDTO, error) {
	return s.gradingSvc.Grade(ctx, sub.QuizID, s.userID, sub.Answers, sub.TimeTakenMinutes)
}
