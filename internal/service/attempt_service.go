package service

import (
	"fmt"

	"github.com/hasanarofid/lms-assessment/internal/dto"
	"github.com/hasanarofid/lms-assessment/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type AttemptService interface {
	// ListUserAttempts returns the user's attempt history, newest first,
	// optionally narrowed to one quiz.
	ListUserAttempts(userID uint, quizID *uint) ([]dto.AttemptSummaryDTO, error)
}

type attemptService struct {
	attemptRepo repository.AttemptRepository
}

func NewAttemptService(attemptRepo repository.AttemptRepository) AttemptService {
	return &attemptService{attemptRepo: attemptRepo}
}

func (s *attemptService) ListUserAttempts(userID uint, quizID *uint) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindByUser(userID, quizID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListUserAttempts: repository error")
		return nil, fmt.Errorf("fetching attempts for user %d: %w", userID, err)
	}

	dtos := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.AttemptSummaryDTO
		if err := copier.Copy(&summary, &attempt); err != nil {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("ListUserAttempts: error copying attempt to summary DTO")
			continue
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}
