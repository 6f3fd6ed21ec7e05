package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hasanarofid/lms-assessment/internal/cache"
	"github.com/hasanarofid/lms-assessment/internal/dto"
	"github.com/hasanarofid/lms-assessment/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrQuizNotFound is returned when a quiz does not exist or is not published.
// The two cases are indistinguishable on purpose: unpublished quizzes must not
// be observable.
var ErrQuizNotFound = errors.New("quiz not found")

type QuizService interface {
	// GetQuizForTaking returns a published quiz with ordered questions and
	// options, with every correctness flag stripped.
	GetQuizForTaking(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error)
	ListCourseQuizzes(ctx context.Context, courseID uint) ([]dto.QuizSummaryDTO, error)
}

type quizService struct {
	quizRepo  repository.QuizRepository
	quizCache cache.QuizCache
}

func NewQuizService(quizRepo repository.QuizRepository, quizCache cache.QuizCache) QuizService {
	return &quizService{quizRepo: quizRepo, quizCache: quizCache}
}

func (s *quizService) GetQuizForTaking(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error) {
	if cached, err := s.quizCache.Get(ctx, quizID); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("GetQuizForTaking: cache read failed, falling back to database")
	}

	quiz, err := s.quizRepo.FindPublishedByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuizForTaking: repository error")
		return nil, fmt.Errorf("fetching quiz %d: %w", quizID, err)
	}

	// The DTO has no correctness field, so the copy drops is_correct from
	// every option.
	var resp dto.QuizDetailDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("GetQuizForTaking: failed to copy quiz model to DTO")
		return nil, fmt.Errorf("preparing quiz response: %w", err)
	}

	if err := s.quizCache.Set(ctx, &resp); err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("GetQuizForTaking: cache write failed")
	}
	return &resp, nil
}

func (s *quizService) ListCourseQuizzes(ctx context.Context, courseID uint) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindPublishedByCourseID(courseID)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("ListCourseQuizzes: repository error")
		return nil, fmt.Errorf("fetching quizzes for course %d: %w", courseID, err)
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:               q.Quiz.ID,
			CourseID:         q.Quiz.CourseID,
			Title:            q.Quiz.Title,
			Description:      q.Quiz.Description,
			TimeLimitMinutes: q.Quiz.TimeLimitMinutes,
			QuestionCount:    q.QuestionCount,
			CreatedAt:        q.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}
