package repository

import (
	"github.com/hasanarofid/lms-assessment/internal/model"
	"gorm.io/gorm"
)

// AttemptRepository writes and reads the append-only attempt ledger. There is
// deliberately no Update or Delete: attempts are historical records.
type AttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	FindByUser(userID uint, quizID *uint) ([]model.QuizAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByUser(userID uint, quizID *uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	query := r.db.Where("user_id = ?", userID)
	if quizID != nil {
		query = query.Where("quiz_id = ?", *quizID)
	}
	err := query.Order("created_at DESC").Find(&attempts).Error
	return attempts, err
}
