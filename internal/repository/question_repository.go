package repository

import (
	"github.com/hasanarofid/lms-assessment/internal/model"
	"gorm.io/gorm"
)

// GradingRow is one row of the questions x options LEFT JOIN driving the
// grading pass: one row per option, with null option fields when a question
// has no options at all (true/false, essay).
type GradingRow struct {
	QuestionID uint
	Points     int
	OptionID   *uint
	IsCorrect  bool
}

type QuestionRepository interface {
	FindGradingRows(quizID uint) ([]GradingRow, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindGradingRows(quizID uint) ([]GradingRow, error) {
	var rows []GradingRow
	err := r.db.Model(&model.Question{}).
		Select("questions.id AS question_id, questions.points, options.id AS option_id, COALESCE(options.is_correct, FALSE) AS is_correct").
		Joins("LEFT JOIN options ON options.question_id = questions.id AND options.deleted_at IS NULL").
		Where("questions.quiz_id = ? AND questions.deleted_at IS NULL", quizID).
		Scan(&rows).Error
	return rows, err
}
