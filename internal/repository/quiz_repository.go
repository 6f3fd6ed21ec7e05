package repository

import (
	"github.com/hasanarofid/lms-assessment/internal/model"
	"gorm.io/gorm"
)

// QuizWithQuestionCount is a Quiz summary row with its question count pulled in
// a single query.
type QuizWithQuestionCount struct {
	model.Quiz
	QuestionCount int
}

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindPublishedByID(id uint) (*model.Quiz, error)
	FindPublishedByCourseID(courseID uint) ([]QuizWithQuestionCount, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// GORM creates the nested Questions and their Options along with the quiz.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindPublishedByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_index ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.order_index ASC")
		}).
		Where("is_published = ?", true).
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindPublishedByCourseID(courseID uint) ([]QuizWithQuestionCount, error) {
	var results []QuizWithQuestionCount
	err := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id AND questions.deleted_at IS NULL) as question_count").
		Where("quizzes.course_id = ? AND quizzes.is_published = ? AND quizzes.deleted_at IS NULL", courseID, true).
		Order("quizzes.created_at ASC").
		Scan(&results).Error
	return results, err
}
