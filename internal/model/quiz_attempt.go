package model

import "time"

// QuizAttempt is one graded submission. The table is an append-only ledger:
// rows are created once at grading time and never updated or deleted, so there
// are no UpdatedAt/DeletedAt columns.
type QuizAttempt struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           uint      `json:"user_id" gorm:"not null;index"`
	QuizID           uint      `json:"quiz_id" gorm:"not null;index"`
	Score            int       `json:"score" gorm:"not null"` // 0-100
	TotalQuestions   int       `json:"total_questions" gorm:"not null"`
	CorrectAnswers   int       `json:"correct_answers" gorm:"not null"`
	TimeTakenMinutes int       `json:"time_taken_minutes" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
}
