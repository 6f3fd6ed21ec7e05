package dto

import "time"

// OptionResponseDTO deliberately carries no correctness flag: the client only
// needs identity, text and order to render a choice. Correctness lives server
// side until grading.
type OptionResponseDTO struct {
	ID         uint   `json:"id"`
	OptionText string `json:"option_text"`
	OrderIndex int    `json:"order_index"`
}

type QuestionResponseDTO struct {
	ID           uint                `json:"id"`
	QuizID       uint                `json:"quiz_id"`
	QuestionText string              `json:"question_text"`
	QuestionType string              `json:"question_type"`
	Points       int                 `json:"points"`
	OrderIndex   int                 `json:"order_index"`
	Options      []OptionResponseDTO `json:"options,omitempty"`
}

// QuizDetailDTO is the payload a session loads once at start: the quiz with its
// ordered questions and their ordered options.
type QuizDetailDTO struct {
	ID               uint                  `json:"id"`
	CourseID         uint                  `json:"course_id"`
	Title            string                `json:"title"`
	Description      string                `json:"description,omitempty"`
	TimeLimitMinutes int                   `json:"time_limit_minutes"`
	Questions        []QuestionResponseDTO `json:"questions"`
	CreatedAt        time.Time             `json:"created_at"`
}

// QuizSummaryDTO is used for listing the published quizzes of a course.
type QuizSummaryDTO struct {
	ID               uint      `json:"id"`
	CourseID         uint      `json:"course_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	TimeLimitMinutes int       `json:"time_limit_minutes"`
	QuestionCount    int       `json:"question_count"`
	CreatedAt        time.Time `json:"created_at"`
}
