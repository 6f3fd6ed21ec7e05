package dto

import "time"

// AttemptSubmitDTO carries one finished quiz session to the grading engine.
// Answers maps question IDs to submitted values: an option ID for multiple
// choice, the literal "true"/"false" for true/false, or free text for essays.
// Unanswered questions are simply absent. The user identity comes from the
// access token, never from this payload.
type AttemptSubmitDTO struct {
	QuizID           uint            `json:"quiz_id" binding:"required"`
	Answers          map[uint]string `json:"answers" binding:"required"`
	TimeTakenMinutes int             `json:"time_taken_minutes" binding:"min=0"`
}

// ScoreResultDTO is the grading engine's verdict on one submission.
type ScoreResultDTO struct {
	Score          int  `json:"score"`
	CorrectAnswers int  `json:"correct_answers"`
	TotalQuestions int  `json:"total_questions"`
	Passed         bool `json:"passed"`
}

// AttemptSummaryDTO is one row of a user's attempt history.
type AttemptSummaryDTO struct {
	ID               uint      `json:"id"`
	QuizID           uint      `json:"quiz_id"`
	Score            int       `json:"score"`
	TotalQuestions   int       `json:"total_questions"`
	CorrectAnswers   int       `json:"correct_answers"`
	TimeTakenMinutes int       `json:"time_taken_minutes"`
	CreatedAt        time.Time `json:"created_at"`
}
