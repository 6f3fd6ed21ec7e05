package main

import (
	"time"

	"github.com/hasanarofid/lms-assessment/config"
	"github.com/hasanarofid/lms-assessment/database"
	"github.com/hasanarofid/lms-assessment/internal/auth"
	"github.com/hasanarofid/lms-assessment/internal/logger"
	"github.com/hasanarofid/lms-assessment/internal/model"
	"github.com/hasanarofid/lms-assessment/internal/repository"
	"github.com/rs/zerolog/log"
)

// Seeds a published sample quiz so the API can be exercised end to end, and
// prints an access token for a demo user.
func main() {
	logger.Init()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := db.AutoMigrate(&model.Quiz{}, &model.Question{}, &model.Option{}, &model.QuizAttempt{}); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}

	quizRepo := repository.NewQuizRepository(db)

	quiz := &model.Quiz{
		CourseID:         1,
		Title:            "Go Fundamentals Check",
		Description:      "Covers the first two lessons of the course.",
		TimeLimitMinutes: 10,
		IsPublished:      true,
		Questions: []model.Question{
			{
				QuestionText: "Which keyword declares a new variable with inferred type?",
				QuestionType: model.QuestionTypeMultipleChoice,
				Points:       2,
				OrderIndex:   1,
				Options: []model.Option{
					{OptionText: "var x = 1", IsCorrect: false, OrderIndex: 1},
					{OptionText: "x := 1", IsCorrect: true, OrderIndex: 2},
					{OptionText: "let x = 1", IsCorrect: false, OrderIndex: 3},
					{OptionText: "x = 1", IsCorrect: false, OrderIndex: 4},
				},
			},
			{
				QuestionText: "Which builtin appends to a slice?",
				QuestionType: model.QuestionTypeMultipleChoice,
				Points:       2,
				OrderIndex:   2,
				Options: []model.Option{
					{OptionText: "push", IsCorrect: false, OrderIndex: 1},
					{OptionText: "append", IsCorrect: true, OrderIndex: 2},
					{OptionText: "add", IsCorrect: false, OrderIndex: 3},
				},
			},
			{
				QuestionText: "A nil map can be written to without panicking.",
				QuestionType: model.QuestionTypeTrueFalse,
				Points:       1,
				OrderIndex:   3,
			},
			{
				QuestionText: "Explain when you would choose a channel over a mutex.",
				QuestionType: model.QuestionTypeEssay,
				Points:       5,
				OrderIndex:   4,
			},
		},
	}

	if err := quizRepo.Create(quiz); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed quiz")
	}
	log.Info().Uint("quizID", quiz.ID).Int("questions", len(quiz.Questions)).Msg("Sample quiz seeded")

	token, err := auth.NewMiddleware(cfg).Sign(1, 24*time.Hour)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to mint demo token")
	}
	log.Info().Str("token", token).Msg("Demo access token for user 1")
}
