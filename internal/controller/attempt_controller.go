package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hasanarofid/lms-assessment/internal/auth"
	"github.com/hasanarofid/lms-assessment/internal/dto"
	"github.com/hasanarofid/lms-assessment/internal/service"
	"github.com/rs/zerolog/log"
)

type AttemptController struct {
	gradingSvc service.GradingService
	attemptSvc service.AttemptService
}

func NewAttemptController(gradingSvc service.GradingService, attemptSvc service.AttemptService) *AttemptController {
	return &AttemptController{gradingSvc: gradingSvc, attemptSvc: attemptSvc}
}

// SubmitAttempt godoc
// @Summary Submit a finished quiz attempt for grading
// @Description Grades the submitted answer map against the quiz's current questions and records one attempt. The user identity comes from the access token.
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.AttemptSubmitDTO true "Quiz ID, answer map and elapsed minutes"
// @Success 200 {object} dto.ScoreResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid access token"
// @Failure 500 {object} dto.ErrorResponse "Grading failed"
// @Router /quiz-attempts [post]
func (ctrl *AttemptController) SubmitAttempt(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access token required"})
		return
	}

	var req dto.AttemptSubmitDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAttempt: failed to bind request body")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := ctrl.gradingSvc.Grade(c.Request.Context(), req.QuizID, userID, req.Answers, req.TimeTakenMinutes)
	if err != nil {
		log.Error().Err(err).Uint("quizID", req.QuizID).Uint("userID", userID).Msg("SubmitAttempt: grading failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to grade attempt"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListMyAttempts godoc
// @Summary List the authenticated user's quiz attempts
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param quiz_id query int false "Narrow the history to one quiz"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid access token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz-attempts [get]
func (ctrl *AttemptController) ListMyAttempts(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access token required"})
		return
	}

	var quizID *uint
	if quizIDStr := c.Query("quiz_id"); quizIDStr != "" {
		val, err := strconv.ParseUint(quizIDStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format in query"})
			return
		}
		id := uint(val)
		quizID = &id
	}

	attempts, err := ctrl.attemptSvc.ListUserAttempts(userID, quizID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListMyAttempts: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempts"})
		return
	}
	c.JSON(http.StatusOK, attempts)
}
