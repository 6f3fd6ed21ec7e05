package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hasanarofid/lms-assessment/internal/dto"
	"github.com/hasanarofid/lms-assessment/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizSvc service.QuizService
}

func NewQuizController(quizSvc service.QuizService) *QuizController {
	return &QuizController{quizSvc: quizSvc}
}

// GetQuiz godoc
// @Summary Get a quiz for taking
// @Description Returns a published quiz with its ordered questions and options. Option correctness is never included in this payload.
// @Tags quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{quiz_id} [get]
func (ctrl *QuizController) GetQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("quiz_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}

	quiz, err := ctrl.quizSvc.GetQuizForTaking(c.Request.Context(), uint(quizID))
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("GetQuiz: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quiz"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// ListCourseQuizzes godoc
// @Summary List the published quizzes of a course
// @Tags quizzes
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{course_id}/quizzes [get]
func (ctrl *QuizController) ListCourseQuizzes(c *gin.Context) {
	courseID, err := strconv.ParseUint(c.Param("course_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid course ID format"})
		return
	}

	quizzes, err := ctrl.quizSvc.ListCourseQuizzes(c.Request.Context(), uint(courseID))
	if err != nil {
		log.Error().Err(err).Uint64("courseID", courseID).Msg("ListCourseQuizzes: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes"})
		return
	}
	c.JSON(http.StatusOK, quizzes)
}
