package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"escapade/internal/models/request_models"
	"escapade/internal/services"
	"escapade/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Create a new quiz session and return its id
// @Tags Quiz
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /quiz/start [post]
func (q *QuizController) StartSession(c *gin.Context) {
	utils.RespondSuccess(c, q.quizService.StartSession(), "Quiz session started")
}

// GetQuestions godoc
// @Summary Get quiz questions
// @Description Returns the question set for the requested quiz type
// @Tags Quiz
// @Produce json
// @Param type query string false "Quiz type: regular (default) or food"
// @Success 200 {object} utils.APIResponse
// @Router /quiz/questions [get]
func (q *QuizController) GetQuestions(c *gin.Context) {
	questions := q.quizService.Questions(c.Query("type"))
	utils.RespondSuccess(c, questions, "Questions fetched successfully")
}

// SubmitAnswer godoc
// @Summary Submit a quiz answer
// @Description Store one answer on the session, refreshing its TTL
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.QuizAnswerRequest true "Answer payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /quiz/answer [post]
func (q *QuizController) SubmitAnswer(c *gin.Context) {
	var req request_models.QuizAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	q.quizService.SubmitAnswer(req)
	utils.RespondSuccess(c, nil, "Answer recorded")
}

// ResetSession godoc
// @Summary Reset a quiz session
// @Description Clear all answers stored on the session
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.QuizResetRequest true "Reset payload"
// @Success 200 {object} utils.APIResponse
// @Router /quiz/reset [post]
func (q *QuizController) ResetSession(c *gin.Context) {
	var req request_models.QuizResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	q.quizService.Reset(req.SessionID)
	utils.RespondSuccess(c, nil, "Quiz session reset")
}

// Match godoc
// @Summary Match activities against quiz answers
// @Description Rank the catalog against session answers or inline answers. Inline answers take precedence.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.QuizMatchRequest true "Match payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /quiz/match [post]
func (q *QuizController) Match(c *gin.Context) {
	var req request_models.QuizMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := q.quizService.Match(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Match computed successfully")
}
