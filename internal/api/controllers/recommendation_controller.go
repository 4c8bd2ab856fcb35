package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"escapade/internal/matching"
	"escapade/internal/models/request_models"
	"escapade/internal/services"
	"escapade/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
	embeddingService      services.EmbeddingServiceInterface
	quizService           services.QuizServiceInterface
}

func NewRecommendationController(
	recommendationService services.RecommendationServiceInterface,
	embeddingService services.EmbeddingServiceInterface,
	quizService services.QuizServiceInterface,
) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
		embeddingService:      embeddingService,
		quizService:           quizService,
	}
}

// Recommend godoc
// @Summary Recommend activities
// @Description Ask the model for the best activities given quiz answers, falling back to local scoring when the model is unavailable
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body request_models.QuizMatchRequest true "Answers payload (session id or inline answers)"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /quiz/recommendations [post]
func (r *RecommendationController) Recommend(c *gin.Context) {
	var req request_models.QuizMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	var answers matching.Answers
	switch {
	case len(req.Answers) > 0:
		answers = matching.ParseAnswers(req.Answers)
	case req.SessionID != "":
		stored, err := r.quizService.SessionAnswers(req.SessionID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		answers = stored
	default:
		answers = matching.Answers{}
	}

	activities, err := r.recommendationService.Recommend(c.Request.Context(), answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Recommendations computed successfully")
}

// SimilarActivities godoc
// @Summary Find similar activities
// @Description Nearest-neighbour search over stored activity embeddings
// @Tags Recommendations
// @Produce json
// @Param id path int true "Activity ID"
// @Param limit query int false "Maximum results (default 5)"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /activities/{id}/similar [get]
func (r *RecommendationController) SimilarActivities(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	activities, err := r.embeddingService.SimilarActivities(c.Request.Context(), id, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Similar activities fetched successfully")
}

// ReindexEmbeddings godoc
// @Summary Rebuild the embedding index
// @Description Recompute and store one embedding per catalog activity
// @Tags Recommendations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/embeddings/reindex [post]
func (r *RecommendationController) ReindexEmbeddings(c *gin.Context) {
	indexed, err := r.embeddingService.ReindexCatalog(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"indexed": indexed}, "Embedding index rebuilt")
}
