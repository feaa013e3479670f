package controller

import (
	"errors"
	"strconv"

	"kettolingo_backend/internal/model"
	"kettolingo_backend/internal/service"
	"kettolingo_backend/internal/util"
	"kettolingo_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{
		QuizService: quizService,
	}
}

// Generate godoc
// @Summary Generate a quiz
// @Description Builds one multiple-choice question per word in the category. Prompts are in the foreign language, options in the native language.
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param nativeId path int true "native language id"
// @Param foreignId path int true "foreign language id"
// @Param categoryId path int true "category id"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/quiz/{nativeId}/{foreignId}/{categoryId} [get]
func (c *QuizController) Generate(ctx *gin.Context) {
	nativeID := ctx.Param("nativeId")
	foreignID := ctx.Param("foreignId")
	categoryID := util.MustParseUint(ctx.Param("categoryId"))

	questions, err := c.QuizService.Generate(nativeID, foreignID, categoryID)
	if err != nil {
		if errors.Is(err, util.ErrInvalidLanguage) {
			util.BadRequest(ctx, "invalid language selection")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.QuizGenerated.WithLabelValues(foreignID, strconv.FormatUint(uint64(categoryID), 10)).
		Add(float64(len(questions)))

	util.Success(ctx, questions)
}

// swagger:model RecordResultRequest
type RecordResultRequest struct {
	ForeignLanguageID uint               `json:"foreign_language_id" binding:"required"`
	CategoryID        uint               `json:"category_id" binding:"required"`
	Score             int                `json:"score"`
	Details           []model.QuizDetail `json:"details" binding:"required"`
}

// RecordResult godoc
// @Summary Record a completed quiz
// @Description Persists the attempt with its per-word outcomes as one atomic write
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body RecordResultRequest true "attempt data"
// @Success 201 {object} util.Response{data=model.QuizAttempt}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quiz/results [post]
func (c *QuizController) RecordResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req RecordResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.QuizService.Record(claims.UserID, req.ForeignLanguageID, req.CategoryID, req.Score, req.Details)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidLanguage):
			util.BadRequest(ctx, "invalid language selection")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "user not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, attempt)
}
