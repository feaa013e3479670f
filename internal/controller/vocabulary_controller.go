package controller

import (
	"errors"

	"kettolingo_backend/internal/service"
	"kettolingo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VocabularyController struct {
	VocabularyService *service.VocabularyService
}

func NewVocabularyController(vocabularyService *service.VocabularyService) *VocabularyController {
	return &VocabularyController{
		VocabularyService: vocabularyService,
	}
}

// GetLanguages godoc
// @Summary List supported languages
// @Tags vocabulary
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Language}
// @Router /api/languages [get]
func (c *VocabularyController) GetLanguages(ctx *gin.Context) {
	languages, err := c.VocabularyService.Languages()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, languages)
}

// GetCategories godoc
// @Summary List vocabulary categories
// @Tags vocabulary
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /api/categories [get]
func (c *VocabularyController) GetCategories(ctx *gin.Context) {
	categories, err := c.VocabularyService.Categories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// GetWords godoc
// @Summary List the words of a category
// @Tags vocabulary
// @Produce json
// @Security ApiKeyAuth
// @Param categoryId path int true "category id"
// @Success 200 {object} util.Response{data=[]model.Word}
// @Failure 404 {object} util.Response
// @Router /api/categories/{categoryId}/words [get]
func (c *VocabularyController) GetWords(ctx *gin.Context) {
	categoryID := util.MustParseUint(ctx.Param("categoryId"))

	words, err := c.VocabularyService.WordsByCategory(categoryID)
	if err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.NotFound(ctx, "category not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, words)
}
