package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealgenie/backend/internal/server/ai"
)

type aiRecipeRequest struct {
	Ingredients []string `json:"ingredients"`
}

type aiSearchRequest struct {
	Query string `json:"query"`
}

// POST /ai/recipe
func (s *Server) AIRecipe(c *gin.Context) {
	log := s.log.With("op", "httpapi.AIRecipe")

	var req aiRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Ingredients) == 0 {
		newErrorResponse(c, http.StatusBadRequest, "Ingredients are required")
		return
	}

	recipe, err := s.ai.GenerateRecipe(c.Request.Context(), req.Ingredients)
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			c.JSON(http.StatusOK, gin.H{"recipe": "AI disabled"})
			return
		}
		log.Error(c.Request.Context(), "failed to generate recipe", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "AI generation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// POST /ai/search
func (s *Server) AISearch(c *gin.Context) {
	log := s.log.With("op", "httpapi.AISearch")

	var req aiSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		newErrorResponse(c, http.StatusBadRequest, "Query is required")
		return
	}

	result, err := s.ai.SearchRecipe(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			c.JSON(http.StatusOK, gin.H{"recipe": "AI disabled"})
			return
		}
		// degrade to a usable payload instead of failing the search
		log.Warn(c.Request.Context(), "ai search failed, serving fallback", "error", err)
		c.JSON(http.StatusOK, ai.SearchResult{
			Title:       "Recipe Unavailable",
			Description: req.Query,
			Recipe:      "AI temporarily unavailable. Try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
