package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealgenie/backend/internal/common"
)

type saveRecipeRequest struct {
	Title    string `json:"title"`
	Recipe   string `json:"recipe"`
	ImageKey string `json:"imageKey"`
}

// GET /recipes
func (s *Server) ListRecipes(c *gin.Context) {
	log := s.log.With("op", "httpapi.ListRecipes")

	recipes, err := s.recipes.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		log.Error(c.Request.Context(), "failed to list recipes", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// POST /recipes
func (s *Server) SaveRecipe(c *gin.Context) {
	log := s.log.With("op", "httpapi.SaveRecipe")

	var req saveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Recipe == "" {
		newErrorResponse(c, http.StatusBadRequest, "Title and recipe are required")
		return
	}

	recipe, err := s.recipes.Save(c.Request.Context(), currentUserID(c), req.Title, req.Recipe, req.ImageKey)
	if err != nil {
		log.Error(c.Request.Context(), "failed to save recipe", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// DELETE /recipes/:id
func (s *Server) DeleteRecipe(c *gin.Context) {
	log := s.log.With("op", "httpapi.DeleteRecipe")

	err := s.recipes.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Recipe not found")
			return
		}
		log.Error(c.Request.Context(), "failed to delete recipe", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// POST /recipes/image-upload
func (s *Server) RecipeImageUpload(c *gin.Context) {
	log := s.log.With("op", "httpapi.RecipeImageUpload")

	key, url, err := s.recipes.NewImageUploadURL(c.Request.Context())
	if err != nil {
		log.Error(c.Request.Context(), "failed to presign upload", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}

// GET /recipes/:id/image
func (s *Server) RecipeImageURL(c *gin.Context) {
	log := s.log.With("op", "httpapi.RecipeImageURL")

	url, err := s.recipes.ImageURL(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Recipe not found")
			return
		}
		log.Error(c.Request.Context(), "failed to presign image", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
