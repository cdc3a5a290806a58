package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealgenie/backend/internal/common"
)

type pantryItemRequest struct {
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	ExpiresAt string `json:"expiresAt"`
}

// GET /pantry
func (s *Server) ListPantry(c *gin.Context) {
	log := s.log.With("op", "httpapi.ListPantry")

	items, err := s.pantry.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		log.Error(c.Request.Context(), "failed to list pantry", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, items)
}

// POST /pantry
func (s *Server) AddPantryItem(c *gin.Context) {
	log := s.log.With("op", "httpapi.AddPantryItem")

	var req pantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		newErrorResponse(c, http.StatusBadRequest, "Name is required")
		return
	}

	item, err := s.pantry.Add(c.Request.Context(), currentUserID(c), req.Name, req.Quantity, req.ExpiresAt)
	if err != nil {
		log.Error(c.Request.Context(), "failed to add pantry item", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// PUT /pantry/:id
func (s *Server) UpdatePantryItem(c *gin.Context) {
	log := s.log.With("op", "httpapi.UpdatePantryItem")

	var req pantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		newErrorResponse(c, http.StatusBadRequest, "Name is required")
		return
	}

	item, err := s.pantry.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req.Name, req.Quantity, req.ExpiresAt)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Item not found")
			return
		}
		log.Error(c.Request.Context(), "failed to update pantry item", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DELETE /pantry/:id
func (s *Server) DeletePantryItem(c *gin.Context) {
	log := s.log.With("op", "httpapi.DeletePantryItem")

	err := s.pantry.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Item not found")
			return
		}
		log.Error(c.Request.Context(), "failed to delete pantry item", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
