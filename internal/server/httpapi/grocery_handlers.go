package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealgenie/backend/internal/common"
)

type groceryItemRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Bought   bool   `json:"bought"`
}

// GET /grocery
func (s *Server) ListGrocery(c *gin.Context) {
	log := s.log.With("op", "httpapi.ListGrocery")

	items, err := s.grocery.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		log.Error(c.Request.Context(), "failed to list grocery items", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, items)
}

// POST /grocery
func (s *Server) AddGroceryItem(c *gin.Context) {
	log := s.log.With("op", "httpapi.AddGroceryItem")

	var req groceryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		newErrorResponse(c, http.StatusBadRequest, "Name is required")
		return
	}

	item, err := s.grocery.Add(c.Request.Context(), currentUserID(c), req.Name, req.Quantity)
	if err != nil {
		log.Error(c.Request.Context(), "failed to add grocery item", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// PUT /grocery/:id
func (s *Server) UpdateGroceryItem(c *gin.Context) {
	log := s.log.With("op", "httpapi.UpdateGroceryItem")

	var req groceryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		newErrorResponse(c, http.StatusBadRequest, "Name is required")
		return
	}

	item, err := s.grocery.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req.Name, req.Quantity, req.Bought)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Item not found")
			return
		}
		log.Error(c.Request.Context(), "failed to update grocery item", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DELETE /grocery/:id
func (s *Server) DeleteGroceryItem(c *gin.Context) {
	log := s.log.With("op", "httpapi.DeleteGroceryItem")

	err := s.grocery.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Item not found")
			return
		}
		log.Error(c.Request.Context(), "failed to delete grocery item", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
