package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealgenie/backend/internal/common"
)

type logNutritionRequest struct {
	Date string `json:"date"`
	Food string `json:"food"`
}

// GET /nutrition?date=YYYY-MM-DD
func (s *Server) GetNutritionDay(c *gin.Context) {
	log := s.log.With("op", "httpapi.GetNutritionDay")

	date := c.Query("date")
	if date == "" {
		newErrorResponse(c, http.StatusBadRequest, "Date is required")
		return
	}

	totals, err := s.nutrition.Day(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		log.Error(c.Request.Context(), "failed to load nutrition day", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, totals)
}

// POST /nutrition
func (s *Server) LogNutrition(c *gin.Context) {
	log := s.log.With("op", "httpapi.LogNutrition")

	var req logNutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Date == "" || req.Food == "" {
		newErrorResponse(c, http.StatusBadRequest, "Date and food are required")
		return
	}

	totals, err := s.nutrition.Log(c.Request.Context(), currentUserID(c), req.Date, req.Food)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Food not found")
			return
		}
		log.Error(c.Request.Context(), "failed to log nutrition", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, totals)
}
