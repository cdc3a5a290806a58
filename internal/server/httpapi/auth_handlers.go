package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealgenie/backend/internal/common"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// POST /register
func (s *Server) Register(c *gin.Context) {
	log := s.log.With("op", "httpapi.Register")

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		newErrorResponse(c, http.StatusBadRequest, "All fields are required")
		return
	}

	user, token, err := s.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			newErrorResponse(c, http.StatusBadRequest, "User already exists")
			return
		}
		log.Error(c.Request.Context(), "failed to register user", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		Message: "Registered successfully",
		Token:   token,
		Name:    user.Name,
		Email:   user.Email,
	})
}

// POST /login
func (s *Server) Login(c *gin.Context) {
	log := s.log.With("op", "httpapi.Login")

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// unknown email and wrong password are deliberately the same response
		if errors.Is(err, common.ErrUnauthorized) {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error(c.Request.Context(), "failed to login user", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Message: "Logged in",
		Token:   token,
		Name:    user.Name,
		Email:   user.Email,
	})
}

type profileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GET /me
func (s *Server) GetMe(c *gin.Context) {
	log := s.log.With("op", "httpapi.GetMe")

	user, err := s.users.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "User not found")
			return
		}
		log.Error(c.Request.Context(), "failed to load profile", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, profileResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

type updateMeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PUT /me
func (s *Server) UpdateMe(c *gin.Context) {
	log := s.log.With("op", "httpapi.UpdateMe")

	var req updateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		newErrorResponse(c, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := s.users.UpdateProfile(c.Request.Context(), currentUserID(c), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			newErrorResponse(c, http.StatusBadRequest, "Email already in use")
			return
		}
		log.Error(c.Request.Context(), "failed to update profile", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, profileResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// POST /forgot-password
func (s *Server) ForgotPassword(c *gin.Context) {
	log := s.log.With("op", "httpapi.ForgotPassword")

	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		newErrorResponse(c, http.StatusBadRequest, "Email is required")
		return
	}

	err := s.users.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "User not found")
			return
		}
		log.Error(c.Request.Context(), "failed to send reset email", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Email failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reset email sent!"})
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

// PUT /reset-password/:token
func (s *Server) ResetPassword(c *gin.Context) {
	log := s.log.With("op", "httpapi.ResetPassword")

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		newErrorResponse(c, http.StatusBadRequest, "Password is required")
		return
	}

	err := s.users.ResetPassword(c.Request.Context(), c.Param("token"), req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidOrExpiredToken) {
			newErrorResponse(c, http.StatusBadRequest, "Invalid or expired token")
			return
		}
		log.Error(c.Request.Context(), "failed to reset password", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful!"})
}
