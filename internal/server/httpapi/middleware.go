package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mealgenie/backend/internal/server/auth"
)

const userIDKey = "userID"

// sessionGuard rejects the request before any handler runs unless it
// carries a valid bearer token. All failure modes get the same 401 shape.
func (s *Server) sessionGuard() gin.HandlerFunc {
	secret := []byte(s.cfg.Auth.SecretKey)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			newErrorResponse(c, http.StatusUnauthorized, "No token")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			newErrorResponse(c, http.StatusUnauthorized, "No token")
			return
		}

		userID, err := auth.GetUserIDFromToken(parts[1], secret)
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the id the session guard stored on the context.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
