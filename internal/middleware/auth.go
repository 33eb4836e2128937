package middleware

import (
	"net/http"
	"strings"

	"github.com/Het4705/chic-dashboard-haven/internal/auth"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards console routes. It expects an
// "Authorization: Bearer <token>" header, validates the token and puts
// the admin id into the context as "adminID".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be 'Bearer <token>'"})
			return
		}

		adminID, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}
