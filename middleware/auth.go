package middleware

import (
	"net/http"
	"strings"

	"sanocare/utils"

	"github.com/gin-gonic/gin"
)

// OpsAuthMiddleware guards operations-dashboard endpoints. Writes on the
// bookings and paramedics tables assume an authenticated staff context;
// only the public booking insert is open.
func OpsAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		authHeader := c.GetHeader("Authorization")
		switch {
		case strings.HasPrefix(authHeader, "Bearer "):
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		case c.Query("token") != "":
			// Browser websocket clients cannot set headers.
			tokenString = c.Query("token")
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		adminID, email, err := utils.TokenClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("adminID", adminID)
		c.Set("adminEmail", email)
		c.Next()
	}
}
