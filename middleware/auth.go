package middleware

import (
	"net/http"
	"strings"

	"hotel-platform/models"
	"hotel-platform/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireAuth guards write endpoints. The token comes from the access_token
// cookie set at login, with an Authorization header fallback for API clients.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			token = c.GetHeader("Authorization")
		}
		token = strings.TrimPrefix(strings.TrimSpace(token), "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		adminID, err := utils.ParseAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "could not validate credentials"})
			return
		}

		var admin models.Admin
		if err := db.First(&admin, adminID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account not found"})
			return
		}
		if !admin.IsActive {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "inactive account"})
			return
		}

		c.Set("admin", admin)
		c.Next()
	}
}
