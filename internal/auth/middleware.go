package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the caller-supplied opaque member identifier.
// Identity provisioning happens upstream (gateway / mobile client session);
// this service only requires the identifier to be present.
const UserIDHeader = "X-User-ID"

// RequireUser is a Gin middleware that extracts the member identifier from
// the X-User-ID header and stores it in the request context.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing X-User-ID header",
			})
			return
		}

		c.Set("userID", userID)

		c.Next()
	}
}
