package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader is the header checked by the auth middleware. The
// launcher integrations authenticate with it.
const APIKeyHeader = "X-Api-Key"

// NewAuthMiddleware validates the static API key on every request.
// An empty configured key disables the check entirely, the default
// for local single-user deployments.
func NewAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(APIKeyHeader)
		if provided == "" {
			if q := c.Query("api_key"); q != "" {
				provided = q
			}
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
			c.Abort()
			return
		}

		c.Next()
	}
}
