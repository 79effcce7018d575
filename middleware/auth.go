package middleware

import (
	"net/http"
	"strings"

	"tinyhouse/utils"

	"github.com/gin-gonic/gin"
)

// ViewerIDKey is the gin context key holding the authenticated viewer's ID.
const ViewerIDKey = "viewerID"

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// JWTAuthMiddleware resolves the viewer from the bearer token. When optional is
// true, requests without a valid token pass through anonymously.
func JWTAuthMiddleware(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			if optional {
				c.Next()
				return
			}
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "missing or invalid Authorization header")
			return
		}

		viewerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			if optional {
				c.Next()
				return
			}
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "invalid token")
			return
		}

		c.Set(ViewerIDKey, viewerID)
		c.Next()
	}
}

// ViewerID returns the authenticated viewer, or "" for anonymous requests.
func ViewerID(c *gin.Context) string {
	return c.GetString(ViewerIDKey)
}
