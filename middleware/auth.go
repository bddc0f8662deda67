// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"tutorhub/utils"

	"github.com/gin-gonic/gin"
)

// NamespaceKey is the gin context key holding the availability namespace.
const NamespaceKey = "namespace"

// TutorNamespaceMiddleware resolves whose availability a request edits from
// the bearer token subject. Without a token the request uses defaultNamespace
// unless required is set.
func TutorNamespaceMiddleware(required bool, defaultNamespace string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				utils.JSONError(c, http.StatusUnauthorized, "Missing Authorization header", "")
				return
			}
			c.Set(NamespaceKey, defaultNamespace)
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid Authorization header", "expected a Bearer token")
			return
		}
		tutorID, err := utils.ExtractIDFromToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid token", err.Error())
			return
		}

		c.Set(NamespaceKey, tutorID)
		c.Next()
	}
}

// Namespace reads the namespace set by TutorNamespaceMiddleware.
func Namespace(c *gin.Context, fallback string) string {
	if v, ok := c.Get(NamespaceKey); ok {
		if ns, ok := v.(string); ok && ns != "" {
			return ns
		}
	}
	return fallback
}
