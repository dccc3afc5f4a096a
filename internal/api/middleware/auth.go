// server/internal/api/middleware/auth.go
package middleware

import (
	"net/http"

	"ecoconnect-api-server/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireSession gates a route group on the session store holding an
// authenticated user. The store is the single source of truth here; the
// durable mirror is never consulted directly.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := store.Current()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Set("user", user)
		c.Set("username", user.Username)

		c.Next()
	}
}
