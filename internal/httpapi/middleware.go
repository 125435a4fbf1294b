package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// userKey is the gin context key holding the authenticated user's email.
const userKey = "userEmail"

// requireAuth validates the bearer token and stashes the caller's
// identity in the request context.
func (s *Server) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	email, err := s.tokens.Verify(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	c.Set(userKey, email)
	c.Next()
}

// currentUser returns the authenticated identity set by requireAuth.
func currentUser(c *gin.Context) string {
	return c.GetString(userKey)
}
