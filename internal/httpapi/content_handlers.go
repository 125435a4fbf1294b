package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lunara-health/lunara/internal/catalog"
)

// GET /api/v1/tags
func (s *Server) listTags(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tags":      catalog.ContentTags(),
		"interests": catalog.Interests(),
	})
}

// GET /api/v1/content
// Lists the topics recommended for the caller's interests and age band,
// alongside their current difficulty tier.
func (s *Server) listContent(c *gin.Context) {
	user, ok := s.lookupUser(c)
	if !ok {
		return
	}

	rec, err := s.progress.Get(c.Request.Context(), user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load content"})
		return
	}

	group := catalog.AgeGroupForAge(user.Age)
	c.JSON(http.StatusOK, gin.H{
		"topics":             catalog.RecommendedTopics(user.Interests, group),
		"age_group":          group,
		"current_difficulty": rec.CurrentDifficulty,
	})
}
