package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lunara-health/lunara/internal/catalog"
	"github.com/lunara-health/lunara/internal/progress"
	"github.com/lunara-health/lunara/internal/store"
)

type meResponse struct {
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	Age       int      `json:"age"`
	AgeGroup  string   `json:"age_group"`
	Interests []string `json:"interests"`
}

type meUpdateRequest struct {
	Username  *string  `json:"username"`
	Age       *int     `json:"age"`
	Interests []string `json:"interests"`
}

// GET /api/v1/me
func (s *Server) getMe(c *gin.Context) {
	user, ok := s.lookupUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toMeResponse(user))
}

// PUT /api/v1/me
func (s *Server) updateMe(c *gin.Context) {
	var req meUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}
	if req.Age != nil && (*req.Age < 13 || *req.Age > 120) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "age must be between 13 and 120"})
		return
	}

	email := currentUser(c)
	update := store.UserUpdate{
		Username:  req.Username,
		Age:       req.Age,
		Interests: req.Interests,
	}
	if err := s.users.Update(c.Request.Context(), email, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile update failed"})
		return
	}

	user, ok := s.lookupUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toMeResponse(user))
}

// GET /api/v1/me/progress
func (s *Server) getProgress(c *gin.Context) {
	rec, err := s.progress.Get(c.Request.Context(), currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quiz_scores":        rec.QuizScores,
		"completed_topics":   rec.CompletedTopics,
		"current_difficulty": rec.CurrentDifficulty,
		"streak_days":        rec.StreakDays,
		"total_points":       rec.TotalPoints,
		"badges":             rec.Badges,
	})
}

// GET /api/v1/me/stats
func (s *Server) getStats(c *gin.Context) {
	ctx := c.Request.Context()
	email := currentUser(c)

	rec, err := s.progress.Get(ctx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	completed, err := s.attempts.History(ctx, email, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	avg := 0.0
	if len(rec.QuizScores) > 0 {
		sum := 0.0
		for _, score := range rec.QuizScores {
			sum += score
		}
		avg = sum / float64(len(rec.QuizScores))
	}

	badges := make([]gin.H, 0, len(rec.Badges))
	for _, b := range rec.Badges {
		badges = append(badges, gin.H{"id": b, "description": progress.BadgeDescriptions[b]})
	}

	c.JSON(http.StatusOK, gin.H{
		"quizzes_completed":  len(completed),
		"average_score":      avg,
		"current_difficulty": rec.CurrentDifficulty,
		"completed_topics":   len(rec.CompletedTopics),
		"streak_days":        rec.StreakDays,
		"total_points":       rec.TotalPoints,
		"badges":             badges,
	})
}

// lookupUser loads the authenticated user's record, writing the error
// response itself on failure.
func (s *Server) lookupUser(c *gin.Context) (*store.UserRecord, bool) {
	user, err := s.users.GetByEmail(c.Request.Context(), currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return nil, false
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return nil, false
	}
	return user, true
}

func toMeResponse(user *store.UserRecord) meResponse {
	return meResponse{
		Email:     user.Email,
		Username:  user.Username,
		Age:       user.Age,
		AgeGroup:  string(catalog.AgeGroupForAge(user.Age)),
		Interests: user.Interests,
	}
}
