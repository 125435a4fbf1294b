package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lunara-health/lunara/internal/attempt"
	"github.com/lunara-health/lunara/internal/store"
)

type startAttemptRequest struct {
	QuizID string `json:"quiz_id" binding:"required"`
}

type submitAnswerRequest struct {
	QuestionIndex *int   `json:"question_index" binding:"required"`
	Answer        string `json:"answer" binding:"required"`
}

// POST /api/v1/attempts
func (s *Server) startAttempt(c *gin.Context) {
	var req startAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quiz_id is required"})
		return
	}

	rec, err := s.attempts.Start(c.Request.Context(), currentUser(c), req.QuizID)
	if err != nil {
		s.attemptError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attemptView(rec))
}

// POST /api/v1/attempts/:id/answers
func (s *Server) submitAnswer(c *gin.Context) {
	var req submitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question_index and answer are required"})
		return
	}

	fb, err := s.attempts.SubmitAnswer(c.Request.Context(), currentUser(c), c.Param("id"), *req.QuestionIndex, req.Answer)
	if err != nil {
		s.attemptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"is_correct":       fb.IsCorrect,
		"correct_answer":   fb.CorrectAnswer,
		"explanation":      fb.Explanation,
		"learning_point":   fb.LearningPoint,
		"current_question": fb.CurrentQuestion,
	})
}

// POST /api/v1/attempts/:id/complete
func (s *Server) completeAttempt(c *gin.Context) {
	res, err := s.attempts.Complete(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		s.attemptError(c, err)
		return
	}
	body := attemptView(res.Attempt)
	body["new_badges"] = res.NewBadges
	c.JSON(http.StatusOK, body)
}

// GET /api/v1/attempts/:id
func (s *Server) getAttempt(c *gin.Context) {
	rec, err := s.attempts.Get(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		s.attemptError(c, err)
		return
	}
	c.JSON(http.StatusOK, attemptView(rec))
}

// GET /api/v1/me/attempts
func (s *Server) listAttempts(c *gin.Context) {
	recs, err := s.attempts.History(c.Request.Context(), currentUser(c), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	out := make([]gin.H, 0, len(recs))
	for _, rec := range recs {
		out = append(out, attemptView(rec))
	}
	c.JSON(http.StatusOK, gin.H{"attempts": out})
}

// attemptError maps attempt-service failures onto response codes.
func (s *Server) attemptError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, attempt.ErrNoQuizID), errors.Is(err, attempt.ErrInvalidQuestion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, attempt.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your attempt"})
	case errors.Is(err, attempt.ErrQuizNotFound), errors.Is(err, attempt.ErrAttemptNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, attempt.ErrQuizAlreadyCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "attempt already completed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed"})
	}
}

func attemptView(rec *store.AttemptRecord) gin.H {
	view := gin.H{
		"attempt_id":       rec.ID,
		"quiz_id":          rec.QuizID,
		"topic":            rec.Topic,
		"status":           rec.Status,
		"current_question": rec.CurrentQuestion,
		"answers":          len(rec.Answers),
		"started_at":       rec.StartedAt,
	}
	if rec.Status == store.AttemptCompleted {
		view["score"] = rec.Score
		view["correct_answers"] = rec.CorrectAnswers
		view["total_questions"] = rec.TotalQuestions
		view["completed_at"] = rec.CompletedAt
	}
	return view
}
