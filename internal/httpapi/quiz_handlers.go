package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lunara-health/lunara/internal/catalog"
	"github.com/lunara-health/lunara/internal/progress"
	"github.com/lunara-health/lunara/internal/quizgen"
	"github.com/lunara-health/lunara/internal/store"

	entschema "github.com/lunara-health/lunara/ent/schema"
)

type generateQuizRequest struct {
	Topic        string   `json:"topic" binding:"required"`
	Tags         []string `json:"tags"`
	NumQuestions int      `json:"num_questions"`
}

// quizQuestionView is a question as served to the client: no correct
// answer, no explanation. Those come back per submission.
type quizQuestionView struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	TopicTag string   `json:"topic_tag"`
}

// POST /api/v1/quizzes
func (s *Server) generateQuiz(c *gin.Context) {
	var req generateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz request"})
		return
	}
	tags, err := catalog.ParseContentTags(req.Tags)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := s.lookupUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	rec, err := s.progress.Get(ctx, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "quiz generation failed"})
		return
	}
	difficulty, err := catalog.ParseDifficulty(rec.CurrentDifficulty)
	if err != nil {
		difficulty = catalog.DifficultyBeginner
	}

	adjustment := progress.Analyze(rec)
	adjustment.RecommendedTopics = catalog.RecommendedTopics(user.Interests, catalog.AgeGroupForAge(user.Age))

	quiz, err := s.generator.Generate(ctx, quizgen.GenerateInput{
		Topic:        req.Topic,
		Tags:         tags,
		AgeGroup:     catalog.AgeGroupForAge(user.Age),
		Difficulty:   difficulty,
		NumQuestions: req.NumQuestions,
		Adjustment:   adjustment,
	})
	if err != nil {
		var perr *quizgen.QuizParsingError
		if errors.As(err, &perr) {
			// The model produced an unusable response; the client did
			// nothing wrong, but retrying is their call.
			c.JSON(http.StatusBadGateway, gin.H{"error": "generated quiz failed validation, please retry"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "quiz generation failed"})
		return
	}

	stored := toStoredQuiz(quiz)
	id, err := s.quizzes.Store(ctx, stored, s.quizTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store quiz"})
		return
	}

	c.JSON(http.StatusCreated, quizResponse(id, stored))
}

// GET /api/v1/quizzes/:id
func (s *Server) getQuiz(c *gin.Context) {
	quiz, err := s.quizzes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load quiz"})
		return
	}
	if quiz == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found or expired"})
		return
	}
	c.JSON(http.StatusOK, quizResponse(quiz.ID, quiz))
}

func toStoredQuiz(quiz *quizgen.ParsedQuiz) *store.StoredQuiz {
	questions := make([]entschema.QuizDocument, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = entschema.QuizDocument{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			LearningPoint: q.LearningPoint,
			Difficulty:    q.DifficultyLevel,
			TopicTag:      q.TopicTag,
		}
	}
	return &store.StoredQuiz{
		Topic:      quiz.Metadata.Topic,
		Difficulty: quiz.Metadata.Difficulty,
		Questions:  questions,
		AdaptiveElements: entschema.AdaptiveElements{
			DifficultyProgression: quiz.Metadata.AdaptiveElements.DifficultyProgression,
			TopicRelationships:    quiz.Metadata.AdaptiveElements.TopicRelationships,
			ReinforcementPoints:   quiz.Metadata.AdaptiveElements.ReinforcementPoints,
		},
		TotalPoints:        quiz.TotalPoints,
		LearningObjectives: quiz.LearningObjectives,
	}
}

func quizResponse(id string, quiz *store.StoredQuiz) gin.H {
	questions := make([]quizQuestionView, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = quizQuestionView{
			Index:    i,
			Question: q.Question,
			Options:  q.Options,
			TopicTag: q.TopicTag,
		}
	}
	return gin.H{
		"quiz_id":             id,
		"topic":               quiz.Topic,
		"difficulty":          quiz.Difficulty,
		"questions":           questions,
		"total_points":        quiz.TotalPoints,
		"learning_objectives": quiz.LearningObjectives,
		"expires_at":          quiz.ExpiresAt,
	}
}
