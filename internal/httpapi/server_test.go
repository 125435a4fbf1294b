package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/lunara-health/lunara/internal/attempt"
	"github.com/lunara-health/lunara/internal/auth"
	"github.com/lunara-health/lunara/internal/progress"
	"github.com/lunara-health/lunara/internal/quizgen"
	"github.com/lunara-health/lunara/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// In-memory repositories.

type memUserRepo struct {
	users map[string]*store.UserRecord
}

func (m *memUserRepo) Create(_ context.Context, u *store.UserRecord) error {
	if _, ok := m.users[u.Email]; ok {
		return fmt.Errorf("email %s already registered", u.Email)
	}
	cp := *u
	m.users[u.Email] = &cp
	return nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*store.UserRecord, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) Update(_ context.Context, email string, fields store.UserUpdate) error {
	u, ok := m.users[email]
	if !ok {
		return fmt.Errorf("user %s not found", email)
	}
	if fields.Username != nil {
		u.Username = *fields.Username
	}
	if fields.Age != nil {
		u.Age = *fields.Age
	}
	if fields.Interests != nil {
		u.Interests = fields.Interests
	}
	return nil
}

type memQuizRepo struct {
	quizzes map[string]*store.StoredQuiz
	seq     int
}

func (m *memQuizRepo) Store(_ context.Context, quiz *store.StoredQuiz, ttl time.Duration) (string, error) {
	m.seq++
	id := fmt.Sprintf("quiz-%d", m.seq)
	quiz.ID = id
	quiz.ExpiresAt = time.Now().UTC().Add(ttl)
	m.quizzes[id] = quiz
	return id, nil
}

func (m *memQuizRepo) Get(_ context.Context, id string) (*store.StoredQuiz, error) {
	return m.quizzes[id], nil
}

type memAttemptRepo struct {
	recs map[string]*store.AttemptRecord
	seq  int
}

func (m *memAttemptRepo) Create(_ context.Context, rec *store.AttemptRecord) (string, error) {
	m.seq++
	id := fmt.Sprintf("attempt-%d", m.seq)
	cp := *rec
	cp.ID = id
	m.recs[id] = &cp
	return id, nil
}

func (m *memAttemptRepo) Get(_ context.Context, id string) (*store.AttemptRecord, error) {
	rec, ok := m.recs[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memAttemptRepo) Update(_ context.Context, rec *store.AttemptRecord) error {
	cp := *rec
	m.recs[rec.ID] = &cp
	return nil
}

func (m *memAttemptRepo) ListCompleted(_ context.Context, userID string, limit int) ([]*store.AttemptRecord, error) {
	var out []*store.AttemptRecord
	for _, rec := range m.recs {
		if rec.UserID == userID && rec.Status == store.AttemptCompleted {
			cp := *rec
			out = append(out, &cp)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memProgressRepo struct {
	recs map[string]*store.ProgressRecord
}

func (m *memProgressRepo) Get(_ context.Context, userID string) (*store.ProgressRecord, error) {
	rec, ok := m.recs[userID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memProgressRepo) Upsert(_ context.Context, rec *store.ProgressRecord) error {
	cp := *rec
	m.recs[rec.UserID] = &cp
	return nil
}

// stubGenerator returns a fixed quiz without calling any model.
type stubGenerator struct {
	quiz *quizgen.ParsedQuiz
	err  error
}

func (g *stubGenerator) Generate(_ context.Context, input quizgen.GenerateInput) (*quizgen.ParsedQuiz, error) {
	if g.err != nil {
		return nil, g.err
	}
	quiz := *g.quiz
	quiz.Metadata.Topic = input.Topic
	return &quiz, nil
}

func fixtureQuiz() *quizgen.ParsedQuiz {
	questions := make([]quizgen.QuizQuestion, 4)
	for i := range questions {
		questions[i] = quizgen.QuizQuestion{
			Question:        fmt.Sprintf("Q%d?", i+1),
			Options:         []string{"A) right", "B) wrong"},
			CorrectAnswer:   "A) right",
			Explanation:     "Because.",
			LearningPoint:   fmt.Sprintf("Point %d", i+1),
			DifficultyLevel: "beginner",
			TopicTag:        "general_wellness",
		}
	}
	return &quizgen.ParsedQuiz{
		Questions:          questions,
		Metadata:           quizgen.QuizMetadata{Difficulty: "beginner"},
		TotalPoints:        4,
		LearningObjectives: []string{"Point 1", "Point 2", "Point 3", "Point 4"},
	}
}

type fixture struct {
	router   *gin.Engine
	quizzes  *memQuizRepo
	progress *memProgressRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := &memUserRepo{users: make(map[string]*store.UserRecord)}
	quizzes := &memQuizRepo{quizzes: make(map[string]*store.StoredQuiz)}
	attempts := &memAttemptRepo{recs: make(map[string]*store.AttemptRecord)}
	progressRepo := &memProgressRepo{recs: make(map[string]*store.ProgressRecord)}

	progSvc := progress.NewService(progressRepo)
	attemptSvc := attempt.NewService(quizzes, attempts, progSvc)
	tokens, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	srv := NewServer(users, quizzes, progSvc, attemptSvc, &stubGenerator{quiz: fixtureQuiz()}, tokens)
	return &fixture{router: srv.Router(), quizzes: quizzes, progress: progressRepo}
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) registerUser(t *testing.T, email string) string {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/v1/register", "", gin.H{
		"email":     email,
		"username":  "tester",
		"password":  "long-enough-password",
		"age":       24,
		"interests": []string{"menstrual health", "general wellness"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	f.registerUser(t, "a@example.com")

	// Duplicate email.
	w := f.do(t, http.MethodPost, "/api/v1/register", "", gin.H{
		"email": "a@example.com", "username": "x", "password": "long-enough-password", "age": 30,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Good login.
	w = f.do(t, http.MethodPost, "/api/v1/login", "", gin.H{
		"email": "a@example.com", "password": "long-enough-password",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Wrong password.
	w = f.do(t, http.MethodPost, "/api/v1/login", "", gin.H{
		"email": "a@example.com", "password": "wrong-password-here",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/v1/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/me", "not-a-real-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateQuizHidesAnswers(t *testing.T) {
	f := newFixture(t)
	token := f.registerUser(t, "a@example.com")

	w := f.do(t, http.MethodPost, "/api/v1/quizzes", token, gin.H{
		"topic": "Period Care",
		"tags":  []string{"menstrual_health"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NotContains(t, w.Body.String(), "correct_answer")
	require.NotContains(t, w.Body.String(), "explanation")

	var resp struct {
		QuizID    string `json:"quiz_id"`
		Topic     string `json:"topic"`
		Questions []struct {
			Question string   `json:"question"`
			Options  []string `json:"options"`
		} `json:"questions"`
		TotalPoints int `json:"total_points"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Period Care", resp.Topic)
	require.Len(t, resp.Questions, 4)
	require.Equal(t, 4, resp.TotalPoints)

	// The stored quiz is retrievable by id.
	w = f.do(t, http.MethodGet, "/api/v1/quizzes/"+resp.QuizID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateQuizRejectsUnknownTag(t *testing.T) {
	f := newFixture(t)
	token := f.registerUser(t, "a@example.com")

	w := f.do(t, http.MethodPost, "/api/v1/quizzes", token, gin.H{
		"topic": "Period Care",
		"tags":  []string{"astrology"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUnknownQuiz(t *testing.T) {
	f := newFixture(t)
	token := f.registerUser(t, "a@example.com")

	w := f.do(t, http.MethodGet, "/api/v1/quizzes/missing", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFullAttemptFlow(t *testing.T) {
	f := newFixture(t)
	token := f.registerUser(t, "a@example.com")

	// Generate and start.
	w := f.do(t, http.MethodPost, "/api/v1/quizzes", token, gin.H{"topic": "Sleep Hygiene"})
	require.Equal(t, http.StatusCreated, w.Code)
	var quiz struct {
		QuizID string `json:"quiz_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quiz))

	w = f.do(t, http.MethodPost, "/api/v1/attempts", token, gin.H{"quiz_id": quiz.QuizID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var started struct {
		AttemptID string `json:"attempt_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))

	// Three correct answers, one wrong.
	answers := []string{"A) right", "A) right", "A) right", "B) wrong"}
	for i, answer := range answers {
		w = f.do(t, http.MethodPost, "/api/v1/attempts/"+started.AttemptID+"/answers", token, gin.H{
			"question_index": i,
			"answer":         answer,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var fb struct {
			IsCorrect     bool   `json:"is_correct"`
			CorrectAnswer string `json:"correct_answer"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fb))
		require.Equal(t, answer == "A) right", fb.IsCorrect)
		require.Equal(t, "A) right", fb.CorrectAnswer, "feedback reveals the canonical answer")
	}

	// Complete: 3 of 4 correct is 75.0.
	w = f.do(t, http.MethodPost, "/api/v1/attempts/"+started.AttemptID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var done struct {
		Score          float64 `json:"score"`
		CorrectAnswers int     `json:"correct_answers"`
		TotalQuestions int     `json:"total_questions"`
		Status         string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &done))
	require.Equal(t, 75.0, done.Score)
	require.Equal(t, 3, done.CorrectAnswers)
	require.Equal(t, 4, done.TotalQuestions)
	require.Equal(t, "completed", done.Status)

	// Further submissions are rejected.
	w = f.do(t, http.MethodPost, "/api/v1/attempts/"+started.AttemptID+"/answers", token, gin.H{
		"question_index": 0, "answer": "A) right",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// Progress carries the write-back.
	w = f.do(t, http.MethodGet, "/api/v1/me/progress", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var prog struct {
		QuizScores        []float64 `json:"quiz_scores"`
		CompletedTopics   []string  `json:"completed_topics"`
		CurrentDifficulty string    `json:"current_difficulty"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prog))
	require.Equal(t, []float64{75}, prog.QuizScores)
	require.Equal(t, []string{"Sleep Hygiene"}, prog.CompletedTopics)
	require.Equal(t, "intermediate", prog.CurrentDifficulty)

	// History shows one completed attempt.
	w = f.do(t, http.MethodGet, "/api/v1/me/attempts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Attempts []json.RawMessage `json:"attempts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history.Attempts, 1)
}

func TestCrossUserAttemptAccess(t *testing.T) {
	f := newFixture(t)
	tokenA := f.registerUser(t, "a@example.com")
	tokenB := f.registerUser(t, "b@example.com")

	w := f.do(t, http.MethodPost, "/api/v1/quizzes", tokenA, gin.H{"topic": "Period Care"})
	var quiz struct {
		QuizID string `json:"quiz_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quiz))

	w = f.do(t, http.MethodPost, "/api/v1/attempts", tokenA, gin.H{"quiz_id": quiz.QuizID})
	var started struct {
		AttemptID string `json:"attempt_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))

	w = f.do(t, http.MethodGet, "/api/v1/attempts/"+started.AttemptID, tokenB, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/attempts/"+started.AttemptID+"/answers", tokenB, gin.H{
		"question_index": 0, "answer": "A) right",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestContentListing(t *testing.T) {
	f := newFixture(t)
	token := f.registerUser(t, "a@example.com")

	w := f.do(t, http.MethodGet, "/api/v1/content", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Topics   []string `json:"topics"`
		AgeGroup string   `json:"age_group"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "20-35", resp.AgeGroup)
	require.Contains(t, resp.Topics, "Period Care")
	require.Contains(t, resp.Topics, "Self-Care")
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	token := f.registerUser(t, "a@example.com")

	w := f.do(t, http.MethodPut, "/api/v1/me", token, gin.H{"age": 55})
	require.Equal(t, http.StatusOK, w.Code)

	var me struct {
		Age      int    `json:"age"`
		AgeGroup string `json:"age_group"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	require.Equal(t, 55, me.Age)
	require.Equal(t, "50+", me.AgeGroup)

	w = f.do(t, http.MethodPut, "/api/v1/me", token, gin.H{"age": 7})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	token := f.registerUser(t, "a@example.com")

	w := f.do(t, http.MethodGet, "/api/v1/me/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		QuizzesCompleted  int     `json:"quizzes_completed"`
		AverageScore      float64 `json:"average_score"`
		CurrentDifficulty string  `json:"current_difficulty"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Equal(t, 0, stats.QuizzesCompleted)
	require.Equal(t, "beginner", stats.CurrentDifficulty)
}
