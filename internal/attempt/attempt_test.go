package attempt

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lunara-health/lunara/ent/schema"
	"github.com/lunara-health/lunara/internal/progress"
	"github.com/lunara-health/lunara/internal/store"
)

// memQuizRepo serves a fixed set of quizzes.
type memQuizRepo struct {
	quizzes map[string]*store.StoredQuiz
}

func (m *memQuizRepo) Store(_ context.Context, quiz *store.StoredQuiz, _ time.Duration) (string, error) {
	id := fmt.Sprintf("quiz-%d", len(m.quizzes)+1)
	quiz.ID = id
	m.quizzes[id] = quiz
	return id, nil
}

func (m *memQuizRepo) Get(_ context.Context, id string) (*store.StoredQuiz, error) {
	return m.quizzes[id], nil
}

// memAttemptRepo is an in-memory AttemptRepo.
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

// memProgressRepo mirrors the one in the progress package tests.
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

func fourQuestionQuiz() *store.StoredQuiz {
	questions := make([]schema.QuizDocument, 4)
	for i := range questions {
		questions[i] = schema.QuizDocument{
			Question:      fmt.Sprintf("Q%d?", i+1),
			Options:       []string{"A) right", "B) wrong"},
			CorrectAnswer: "A) right",
			Explanation:   "Because.",
			LearningPoint: fmt.Sprintf("Point %d", i+1),
			Difficulty:    "beginner",
			TopicTag:      "general_wellness",
		}
	}
	return &store.StoredQuiz{
		Topic:      "Sleep Health",
		Difficulty: "beginner",
		Questions:  questions,
	}
}

func newFixture(t *testing.T) (*Service, *memQuizRepo, *memProgressRepo, string) {
	t.Helper()
	quizzes := &memQuizRepo{quizzes: make(map[string]*store.StoredQuiz)}
	attempts := &memAttemptRepo{recs: make(map[string]*store.AttemptRecord)}
	progressRepo := &memProgressRepo{recs: make(map[string]*store.ProgressRecord)}

	quizID, err := quizzes.Store(context.Background(), fourQuestionQuiz(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	svc := NewService(quizzes, attempts, progress.NewService(progressRepo))
	return svc, quizzes, progressRepo, quizID
}

func TestStartAttempt(t *testing.T) {
	svc, _, _, quizID := newFixture(t)

	rec, err := svc.Start(context.Background(), "u1", quizID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if rec.Status != store.AttemptInProgress {
		t.Errorf("status = %s", rec.Status)
	}
	if rec.CurrentQuestion != 0 || len(rec.Answers) != 0 {
		t.Errorf("fresh attempt should start at question 0 with no answers")
	}
	if rec.TotalQuestions != 4 {
		t.Errorf("total questions = %d, want 4", rec.TotalQuestions)
	}
	if rec.Topic != "Sleep Health" {
		t.Errorf("topic = %q", rec.Topic)
	}
}

func TestStartRequiresQuizID(t *testing.T) {
	svc, _, _, _ := newFixture(t)
	if _, err := svc.Start(context.Background(), "u1", ""); !errors.Is(err, ErrNoQuizID) {
		t.Errorf("err = %v, want ErrNoQuizID", err)
	}
}

func TestStartUnknownQuiz(t *testing.T) {
	svc, _, _, _ := newFixture(t)
	if _, err := svc.Start(context.Background(), "u1", "missing"); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestSubmitAnswerGradesAndReveals(t *testing.T) {
	svc, _, _, quizID := newFixture(t)
	ctx := context.Background()
	rec, _ := svc.Start(ctx, "u1", quizID)

	fb, err := svc.SubmitAnswer(ctx, "u1", rec.ID, 0, "A) right")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !fb.IsCorrect {
		t.Error("exact match should grade correct")
	}
	if fb.CorrectAnswer != "A) right" || fb.Explanation == "" {
		t.Error("feedback should reveal the canonical answer and explanation")
	}
	if fb.CurrentQuestion != 1 {
		t.Errorf("current question = %d, want 1", fb.CurrentQuestion)
	}

	fb, err = svc.SubmitAnswer(ctx, "u1", rec.ID, 1, "B) wrong")
	if err != nil {
		t.Fatal(err)
	}
	if fb.IsCorrect {
		t.Error("wrong answer graded correct")
	}
}

func TestSubmitAnswerOutOfRange(t *testing.T) {
	svc, _, _, quizID := newFixture(t)
	ctx := context.Background()
	rec, _ := svc.Start(ctx, "u1", quizID)

	if _, err := svc.SubmitAnswer(ctx, "u1", rec.ID, 4, "A) right"); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("err = %v, want ErrInvalidQuestion", err)
	}
	if _, err := svc.SubmitAnswer(ctx, "u1", rec.ID, -1, "A) right"); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("err = %v, want ErrInvalidQuestion", err)
	}
}

func TestSubmitAnswerOwnership(t *testing.T) {
	svc, _, _, quizID := newFixture(t)
	ctx := context.Background()
	rec, _ := svc.Start(ctx, "u1", quizID)

	if _, err := svc.SubmitAnswer(ctx, "u2", rec.ID, 0, "A) right"); !errors.Is(err, ErrNotOwner) {
		t.Errorf("err = %v, want ErrNotOwner", err)
	}
}

func TestCompleteScoresThreeOfFour(t *testing.T) {
	svc, _, progressRepo, quizID := newFixture(t)
	ctx := context.Background()
	rec, _ := svc.Start(ctx, "u1", quizID)

	svc.SubmitAnswer(ctx, "u1", rec.ID, 0, "A) right")
	svc.SubmitAnswer(ctx, "u1", rec.ID, 1, "A) right")
	svc.SubmitAnswer(ctx, "u1", rec.ID, 2, "A) right")
	svc.SubmitAnswer(ctx, "u1", rec.ID, 3, "B) wrong")

	res, err := svc.Complete(ctx, "u1", rec.ID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if res.Attempt.Score != 75.0 {
		t.Errorf("score = %v, want 75.0", res.Attempt.Score)
	}
	if res.Attempt.CorrectAnswers != 3 || res.Attempt.TotalQuestions != 4 {
		t.Errorf("tally = %d/%d, want 3/4", res.Attempt.CorrectAnswers, res.Attempt.TotalQuestions)
	}
	if res.Attempt.Status != store.AttemptCompleted || res.Attempt.CompletedAt == nil {
		t.Error("attempt not finalized")
	}

	// Progress write-back: score appended, topic recorded.
	prog, _ := progressRepo.Get(ctx, "u1")
	if prog == nil {
		t.Fatal("progress not written")
	}
	if len(prog.QuizScores) != 1 || prog.QuizScores[0] != 75.0 {
		t.Errorf("quiz scores = %v, want [75]", prog.QuizScores)
	}
	if len(prog.CompletedTopics) != 1 || prog.CompletedTopics[0] != "Sleep Health" {
		t.Errorf("completed topics = %v", prog.CompletedTopics)
	}
	if prog.CurrentDifficulty != "intermediate" {
		t.Errorf("difficulty = %s, want intermediate (single 75)", prog.CurrentDifficulty)
	}
}

func TestCompleteWithNoAnswers(t *testing.T) {
	svc, _, _, quizID := newFixture(t)
	ctx := context.Background()
	rec, _ := svc.Start(ctx, "u1", quizID)

	res, err := svc.Complete(ctx, "u1", rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Attempt.Score != 0 {
		t.Errorf("score = %v, want 0 with no answers", res.Attempt.Score)
	}
}

func TestCompletedAttemptIsTerminal(t *testing.T) {
	svc, _, _, quizID := newFixture(t)
	ctx := context.Background()
	rec, _ := svc.Start(ctx, "u1", quizID)
	svc.SubmitAnswer(ctx, "u1", rec.ID, 0, "A) right")
	if _, err := svc.Complete(ctx, "u1", rec.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.SubmitAnswer(ctx, "u1", rec.ID, 1, "A) right"); !errors.Is(err, ErrQuizAlreadyCompleted) {
		t.Errorf("submit after complete: err = %v, want ErrQuizAlreadyCompleted", err)
	}
	if _, err := svc.Complete(ctx, "u1", rec.ID); !errors.Is(err, ErrQuizAlreadyCompleted) {
		t.Errorf("double complete: err = %v, want ErrQuizAlreadyCompleted", err)
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc, _, _, quizID := newFixture(t)
	ctx := context.Background()
	rec, _ := svc.Start(ctx, "u1", quizID)

	if _, err := svc.Get(ctx, "u2", rec.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("err = %v, want ErrNotOwner", err)
	}
	if _, err := svc.Get(ctx, "u1", "missing"); !errors.Is(err, ErrAttemptNotFound) {
		t.Errorf("err = %v, want ErrAttemptNotFound", err)
	}
}
