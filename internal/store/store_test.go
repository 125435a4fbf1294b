package store

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/lunara-health/lunara/ent/schema"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleQuiz() *StoredQuiz {
	return &StoredQuiz{
		Topic:      "Period Care",
		Difficulty: "beginner",
		Questions: []schema.QuizDocument{
			{
				Question:      "How long does a typical menstrual cycle last?",
				Options:       []string{"A) 7 days", "B) 28 days", "C) 60 days", "D) 90 days"},
				CorrectAnswer: "B) 28 days",
				Explanation:   "A typical cycle runs about 28 days, though 21-35 is normal.",
				LearningPoint: "Cycle length varies between individuals.",
				Difficulty:    "beginner",
				TopicTag:      "menstrual_health",
			},
		},
		TotalPoints:        1,
		LearningObjectives: []string{"Cycle length varies between individuals."},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestQuizStoreAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	id, err := repo.Store(ctx, sampleQuiz(), time.Hour)
	if err != nil {
		t.Fatalf("store quiz: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty quiz id")
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if got == nil {
		t.Fatal("expected quiz, got absent")
	}
	if got.Topic != "Period Care" || len(got.Questions) != 1 {
		t.Errorf("unexpected quiz: %+v", got)
	}

	// A second read of a non-expired quiz returns identical content.
	again, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if !reflect.DeepEqual(got, again) {
		t.Error("expected identical content across reads")
	}
}

func TestQuizLazyExpiry(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	current := time.Now()
	repo := &quizRepo{client: s.Client(), now: func() time.Time { return current }}

	id, err := repo.Store(ctx, sampleQuiz(), time.Hour)
	if err != nil {
		t.Fatalf("store quiz: %v", err)
	}

	// Just inside the TTL: still readable.
	current = current.Add(time.Hour - time.Second)
	if got, err := repo.Get(ctx, id); err != nil || got == nil {
		t.Fatalf("expected quiz inside TTL, got %v, err %v", got, err)
	}

	// Just past the TTL: absent, and deleted.
	current = current.Add(2 * time.Second)
	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get past TTL: %v", err)
	}
	if got != nil {
		t.Fatal("expected absent quiz past TTL")
	}

	// Unreadable thereafter even via a direct second get.
	if got, err := repo.Get(ctx, id); err != nil || got != nil {
		t.Fatalf("expected quiz to stay absent, got %v, err %v", got, err)
	}
}

func TestQuizGetUnknownID(t *testing.T) {
	s := openTestStore(t)
	got, err := s.QuizRepo().Get(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatal("expected absent quiz for unknown id")
	}
}

func TestQuizIDsUnique(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 20 {
		id, err := repo.Store(ctx, sampleQuiz(), time.Hour)
		if err != nil {
			t.Fatalf("store quiz: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate quiz id %s", id)
		}
		seen[id] = true
	}
}

func TestProgressUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("expected absent progress for new user")
	}

	rec := &ProgressRecord{
		UserID:            "a@x.com",
		QuizScores:        []float64{80},
		CompletedTopics:   []string{"Period Care"},
		CurrentDifficulty: "intermediate",
		StreakDays:        1,
		TotalPoints:       80,
		Badges:            []string{},
		LastActivity:      time.Now(),
	}
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	rec.QuizScores = append(rec.QuizScores, 90)
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert (update): %v", err)
	}

	got, err = repo.Get(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("get after upsert: %v", err)
	}
	if got == nil {
		t.Fatal("expected progress record")
	}
	if !reflect.DeepEqual(got.QuizScores, []float64{80, 90}) {
		t.Errorf("unexpected scores: %v", got.QuizScores)
	}
	if got.CurrentDifficulty != "intermediate" {
		t.Errorf("unexpected difficulty: %s", got.CurrentDifficulty)
	}
}

func TestAttemptLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	id, err := repo.Create(ctx, &AttemptRecord{
		UserID: "a@x.com",
		QuizID: "quiz-1",
		Topic:  "Period Care",
	})
	if err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	rec, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if rec == nil || rec.Status != AttemptInProgress || rec.CurrentQuestion != 0 {
		t.Fatalf("unexpected new attempt: %+v", rec)
	}

	now := time.Now()
	rec.Status = AttemptCompleted
	rec.Score = 75
	rec.CorrectAnswers = 3
	rec.TotalQuestions = 4
	rec.Answers = []schema.AnswerRecord{
		{QuestionIndex: 0, UserAnswer: "B) 28 days", IsCorrect: true, SubmittedAt: now},
	}
	rec.CompletedAt = &now
	if err := repo.Update(ctx, rec); err != nil {
		t.Fatalf("update attempt: %v", err)
	}

	completed, err := repo.ListCompleted(ctx, "a@x.com", 0)
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(completed) != 1 || completed[0].Score != 75 {
		t.Fatalf("unexpected completed list: %+v", completed)
	}

	// Other users see nothing.
	other, err := repo.ListCompleted(ctx, "b@x.com", 0)
	if err != nil {
		t.Fatalf("list completed for other user: %v", err)
	}
	if len(other) != 0 {
		t.Fatal("expected no attempts for other user")
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	err := s.EventRepo().AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "quiz-gen",
		InputTokens:  120,
		OutputTokens: 450,
		LatencyMs:    900,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	events, err := s.EventRepo().QueryLLMEvents(context.Background(), QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.Purpose != "quiz-gen" || e.InputTokens != 120 || !e.Success {
		t.Errorf("event = %+v", e)
	}
	if e.Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}

	// Purpose filter excludes non-matching events.
	events, err = s.EventRepo().QueryLLMEvents(context.Background(), QueryOpts{Purpose: "other"})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Errorf("filtered events = %d, want 0", len(events))
	}
}
