package progress

import (
	"context"
	"testing"
	"time"

	"github.com/lunara-health/lunara/internal/store"
)

// memProgressRepo is an in-memory ProgressRepo for service tests.
type memProgressRepo struct {
	recs map[string]*store.ProgressRecord
}

func newMemProgressRepo() *memProgressRepo {
	return &memProgressRepo{recs: make(map[string]*store.ProgressRecord)}
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

func newTestService(repo store.ProgressRepo, now time.Time) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return now }
	return s
}

func TestRecordResultFirstQuiz(t *testing.T) {
	repo := newMemProgressRepo()
	svc := newTestService(repo, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	res, err := svc.RecordResult(context.Background(), "u1", "Period Care", 80)
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	rec := res.Record
	if len(rec.QuizScores) != 1 || rec.QuizScores[0] != 80 {
		t.Errorf("quiz scores = %v, want [80]", rec.QuizScores)
	}
	if rec.CurrentDifficulty != "intermediate" {
		t.Errorf("difficulty = %s, want intermediate (single score of 80)", rec.CurrentDifficulty)
	}
	if rec.StreakDays != 1 {
		t.Errorf("streak = %d, want 1", rec.StreakDays)
	}
	if rec.TotalPoints != 80 {
		t.Errorf("points = %d, want 80", rec.TotalPoints)
	}
	if len(rec.CompletedTopics) != 1 || rec.CompletedTopics[0] != "Period Care" {
		t.Errorf("completed topics = %v", rec.CompletedTopics)
	}
}

func TestRecordResultCapsScoreHistory(t *testing.T) {
	repo := newMemProgressRepo()
	svc := newTestService(repo, time.Now())

	for i := 0; i < 13; i++ {
		if _, err := svc.RecordResult(context.Background(), "u1", "Sleep Health", float64(i)); err != nil {
			t.Fatalf("RecordResult %d: %v", i, err)
		}
	}
	rec, _ := repo.Get(context.Background(), "u1")
	if len(rec.QuizScores) != maxRetainedScores {
		t.Fatalf("retained %d scores, want %d", len(rec.QuizScores), maxRetainedScores)
	}
	if rec.QuizScores[0] != 3 || rec.QuizScores[9] != 12 {
		t.Errorf("window = %v, want scores 3..12", rec.QuizScores)
	}
}

func TestRecordResultDedupesTopics(t *testing.T) {
	repo := newMemProgressRepo()
	svc := newTestService(repo, time.Now())

	ctx := context.Background()
	svc.RecordResult(ctx, "u1", "Nutrition Basics", 70)
	svc.RecordResult(ctx, "u1", "Sleep Health", 75)
	svc.RecordResult(ctx, "u1", "Nutrition Basics", 85)

	rec, _ := repo.Get(ctx, "u1")
	want := []string{"Nutrition Basics", "Sleep Health"}
	if len(rec.CompletedTopics) != len(want) {
		t.Fatalf("topics = %v, want %v", rec.CompletedTopics, want)
	}
	for i := range want {
		if rec.CompletedTopics[i] != want[i] {
			t.Errorf("topic %d = %q, want %q", i, rec.CompletedTopics[i], want[i])
		}
	}
}

func TestStreakAdvanceAndReset(t *testing.T) {
	repo := newMemProgressRepo()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	svc := newTestService(repo, base)
	svc.RecordResult(ctx, "u1", "Period Care", 50)

	// Next day within 24h keeps the streak going.
	svc.now = func() time.Time { return base.Add(20 * time.Hour) }
	res, _ := svc.RecordResult(ctx, "u1", "Sleep Health", 50)
	if res.Record.StreakDays != 2 {
		t.Errorf("streak = %d, want 2", res.Record.StreakDays)
	}

	// A gap beyond 24h resets to 1.
	svc.now = func() time.Time { return base.Add(72 * time.Hour) }
	res, _ = svc.RecordResult(ctx, "u1", "Stress Management", 50)
	if res.Record.StreakDays != 1 {
		t.Errorf("streak = %d, want 1 after gap", res.Record.StreakDays)
	}
}

func TestBadgeAwards(t *testing.T) {
	repo := newMemProgressRepo()
	svc := newTestService(repo, time.Now())
	ctx := context.Background()

	res, _ := svc.RecordResult(ctx, "u1", "Period Care", 100)
	if !contains(res.NewBadges, BadgeQuizChampion) {
		t.Errorf("perfect score should award %s, got %v", BadgeQuizChampion, res.NewBadges)
	}

	// Second perfect score must not re-award the badge.
	res, _ = svc.RecordResult(ctx, "u1", "Sleep Health", 100)
	if contains(res.NewBadges, BadgeQuizChampion) {
		t.Errorf("badge awarded twice: %v", res.NewBadges)
	}

	// Three more scores above 80 brings the high-score count to five.
	svc.RecordResult(ctx, "u1", "Nutrition Basics", 90)
	svc.RecordResult(ctx, "u1", "Stress Management", 90)
	res, _ = svc.RecordResult(ctx, "u1", "Mindfulness", 90)
	if !contains(res.NewBadges, BadgeQuickLearner) {
		t.Errorf("five scores above 80 should award %s, got %v", BadgeQuickLearner, res.NewBadges)
	}
}

func contains(items []string, want string) bool {
	for _, s := range items {
		if s == want {
			return true
		}
	}
	return false
}
