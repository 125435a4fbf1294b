package progress

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/lunara-health/lunara/internal/catalog"
	"github.com/lunara-health/lunara/internal/store"
)

// maxRetainedScores bounds the score history kept per user. Older scores
// fall off so the difficulty signal tracks recent performance.
const maxRetainedScores = 10

// UpdateResult is what a quiz completion changed.
type UpdateResult struct {
	Record    *store.ProgressRecord
	NewBadges []string
}

// Service wraps the progress repository with the update and analysis rules.
type Service struct {
	repo store.ProgressRepo
	now  func() time.Time
}

func NewService(repo store.ProgressRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Get returns the user's progress record, synthesizing an empty beginner
// record for users with no history yet. The synthetic record is not
// persisted.
func (s *Service) Get(ctx context.Context, userID string) (*store.ProgressRecord, error) {
	rec, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if rec == nil {
		rec = &store.ProgressRecord{
			UserID:            userID,
			CurrentDifficulty: string(catalog.DifficultyBeginner),
		}
	}
	return rec, nil
}

// Adjust computes the content adjustment for a quiz request, augmented
// with topic recommendations from the user's interests.
func (s *Service) Adjust(ctx context.Context, userID string, interests []string, age int) (ContentAdjustment, error) {
	rec, err := s.repo.Get(ctx, userID)
	if err != nil {
		return ContentAdjustment{}, fmt.Errorf("load progress: %w", err)
	}
	adj := Analyze(rec)
	adj.RecommendedTopics = catalog.RecommendedTopics(interests, catalog.AgeGroupForAge(age))
	return adj, nil
}

// RecordResult folds a completed quiz into the user's progress: appends
// the score (trimming the history window), marks the topic completed,
// recomputes the difficulty tier, advances the streak, accrues points,
// and awards any newly earned badges. The whole record is written back
// as one merge.
func (s *Service) RecordResult(ctx context.Context, userID, topic string, score float64) (*UpdateResult, error) {
	rec, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec.QuizScores = append(rec.QuizScores, score)
	if len(rec.QuizScores) > maxRetainedScores {
		rec.QuizScores = rec.QuizScores[len(rec.QuizScores)-maxRetainedScores:]
	}

	rec.CompletedTopics = appendUnique(rec.CompletedTopics, topic)
	rec.CurrentDifficulty = string(RecomputeDifficulty(rec.QuizScores))
	rec.TotalPoints += int(math.Round(score))

	now := s.now()
	if !rec.LastActivity.IsZero() && now.Sub(rec.LastActivity) <= 24*time.Hour {
		rec.StreakDays++
	} else {
		rec.StreakDays = 1
	}
	rec.LastActivity = now

	earned := checkBadges(badgeState{
		scores:    rec.QuizScores,
		streak:    rec.StreakDays,
		topics:    len(rec.CompletedTopics),
		lastScore: score,
	}, rec.Badges)
	rec.Badges = append(rec.Badges, earned...)

	if err := s.repo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	return &UpdateResult{Record: rec, NewBadges: earned}, nil
}

// appendUnique adds topic unless already present, preserving order.
func appendUnique(topics []string, topic string) []string {
	for _, t := range topics {
		if t == topic {
			return topics
		}
	}
	return append(topics, topic)
}
