package store

import (
	"context"
	"fmt"

	"github.com/lunara-health/lunara/ent"
	"github.com/lunara-health/lunara/ent/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID string) (*ProgressRecord, error) {
	p, err := r.client.Progress.Query().
		Where(progress.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress for %s: %w", userID, err)
	}
	return &ProgressRecord{
		UserID:            p.UserID,
		QuizScores:        p.QuizScores,
		CompletedTopics:   p.CompletedTopics,
		CurrentDifficulty: p.CurrentDifficulty,
		StreakDays:        p.StreakDays,
		TotalPoints:       p.TotalPoints,
		Badges:            p.Badges,
		LastActivity:      p.LastActivity,
	}, nil
}

func (r *progressRepo) Upsert(ctx context.Context, rec *ProgressRecord) error {
	existing, err := r.client.Progress.Query().
		Where(progress.UserID(rec.UserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query progress for %s: %w", rec.UserID, err)
	}

	if existing == nil {
		_, err = r.client.Progress.Create().
			SetUserID(rec.UserID).
			SetQuizScores(rec.QuizScores).
			SetCompletedTopics(rec.CompletedTopics).
			SetCurrentDifficulty(rec.CurrentDifficulty).
			SetStreakDays(rec.StreakDays).
			SetTotalPoints(rec.TotalPoints).
			SetBadges(rec.Badges).
			SetLastActivity(rec.LastActivity).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress for %s: %w", rec.UserID, err)
		}
		return nil
	}

	_, err = existing.Update().
		SetQuizScores(rec.QuizScores).
		SetCompletedTopics(rec.CompletedTopics).
		SetCurrentDifficulty(rec.CurrentDifficulty).
		SetStreakDays(rec.StreakDays).
		SetTotalPoints(rec.TotalPoints).
		SetBadges(rec.Badges).
		SetLastActivity(rec.LastActivity).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress for %s: %w", rec.UserID, err)
	}
	return nil
}
