package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lunara-health/lunara/ent"
	"github.com/lunara-health/lunara/ent/quiz"
)

// quizRepo implements QuizRepo using the ent client. The clock is a field
// so tests can move time past the expiry.
type quizRepo struct {
	client *ent.Client
	now    func() time.Time
}

func (r *quizRepo) Store(ctx context.Context, q *StoredQuiz, ttl time.Duration) (string, error) {
	// UUIDs keep ids collision-free under concurrent calls; never derive
	// ids from timestamps or hashes.
	id := uuid.New().String()
	expiresAt := r.now().UTC().Add(ttl)

	_, err := r.client.Quiz.Create().
		SetQuizID(id).
		SetTopic(q.Topic).
		SetDifficulty(q.Difficulty).
		SetQuestions(q.Questions).
		SetAdaptiveElements(q.AdaptiveElements).
		SetTotalPoints(q.TotalPoints).
		SetLearningObjectives(q.LearningObjectives).
		SetExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("store quiz: %w", err)
	}
	return id, nil
}

func (r *quizRepo) Get(ctx context.Context, id string) (*StoredQuiz, error) {
	q, err := r.client.Quiz.Query().
		Where(quiz.QuizID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query quiz %s: %w", id, err)
	}

	// Lazy expiry: an expired row is deleted on read and reported absent.
	if r.now().UTC().After(q.ExpiresAt) {
		if err := r.client.Quiz.DeleteOne(q).Exec(ctx); err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("delete expired quiz %s: %w", id, err)
		}
		return nil, nil
	}

	return &StoredQuiz{
		ID:                 q.QuizID,
		Topic:              q.Topic,
		Difficulty:         q.Difficulty,
		Questions:          q.Questions,
		AdaptiveElements:   q.AdaptiveElements,
		TotalPoints:        q.TotalPoints,
		LearningObjectives: q.LearningObjectives,
		ExpiresAt:          q.ExpiresAt,
		CreatedAt:          q.CreatedAt,
	}, nil
}
