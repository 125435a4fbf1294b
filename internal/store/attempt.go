package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lunara-health/lunara/ent"
	"github.com/lunara-health/lunara/ent/attempt"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Create(ctx context.Context, rec *AttemptRecord) (string, error) {
	id := uuid.New().String()

	builder := r.client.Attempt.Create().
		SetAttemptID(id).
		SetUserID(rec.UserID).
		SetQuizID(rec.QuizID).
		SetTopic(rec.Topic).
		SetStatus(AttemptInProgress).
		SetCurrentQuestion(0).
		SetAnswers(rec.Answers).
		SetTotalQuestions(rec.TotalQuestions)
	if !rec.StartedAt.IsZero() {
		builder = builder.SetStartedAt(rec.StartedAt)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("create attempt: %w", err)
	}
	return id, nil
}

func (r *attemptRepo) Get(ctx context.Context, id string) (*AttemptRecord, error) {
	a, err := r.client.Attempt.Query().
		Where(attempt.AttemptID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query attempt %s: %w", id, err)
	}
	return entAttemptToRecord(a), nil
}

func (r *attemptRepo) Update(ctx context.Context, rec *AttemptRecord) error {
	a, err := r.client.Attempt.Query().
		Where(attempt.AttemptID(rec.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("attempt %s not found", rec.ID)
		}
		return fmt.Errorf("query attempt %s: %w", rec.ID, err)
	}

	builder := a.Update().
		SetStatus(rec.Status).
		SetCurrentQuestion(rec.CurrentQuestion).
		SetAnswers(rec.Answers).
		SetScore(rec.Score).
		SetCorrectAnswers(rec.CorrectAnswers).
		SetTotalQuestions(rec.TotalQuestions)
	if rec.CompletedAt != nil {
		builder = builder.SetCompletedAt(*rec.CompletedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update attempt %s: %w", rec.ID, err)
	}
	return nil
}

func (r *attemptRepo) ListCompleted(ctx context.Context, userID string, limit int) ([]*AttemptRecord, error) {
	q := r.client.Attempt.Query().
		Where(
			attempt.UserID(userID),
			attempt.Status(AttemptCompleted),
		).
		Order(ent.Desc(attempt.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts for %s: %w", userID, err)
	}

	out := make([]*AttemptRecord, len(rows))
	for i, a := range rows {
		out[i] = entAttemptToRecord(a)
	}
	return out, nil
}

func entAttemptToRecord(a *ent.Attempt) *AttemptRecord {
	return &AttemptRecord{
		ID:              a.AttemptID,
		UserID:          a.UserID,
		QuizID:          a.QuizID,
		Topic:           a.Topic,
		Status:          a.Status,
		CurrentQuestion: a.CurrentQuestion,
		Answers:         a.Answers,
		Score:           a.Score,
		CorrectAnswers:  a.CorrectAnswers,
		TotalQuestions:  a.TotalQuestions,
		StartedAt:       a.StartedAt,
		CompletedAt:     a.CompletedAt,
	}
}
