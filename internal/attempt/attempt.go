// Package attempt implements the quiz attempt lifecycle: start, answer
// submissions, and completion with progress write-back.
package attempt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lunara-health/lunara/ent/schema"
	"github.com/lunara-health/lunara/internal/progress"
	"github.com/lunara-health/lunara/internal/store"
)

// Typed failures callers can map to response codes.
var (
	ErrQuizNotFound         = errors.New("quiz not found or expired")
	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrNotOwner             = errors.New("attempt belongs to another user")
	ErrQuizAlreadyCompleted = errors.New("attempt already completed")
	ErrInvalidQuestion      = errors.New("question index out of range")
	ErrNoQuizID             = errors.New("quiz id is required")
)

// AnswerFeedback is returned on every submission. It includes the
// canonical answer and explanation before the attempt completes: the
// product gives immediate feedback per question, accepting that a client
// can probe answers without finishing.
type AnswerFeedback struct {
	IsCorrect     bool
	CorrectAnswer string
	Explanation   string
	LearningPoint string

	// CurrentQuestion is the next expected question index.
	CurrentQuestion int
}

// Result is the outcome of completing an attempt.
type Result struct {
	Attempt   *store.AttemptRecord
	NewBadges []string
}

// Service drives attempts through their lifecycle.
type Service struct {
	quizzes  store.QuizRepo
	attempts store.AttemptRepo
	progress *progress.Service
	now      func() time.Time
}

func NewService(quizzes store.QuizRepo, attempts store.AttemptRepo, prog *progress.Service) *Service {
	return &Service{
		quizzes:  quizzes,
		attempts: attempts,
		progress: prog,
		now:      time.Now,
	}
}

// Start opens a new attempt against a stored quiz.
func (s *Service) Start(ctx context.Context, userID, quizID string) (*store.AttemptRecord, error) {
	if quizID == "" {
		return nil, ErrNoQuizID
	}
	quiz, err := s.quizzes.Get(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	rec := &store.AttemptRecord{
		UserID:          userID,
		QuizID:          quizID,
		Topic:           quiz.Topic,
		Status:          store.AttemptInProgress,
		CurrentQuestion: 0,
		TotalQuestions:  len(quiz.Questions),
		StartedAt:       s.now(),
	}
	id, err := s.attempts.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}
	rec.ID = id
	return rec, nil
}

// SubmitAnswer grades one answer against the stored quiz and records it.
// Exact string match against the canonical correct_answer.
func (s *Service) SubmitAnswer(ctx context.Context, userID, attemptID string, questionIndex int, answer string) (*AnswerFeedback, error) {
	rec, err := s.ownedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if rec.Status == store.AttemptCompleted {
		return nil, ErrQuizAlreadyCompleted
	}

	quiz, err := s.quizzes.Get(ctx, rec.QuizID)
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if quiz == nil {
		// The quiz expired mid-attempt; nothing left to grade against.
		return nil, ErrQuizNotFound
	}
	if questionIndex < 0 || questionIndex >= len(quiz.Questions) {
		return nil, ErrInvalidQuestion
	}

	question := quiz.Questions[questionIndex]
	correct := answer == question.CorrectAnswer

	rec.Answers = append(rec.Answers, schema.AnswerRecord{
		QuestionIndex: questionIndex,
		UserAnswer:    answer,
		IsCorrect:     correct,
		SubmittedAt:   s.now(),
	})
	rec.CurrentQuestion = questionIndex + 1

	if err := s.attempts.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}

	return &AnswerFeedback{
		IsCorrect:       correct,
		CorrectAnswer:   question.CorrectAnswer,
		Explanation:     question.Explanation,
		LearningPoint:   question.LearningPoint,
		CurrentQuestion: rec.CurrentQuestion,
	}, nil
}

// Complete finalizes the attempt, computes the score over the submitted
// answers, and folds the result into the user's progress. Terminal: a
// completed attempt accepts no further mutation.
func (s *Service) Complete(ctx context.Context, userID, attemptID string) (*Result, error) {
	rec, err := s.ownedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if rec.Status == store.AttemptCompleted {
		return nil, ErrQuizAlreadyCompleted
	}

	correct := 0
	for _, a := range rec.Answers {
		if a.IsCorrect {
			correct++
		}
	}
	score := 0.0
	if len(rec.Answers) > 0 {
		score = 100 * float64(correct) / float64(len(rec.Answers))
	}

	completedAt := s.now()
	rec.Status = store.AttemptCompleted
	rec.CompletedAt = &completedAt
	rec.Score = score
	rec.CorrectAnswers = correct
	if rec.TotalQuestions == 0 {
		rec.TotalQuestions = len(rec.Answers)
	}

	if err := s.attempts.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}

	upd, err := s.progress.RecordResult(ctx, userID, rec.Topic, score)
	if err != nil {
		return nil, fmt.Errorf("record progress: %w", err)
	}

	return &Result{Attempt: rec, NewBadges: upd.NewBadges}, nil
}

// Get returns the attempt after an ownership check.
func (s *Service) Get(ctx context.Context, userID, attemptID string) (*store.AttemptRecord, error) {
	return s.ownedAttempt(ctx, userID, attemptID)
}

// History lists the user's completed attempts, most recent first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]*store.AttemptRecord, error) {
	return s.attempts.ListCompleted(ctx, userID, limit)
}

func (s *Service) ownedAttempt(ctx context.Context, userID, attemptID string) (*store.AttemptRecord, error) {
	rec, err := s.attempts.Get(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("load attempt: %w", err)
	}
	if rec == nil {
		return nil, ErrAttemptNotFound
	}
	if rec.UserID != userID {
		return nil, ErrNotOwner
	}
	return rec, nil
}
