package store

import (
	"context"
	"time"

	"github.com/lunara-health/lunara/ent/schema"
)

// UserRecord is a registered account.
type UserRecord struct {
	Email        string
	Username     string
	PasswordHash string
	Age          int
	Interests    []string
	CreatedAt    time.Time
}

// UserUpdate carries the mutable profile fields for a merge write.
// Nil fields are left untouched.
type UserUpdate struct {
	Username  *string
	Age       *int
	Interests []string
}

// UserRepo manages user accounts.
type UserRepo interface {
	// Create stores a new user. Fails if the email is already registered.
	Create(ctx context.Context, u *UserRecord) error

	// GetByEmail returns the user, or nil if absent.
	GetByEmail(ctx context.Context, email string) (*UserRecord, error)

	// Update merges the given fields into the user's profile.
	Update(ctx context.Context, email string, fields UserUpdate) error
}

// ProgressRecord is the per-user learning record. One record per user.
type ProgressRecord struct {
	UserID            string
	QuizScores        []float64
	CompletedTopics   []string
	CurrentDifficulty string
	StreakDays        int
	TotalPoints       int
	Badges            []string
	LastActivity      time.Time
}

// ProgressRepo manages per-user progress records.
type ProgressRepo interface {
	// Get returns the user's progress record, or nil if none exists yet.
	Get(ctx context.Context, userID string) (*ProgressRecord, error)

	// Upsert writes the record as a single-document merge. No multi
	// document atomicity is assumed by callers.
	Upsert(ctx context.Context, rec *ProgressRecord) error
}

// StoredQuiz is a generated quiz held until its expiry.
type StoredQuiz struct {
	ID                 string
	Topic              string
	Difficulty         string
	Questions          []schema.QuizDocument
	AdaptiveElements   schema.AdaptiveElements
	TotalPoints        int
	LearningObjectives []string
	ExpiresAt          time.Time
	CreatedAt          time.Time
}

// QuizRepo persists generated quizzes with lazy TTL expiry.
type QuizRepo interface {
	// Store assigns a fresh UUID, stamps expires_at = now + ttl, and writes
	// the quiz as a new document. Returns the assigned id.
	Store(ctx context.Context, quiz *StoredQuiz, ttl time.Duration) (string, error)

	// Get returns the quiz, or nil if absent or expired. An expired quiz is
	// deleted on read; there is no background sweep.
	Get(ctx context.Context, id string) (*StoredQuiz, error)
}

// AttemptRecord is one user's run through a quiz.
type AttemptRecord struct {
	ID              string
	UserID          string
	QuizID          string
	Topic           string
	Status          string
	CurrentQuestion int
	Answers         []schema.AnswerRecord
	Score           float64
	CorrectAnswers  int
	TotalQuestions  int
	StartedAt       time.Time
	CompletedAt     *time.Time
}

// Attempt status values.
const (
	AttemptInProgress = "in_progress"
	AttemptCompleted  = "completed"
)

// AttemptRepo manages quiz attempts.
type AttemptRepo interface {
	// Create stores a new attempt with a fresh UUID and returns the id.
	Create(ctx context.Context, rec *AttemptRecord) (string, error)

	// Get returns the attempt, or nil if absent.
	Get(ctx context.Context, id string) (*AttemptRecord, error)

	// Update writes the attempt back as a single-document update.
	// Concurrent updates to the same attempt are last-write-wins; callers
	// wanting stricter guarantees need a compare-and-swap here.
	Update(ctx context.Context, rec *AttemptRecord) error

	// ListCompleted returns the user's completed attempts, most recent
	// first, capped at limit (0 means no cap).
	ListCompleted(ctx context.Context, userID string, limit int) ([]*AttemptRecord, error)
}

// QueryOpts filters audit-event queries.
type QueryOpts struct {
	// Limit caps the result count; 0 means no cap.
	Limit int

	// Purpose filters to events tagged with this purpose; empty matches all.
	Purpose string
}

// LLMRequestEvent is a stored audit event.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMRequestEventData captures one model call for the audit log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to audit events.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)
}
