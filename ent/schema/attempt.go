package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerRecord is one submitted answer inside an attempt.
type AnswerRecord struct {
	QuestionIndex int       `json:"question_index"`
	UserAnswer    string    `json:"user_answer"`
	IsCorrect     bool      `json:"is_correct"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// Attempt is one user's run through a stored quiz. Mutated only by the
// attempt state machine; immutable once status is completed.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned at start"),
		field.String("user_id").
			NotEmpty().
			Comment("Owning user email"),
		field.String("quiz_id").
			NotEmpty(),
		field.String("topic").
			NotEmpty().
			Comment("Quiz topic, denormalized for the progress write-back"),
		field.String("status").
			Default("in_progress").
			Comment("in_progress or completed"),
		field.Int("current_question").
			Default(0),
		field.JSON("answers", []AnswerRecord{}).
			Default([]AnswerRecord{}).
			Comment("Append-only answer log"),
		field.Float("score").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Int("total_questions").
			Default(0),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("user_id"),
		index.Fields("quiz_id"),
	}
}
