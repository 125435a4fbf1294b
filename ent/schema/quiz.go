package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizDocument is the serialized form of a stored question for persistence.
type QuizDocument struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	LearningPoint string   `json:"learning_point"`
	Difficulty    string   `json:"difficulty_level"`
	TopicTag      string   `json:"topic_tag"`
}

// AdaptiveElements is the serialized adaptive metadata block returned by
// the generator.
type AdaptiveElements struct {
	DifficultyProgression string   `json:"difficulty_progression,omitempty"`
	TopicRelationships    []string `json:"topic_relationships,omitempty"`
	ReinforcementPoints   []string `json:"reinforcement_points,omitempty"`
}

// Quiz is a generated quiz persisted with an absolute expiry timestamp.
// Expiry is enforced lazily on read; there is no background sweep, so an
// expired-but-unread row stays on disk until someone reads it.
type Quiz struct {
	ent.Schema
}

func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned at store time"),
		field.String("topic").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty(),
		field.JSON("questions", []QuizDocument{}).
			Comment("Full question list, immutable once stored"),
		field.JSON("adaptive_elements", AdaptiveElements{}).
			Optional(),
		field.Int("total_points").
			Default(0),
		field.Strings("learning_objectives").
			Default([]string{}),
		field.Time("expires_at").
			Comment("Absolute UTC expiry; reads past this delete the row"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Quiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("expires_at"),
	}
}
