package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Progress is the per-user learning record. One row per user, merged in
// place on every quiz completion. current_difficulty is always recomputed
// from quiz_scores, never written independently.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Comment("Owning user email"),
		field.JSON("quiz_scores", []float64{}).
			Default([]float64{}).
			Comment("Most recent scores, oldest first, capped at 10"),
		field.Strings("completed_topics").
			Default([]string{}).
			Comment("Deduplicated completed topic names, first-seen order"),
		field.String("current_difficulty").
			Default("beginner").
			Comment("beginner, intermediate, or advanced"),
		field.Int("streak_days").
			Default(0),
		field.Int("total_points").
			Default(0),
		field.Strings("badges").
			Default([]string{}),
		field.Time("last_activity").
			Default(time.Now),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
