package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a registered learner account. The email is the stable identity
// every other record is partitioned by.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty().
			Unique().
			Comment("Stable user identity"),
		field.String("username").
			NotEmpty(),
		field.String("password_hash").
			NotEmpty().
			Sensitive().
			Comment("bcrypt hash of the login password"),
		field.Int("age").
			Positive(),
		field.Strings("interests").
			Default([]string{}).
			Comment("Interest labels used for topic recommendations"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
