package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a registered learner account.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(100),
		field.String("email").
			NotEmpty().
			MaxLen(150).
			Unique(),
		field.String("hashed_pw").
			NotEmpty().
			MaxLen(255).
			Sensitive(),
		field.String("institution").
			MaxLen(200).
			Optional(),
		field.Enum("level").
			Values("beginner", "intermediate", "advanced").
			Default("beginner").
			Comment("Global learner level, promoted from XP thresholds"),
		field.Int("xp_points").
			Default(0).
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Bool("is_active").
			Default(true),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
